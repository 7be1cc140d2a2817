package rest

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/proxidata/billing-service/internal/api/rest/handlers"
	"github.com/proxidata/billing-service/internal/config"
	"github.com/proxidata/billing-service/internal/domain"
	"github.com/proxidata/billing-service/internal/integration/stripe"
	"github.com/proxidata/billing-service/internal/metrics"
	"github.com/proxidata/billing-service/internal/middleware"
	"github.com/proxidata/billing-service/internal/service"
	"github.com/proxidata/billing-service/pkg/logger"
)

// SetupRouter настраивает маршрутизатор Gin с маршрутами и middleware
func SetupRouter(log *logger.Logger, registry *prometheus.Registry, cfg *config.Config) *gin.Engine {
	r := gin.New()

	// Подключение middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(gin.Recovery())

	// Endpoint для проверки работоспособности сервиса
	r.GET("/health", handlers.HealthCheck)

	// Prometheus метрики
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Создание Stripe клиента
	stripeClient := stripe.NewClient(stripe.Config{
		APIKey:     cfg.Stripe.APIKey,
		APIVersion: cfg.Stripe.APIVersion,
		Timeout:    time.Duration(cfg.Stripe.Timeout) * time.Second,
	}, log)

	// Инициализация сервиса и обработчиков
	billingMetrics := metrics.NewBillingMetrics(registry, log)
	billingService := service.NewBillingService(stripeClient, billingMetrics, log)
	billingHandler := handlers.NewBillingHandler(billingService, log)

	// Middleware аутентификации
	authMiddleware := middleware.NewJWTMiddleware(log, &middleware.DefaultTokenValidator{
		Secret: []byte(cfg.Auth.JWTSecret),
	})

	// Биллинговые endpoints требуют аутентифицированного пользователя
	authorized := r.Group("/", authMiddleware.RequireAuth())
	{
		authorized.GET("/customer", billingHandler.GetCustomer)
		authorized.GET("/customer/subscriptions", billingHandler.GetSubscriptions)
		authorized.GET("/subscription-status", billingHandler.GetSubscriptionStatus)
		authorized.GET("/proxy-api/access", billingHandler.FeatureAccess(domain.FeatureProxyAPI))
		authorized.GET("/serp-api/access", billingHandler.FeatureAccess(domain.FeatureSERPAPI))
	}

	return r
}
