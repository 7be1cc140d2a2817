package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/proxidata/billing-service/internal/domain"
	"github.com/proxidata/billing-service/internal/middleware"
	"github.com/proxidata/billing-service/internal/service"
	"github.com/proxidata/billing-service/pkg/logger"
)

const (
	msgMissingAPIKey    = "Server configuration error: Missing Stripe API key"
	msgNoLinkedCustomer = "No Stripe customer associated with this user"
	msgInternalError    = "An internal server error occurred."
)

// BillingHandler обработчик запросов о биллинговом состоянии пользователя
type BillingHandler struct {
	service service.BillingService
	log     *logger.Logger
}

// NewBillingHandler создает новый обработчик биллинга
func NewBillingHandler(svc service.BillingService, log *logger.Logger) *BillingHandler {
	return &BillingHandler{
		service: svc,
		log:     log,
	}
}

// GetCustomer возвращает профиль клиента биллинга
func (h *BillingHandler) GetCustomer(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		h.respondNoUser(c)
		return
	}

	customer, err := h.service.GetCustomer(c.Request.Context(), user)
	if err != nil {
		h.respondError(c, err, "Failed to fetch customer", false)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// GetSubscriptions возвращает действующие подписки пользователя
func (h *BillingHandler) GetSubscriptions(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		h.respondNoUser(c)
		return
	}

	subscriptions, err := h.service.ListSubscriptions(c.Request.Context(), user)
	if err != nil {
		h.respondError(c, err, "Failed to fetch subscriptions", false)
		return
	}

	c.JSON(http.StatusOK, subscriptions)
}

// GetSubscriptionStatus возвращает сводку по статусу подписки.
// Отсутствие привязки к биллингу здесь не ошибка: возвращается
// деактивированная сводка со статусом 200.
func (h *BillingHandler) GetSubscriptionStatus(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		h.respondNoUser(c)
		return
	}

	summary, err := h.service.GetSubscriptionStatus(c.Request.Context(), user)
	if err != nil {
		h.respondError(c, err, "Failed to fetch subscription status", false)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// FeatureAccess возвращает обработчик проверки доступа к фиче.
// Обе фичи обслуживаются одним кодом, различаясь только конфигурацией.
func (h *BillingHandler) FeatureAccess(feature domain.Feature) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			h.respondNoUser(c)
			return
		}

		access, err := h.service.CheckFeatureAccess(c.Request.Context(), user, feature)
		if err != nil {
			h.respondError(c, err, "Failed to check "+feature.MetadataKey+" access", feature.ForwardProviderStatus)
			return
		}

		c.JSON(http.StatusOK, access)
	}
}

// respondError переводит ошибки сервиса в HTTP-статусы.
// Ошибка провайдера по умолчанию отдается как 400 с его сообщением;
// при forwardProviderStatus используется собственный статус провайдера.
func (h *BillingHandler) respondError(c *gin.Context, err error, providerPrefix string, forwardProviderStatus bool) {
	switch {
	case err == domain.ErrProviderNotConfigured:
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgMissingAPIKey})

	case err == domain.ErrNoLinkedCustomer:
		c.JSON(http.StatusNotFound, gin.H{"error": msgNoLinkedCustomer})

	default:
		if providerErr, ok := domain.AsProviderError(err); ok {
			status := http.StatusBadRequest
			if forwardProviderStatus && providerErr.StatusCode != 0 {
				status = providerErr.StatusCode
			}
			c.JSON(status, gin.H{"error": providerPrefix + ": " + providerErr.Message})
			return
		}

		h.log.Error("Internal server error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
	}
}

// respondNoUser запрос дошел до обработчика без аутентификации
func (h *BillingHandler) respondNoUser(c *gin.Context) {
	h.log.Error("No authenticated user in request context: %s", c.Request.URL.Path)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
}
