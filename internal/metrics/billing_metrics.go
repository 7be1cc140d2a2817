package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/proxidata/billing-service/pkg/logger"
)

// BillingMetrics интерфейс для метрик запросов к провайдеру биллинга
type BillingMetrics interface {
	IncProviderRequest(operation string, outcome string)
	ObserveProviderLatency(operation string, seconds float64)
	IncFeatureCheck(feature string, granted bool)
}

type billingMetrics struct {
	log              *logger.Logger
	providerRequests *prometheus.CounterVec
	providerLatency  *prometheus.HistogramVec
	featureChecks    *prometheus.CounterVec
}

// NewBillingMetrics создает новые метрики биллинга
func NewBillingMetrics(registry *prometheus.Registry, log *logger.Logger) BillingMetrics {
	providerRequests := promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "billing_provider_requests_total",
			Help: "The total number of billing provider requests by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	providerLatency := promauto.With(registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "billing_provider_request_duration_seconds",
			Help:    "Billing provider request latency distribution",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	featureChecks := promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "billing_feature_checks_total",
			Help: "The total number of feature access checks by feature and result",
		},
		[]string{"feature", "granted"},
	)

	return &billingMetrics{
		log:              log,
		providerRequests: providerRequests,
		providerLatency:  providerLatency,
		featureChecks:    featureChecks,
	}
}

// IncProviderRequest увеличивает счетчик запросов к провайдеру
func (m *billingMetrics) IncProviderRequest(operation string, outcome string) {
	m.providerRequests.WithLabelValues(operation, outcome).Inc()
}

// ObserveProviderLatency записывает длительность запроса к провайдеру
func (m *billingMetrics) ObserveProviderLatency(operation string, seconds float64) {
	m.providerLatency.WithLabelValues(operation).Observe(seconds)
}

// IncFeatureCheck увеличивает счетчик проверок доступа к фиче
func (m *billingMetrics) IncFeatureCheck(feature string, granted bool) {
	result := "denied"
	if granted {
		result = "granted"
	}
	m.featureChecks.WithLabelValues(feature, result).Inc()
}

// NopBillingMetrics метрики-заглушка (используется в тестах)
type NopBillingMetrics struct{}

func (NopBillingMetrics) IncProviderRequest(string, string) {}

func (NopBillingMetrics) ObserveProviderLatency(string, float64) {}

func (NopBillingMetrics) IncFeatureCheck(string, bool) {}
