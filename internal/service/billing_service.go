package service

import (
	"context"
	"time"

	"github.com/proxidata/billing-service/internal/domain"
	"github.com/proxidata/billing-service/internal/integration/stripe"
	"github.com/proxidata/billing-service/internal/metrics"
	"github.com/proxidata/billing-service/pkg/logger"
)

// BillingProvider определяет операции чтения у провайдера биллинга.
type BillingProvider interface {
	// IsConfigured проверяет наличие ключа API провайдера
	IsConfigured() bool

	// GetCustomer получает клиента по его ID у провайдера
	GetCustomer(ctx context.Context, customerID string) (*stripe.CustomerResponse, error)

	// ListSubscriptions получает подписки клиента
	ListSubscriptions(ctx context.Context, customerID string, opts stripe.ListOptions) ([]stripe.SubscriptionResponse, error)
}

// BillingService фасад чтения биллингового состояния пользователя.
type BillingService interface {
	// GetCustomer возвращает профиль клиента биллинга
	GetCustomer(ctx context.Context, user domain.User) (domain.Customer, error)

	// ListSubscriptions возвращает действующие подписки пользователя
	ListSubscriptions(ctx context.Context, user domain.User) ([]domain.Subscription, error)

	// GetSubscriptionStatus возвращает сводку по статусу подписки
	GetSubscriptionStatus(ctx context.Context, user domain.User) (domain.StatusSummary, error)

	// CheckFeatureAccess проверяет доступ пользователя к фиче
	CheckFeatureAccess(ctx context.Context, user domain.User, feature domain.Feature) (domain.FeatureAccess, error)
}

type billingService struct {
	provider BillingProvider
	metrics  metrics.BillingMetrics
	log      *logger.Logger
}

// NewBillingService создает новый сервис биллинга
func NewBillingService(provider BillingProvider, m metrics.BillingMetrics, log *logger.Logger) BillingService {
	return &billingService{
		provider: provider,
		metrics:  m,
		log:      log,
	}
}

// checkConfigured общая предпроверка: без ключа API ни один запрос
// к провайдеру не выполняется.
func (s *billingService) checkConfigured() error {
	if !s.provider.IsConfigured() {
		s.log.Error("Stripe API key is not configured")
		return domain.ErrProviderNotConfigured
	}
	return nil
}

// GetCustomer возвращает профиль клиента биллинга для пользователя.
func (s *billingService) GetCustomer(ctx context.Context, user domain.User) (domain.Customer, error) {
	s.log.Info("Fetching customer for user: %s", user.Email)

	if err := s.checkConfigured(); err != nil {
		return domain.Customer{}, err
	}

	if !user.HasBillingAccount() {
		s.log.Warn("No Stripe customer ID for user: %s", user.Email)
		return domain.Customer{}, domain.ErrNoLinkedCustomer
	}

	start := time.Now()
	customer, err := s.provider.GetCustomer(ctx, user.StripeCustomerID)
	s.observeProviderCall("get_customer", start, err)
	if err != nil {
		s.log.Error("Stripe error for user %s: %v", user.Email, err)
		return domain.Customer{}, err
	}

	s.log.Info("Retrieved customer: %s", user.StripeCustomerID)
	return stripe.ToDomainCustomer(customer), nil
}

// ListSubscriptions возвращает подписки пользователя с раскрытыми планом и
// продуктом. Остаются только записи в статусах active, trialing и past_due;
// остальные отбрасываются с записью в лог. Порядок провайдера сохраняется.
func (s *billingService) ListSubscriptions(ctx context.Context, user domain.User) ([]domain.Subscription, error) {
	s.log.Info("Fetching subscriptions for user: %s", user.Email)

	if err := s.checkConfigured(); err != nil {
		return nil, err
	}

	if !user.HasBillingAccount() {
		s.log.Warn("No Stripe customer ID for user: %s", user.Email)
		return nil, domain.ErrNoLinkedCustomer
	}

	start := time.Now()
	subs, err := s.provider.ListSubscriptions(ctx, user.StripeCustomerID, stripe.ListOptions{
		Status:        "all",
		ExpandProduct: true,
	})
	s.observeProviderCall("list_subscriptions", start, err)
	if err != nil {
		s.log.Error("Stripe error for user %s: %v", user.Email, err)
		return nil, err
	}

	s.log.Info("Retrieved %d subscriptions for customer: %s", len(subs), user.StripeCustomerID)

	result := make([]domain.Subscription, 0, len(subs))
	for _, sub := range subs {
		mapped := stripe.ToDomainSubscription(sub)
		s.log.Infow("Subscription details",
			"subscription_id", mapped.ID,
			"status", mapped.Status,
			"plan_id", deref(mapped.PlanID),
			"product_id", deref(mapped.ProductID),
			"cancel_at_period_end", mapped.CancelAtPeriodEnd,
		)

		if !mapped.Status.IsBillable() {
			s.log.Warn("Skipping subscription %s with status %s", mapped.ID, mapped.Status)
			continue
		}

		result = append(result, mapped)
	}

	return result, nil
}

// GetSubscriptionStatus возвращает сводку по статусу подписки пользователя.
// Отсутствие привязки к биллингу не является ошибкой: пользователь, никогда
// не оформлявший подписку, считается деактивированным.
func (s *billingService) GetSubscriptionStatus(ctx context.Context, user domain.User) (domain.StatusSummary, error) {
	s.log.Info("Fetching subscription status for user: %s", user.Email)

	if err := s.checkConfigured(); err != nil {
		return domain.StatusSummary{}, err
	}

	if !user.HasBillingAccount() {
		s.log.Warn("No Stripe customer ID for user: %s", user.Email)
		return domain.DeactivatedSummary(), nil
	}

	start := time.Now()
	subs, err := s.provider.ListSubscriptions(ctx, user.StripeCustomerID, stripe.ListOptions{
		Status: "all",
		Limit:  1,
	})
	s.observeProviderCall("subscription_status", start, err)
	if err != nil {
		s.log.Error("Stripe error for user %s: %v", user.Email, err)
		return domain.StatusSummary{}, err
	}

	if len(subs) == 0 {
		s.log.Info("No subscriptions found for customer: %s", user.StripeCustomerID)
		return domain.DeactivatedSummary(), nil
	}

	status := domain.SubscriptionStatus(subs[0].Status)
	return domain.SummaryForStatus(status), nil
}

// CheckFeatureAccess проверяет доступ к фиче по тегу в метаданных продукта.
// Доступ даётся, если хотя бы одна подписка в статусе active или trialing
// несёт значение "true" по ключу фичи; первая подходящая запись решает.
func (s *billingService) CheckFeatureAccess(ctx context.Context, user domain.User, feature domain.Feature) (domain.FeatureAccess, error) {
	s.log.Info("Checking %s access for user: %s", feature.MetadataKey, user.Email)

	if err := s.checkConfigured(); err != nil {
		return domain.FeatureAccess{}, err
	}

	if !user.HasBillingAccount() {
		s.log.Warn("No Stripe customer ID for user: %s", user.Email)
		return domain.FeatureAccess{
			HasAccess: false,
			Message:   feature.NoSubscriptionMessage,
		}, nil
	}

	start := time.Now()
	subs, err := s.provider.ListSubscriptions(ctx, user.StripeCustomerID, stripe.ListOptions{
		Status:        "all",
		ExpandProduct: true,
	})
	s.observeProviderCall("feature_access", start, err)
	if err != nil {
		s.log.Error("Stripe error checking %s access for %s: %v", feature.MetadataKey, user.Email, err)
		return domain.FeatureAccess{}, err
	}

	s.log.Info("Retrieved %d subscriptions for customer: %s", len(subs), user.StripeCustomerID)

	for _, raw := range subs {
		sub := stripe.ToDomainSubscription(raw)
		s.log.Debugw("Feature check subscription",
			"subscription_id", sub.ID,
			"status", sub.Status,
			"feature", feature.MetadataKey,
		)

		if sub.Status != domain.SubscriptionStatusActive && sub.Status != domain.SubscriptionStatusTrialing {
			continue
		}

		if value, ok := sub.MetadataValue(feature.MetadataKey); ok && value == domain.FeatureMetadataEnabled {
			s.log.Info("%s access granted for user %s via subscription %s", feature.MetadataKey, user.Email, sub.ID)
			s.metrics.IncFeatureCheck(feature.MetadataKey, true)
			return domain.FeatureAccess{
				HasAccess: true,
				Message:   feature.GrantedMessage,
			}, nil
		}
	}

	s.log.Warn("%s access denied for user %s", feature.MetadataKey, user.Email)
	s.metrics.IncFeatureCheck(feature.MetadataKey, false)
	return domain.FeatureAccess{
		HasAccess: false,
		Message:   feature.DeniedMessage,
	}, nil
}

// observeProviderCall записывает метрики одного запроса к провайдеру
func (s *billingService) observeProviderCall(operation string, start time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	s.metrics.IncProviderRequest(operation, outcome)
	s.metrics.ObserveProviderLatency(operation, time.Since(start).Seconds())
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
