package domain

// SubscriptionStatus статус подписки у провайдера биллинга.
type SubscriptionStatus string

const (
	SubscriptionStatusActive            SubscriptionStatus = "active"
	SubscriptionStatusTrialing          SubscriptionStatus = "trialing"
	SubscriptionStatusPastDue           SubscriptionStatus = "past_due"
	SubscriptionStatusCanceled          SubscriptionStatus = "canceled"
	SubscriptionStatusUnpaid            SubscriptionStatus = "unpaid"
	SubscriptionStatusIncomplete        SubscriptionStatus = "incomplete"
	SubscriptionStatusIncompleteExpired SubscriptionStatus = "incomplete_expired"
)

// IsBillable статусы, при которых подписка считается действующей.
func (s SubscriptionStatus) IsBillable() bool {
	switch s {
	case SubscriptionStatusActive, SubscriptionStatusTrialing, SubscriptionStatusPastDue:
		return true
	}
	return false
}

// IsTerminal статусы, при которых биллинговые отношения закрыты.
func (s SubscriptionStatus) IsTerminal() bool {
	switch s {
	case SubscriptionStatusCanceled, SubscriptionStatusUnpaid, SubscriptionStatusIncompleteExpired:
		return true
	}
	return false
}

// Subscription представляет собой проекцию подписки с раскрытыми
// планом и продуктом. Вложенные поля опциональны: план, продукт и
// метаданные могут отсутствовать независимо друг от друга.
type Subscription struct {
	ID                 string             `json:"id"`
	Status             SubscriptionStatus `json:"status"`
	PlanID             *string            `json:"plan_id"`
	PlanName           *string            `json:"plan_name"`
	ProductID          *string            `json:"product_id"`
	ProductName        *string            `json:"product_name"`
	CurrentPeriodStart *int64             `json:"current_period_start"`
	CurrentPeriodEnd   *int64             `json:"current_period_end"`
	TrialStart         *int64             `json:"trial_start"`
	TrialEnd           *int64             `json:"trial_end"`
	CancelAtPeriodEnd  bool               `json:"cancel_at_period_end"`
	Metadata           map[string]string  `json:"metadata"`
}

// MetadataValue возвращает значение метаданных продукта по ключу.
// Отсутствие метаданных или ключа не является ошибкой.
func (s Subscription) MetadataValue(key string) (string, bool) {
	if s.Metadata == nil {
		return "", false
	}
	v, ok := s.Metadata[key]
	return v, ok
}

// StatusSummary сводка по статусу подписки, вычисляется на каждый запрос.
type StatusSummary struct {
	HasSubscription bool `json:"hasSubscription"`
	IsTrial         bool `json:"isTrial"`
	IsDeactivated   bool `json:"isDeactivated"`
}

// DeactivatedSummary сводка для пользователя без биллинговых отношений.
func DeactivatedSummary() StatusSummary {
	return StatusSummary{
		HasSubscription: false,
		IsTrial:         false,
		IsDeactivated:   true,
	}
}

// SummaryForStatus выводит сводку из статуса одной подписки.
// Статус вне всех трёх множеств (например incomplete) даёт сводку
// со всеми false.
func SummaryForStatus(status SubscriptionStatus) StatusSummary {
	return StatusSummary{
		HasSubscription: status.IsBillable(),
		IsTrial:         status == SubscriptionStatusTrialing,
		IsDeactivated:   status.IsTerminal(),
	}
}
