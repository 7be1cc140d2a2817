package stripe

import (
	"github.com/proxidata/billing-service/internal/domain"
)

// ToDomainCustomer преобразует клиента Stripe в доменную модель
func ToDomainCustomer(stripeCustomer *CustomerResponse) domain.Customer {
	return domain.Customer{
		ID:          stripeCustomer.ID,
		Email:       stripeCustomer.Email,
		Name:        stripeCustomer.Name,
		Created:     stripeCustomer.Created,
		Description: stripeCustomer.Description,
	}
}

// ToDomainSubscription преобразует подписку Stripe в доменную модель.
// Цепочка план → продукт → метаданные разрешается здесь один раз:
// каждый уровень может отсутствовать независимо, и это не ошибка.
func ToDomainSubscription(sub SubscriptionResponse) domain.Subscription {
	var planID, planName, productID, productName *string
	var metadata map[string]string

	if sub.Plan != nil {
		id := sub.Plan.ID
		planID = &id
		planName = sub.Plan.Nickname

		if sub.Plan.Product != nil {
			pid := sub.Plan.Product.ID
			productID = &pid
			productName = sub.Plan.Product.Name
			metadata = sub.Plan.Product.Metadata
		}
	}

	return domain.Subscription{
		ID:                 sub.ID,
		Status:             domain.SubscriptionStatus(sub.Status),
		PlanID:             planID,
		PlanName:           planName,
		ProductID:          productID,
		ProductName:        productName,
		CurrentPeriodStart: sub.CurrentPeriodStart,
		CurrentPeriodEnd:   sub.CurrentPeriodEnd,
		TrialStart:         sub.TrialStart,
		TrialEnd:           sub.TrialEnd,
		CancelAtPeriodEnd:  sub.CancelAtPeriodEnd,
		Metadata:           metadata,
	}
}

// ToDomainSubscriptions преобразует список подписок, сохраняя порядок провайдера
func ToDomainSubscriptions(subs []SubscriptionResponse) []domain.Subscription {
	result := make([]domain.Subscription, 0, len(subs))
	for _, sub := range subs {
		result = append(result, ToDomainSubscription(sub))
	}
	return result
}
