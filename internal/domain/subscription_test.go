package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummaryForStatus(t *testing.T) {
	tests := []struct {
		status   SubscriptionStatus
		expected StatusSummary
	}{
		{SubscriptionStatusActive, StatusSummary{HasSubscription: true, IsTrial: false, IsDeactivated: false}},
		{SubscriptionStatusTrialing, StatusSummary{HasSubscription: true, IsTrial: true, IsDeactivated: false}},
		{SubscriptionStatusPastDue, StatusSummary{HasSubscription: true, IsTrial: false, IsDeactivated: false}},
		{SubscriptionStatusCanceled, StatusSummary{HasSubscription: false, IsTrial: false, IsDeactivated: true}},
		{SubscriptionStatusUnpaid, StatusSummary{HasSubscription: false, IsTrial: false, IsDeactivated: true}},
		{SubscriptionStatusIncompleteExpired, StatusSummary{HasSubscription: false, IsTrial: false, IsDeactivated: true}},
		// Статус вне всех множеств дает сводку со всеми false
		{SubscriptionStatusIncomplete, StatusSummary{HasSubscription: false, IsTrial: false, IsDeactivated: false}},
		{SubscriptionStatus("paused"), StatusSummary{HasSubscription: false, IsTrial: false, IsDeactivated: false}},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expected, SummaryForStatus(tt.status))
		})
	}
}

func TestDeactivatedSummary(t *testing.T) {
	summary := DeactivatedSummary()
	assert.False(t, summary.HasSubscription)
	assert.False(t, summary.IsTrial)
	assert.True(t, summary.IsDeactivated)
}

func TestMetadataValue(t *testing.T) {
	sub := Subscription{Metadata: map[string]string{"serp-api": "true"}}

	value, ok := sub.MetadataValue("serp-api")
	assert.True(t, ok)
	assert.Equal(t, "true", value)

	_, ok = sub.MetadataValue("proxy-api")
	assert.False(t, ok)

	empty := Subscription{}
	_, ok = empty.MetadataValue("serp-api")
	assert.False(t, ok)
}

func TestUserHasBillingAccount(t *testing.T) {
	assert.False(t, User{Email: "user@example.com"}.HasBillingAccount())
	assert.True(t, User{Email: "user@example.com", StripeCustomerID: "cus_123"}.HasBillingAccount())
}
