package domain

// User представляет аутентифицированного пользователя, полученного от
// сервиса идентификации. Поставляется middleware аутентификации.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	// StripeCustomerID внешний идентификатор клиента в биллинге.
	// Пустая строка означает, что пользователь никогда не был привязан к биллингу.
	StripeCustomerID string `json:"stripe_customer_id,omitempty"`
}

// HasBillingAccount проверяет, привязан ли пользователь к клиенту биллинга.
func (u User) HasBillingAccount() bool {
	return u.StripeCustomerID != ""
}
