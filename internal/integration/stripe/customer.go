package stripe

import (
	"context"
)

// CustomerResponse представляет ответ от API Stripe при работе с клиентом
type CustomerResponse struct {
	ID          string            `json:"id"`
	Object      string            `json:"object"`
	Email       *string           `json:"email"`
	Name        *string           `json:"name"`
	Description *string           `json:"description"`
	Metadata    map[string]string `json:"metadata"`
	Created     int64             `json:"created"`
	Deleted     bool              `json:"deleted,omitempty"`
}

// GetCustomer получает клиента из Stripe по ID
func (c *Client) GetCustomer(ctx context.Context, stripeID string) (*CustomerResponse, error) {
	c.log.Debug("Getting Stripe customer with ID: %s", stripeID)

	var customerResp CustomerResponse
	if err := c.get(ctx, "/customers/"+stripeID, nil, &customerResp); err != nil {
		return nil, err
	}

	c.log.Debug("Successfully retrieved Stripe customer: %s", customerResp.ID)
	return &customerResp, nil
}
