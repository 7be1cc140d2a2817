package stripe

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

// SubscriptionResponse представляет ответ от API Stripe о подписке
type SubscriptionResponse struct {
	ID                 string        `json:"id"`
	Object             string        `json:"object"`
	Customer           string        `json:"customer"`
	Status             string        `json:"status"`
	CurrentPeriodStart *int64        `json:"current_period_start"`
	CurrentPeriodEnd   *int64        `json:"current_period_end"`
	TrialStart         *int64        `json:"trial_start"`
	TrialEnd           *int64        `json:"trial_end"`
	CancelAtPeriodEnd  bool          `json:"cancel_at_period_end"`
	Plan               *PlanResponse `json:"plan"`
	Created            int64         `json:"created"`
}

// PlanResponse представляет план подписки. Поле product раскрывается
// через expand=data.plan.product и без раскрытия приходит строкой ID,
// поэтому тип — указатель на объект только при раскрытии.
type PlanResponse struct {
	ID       string           `json:"id"`
	Object   string           `json:"object"`
	Nickname *string          `json:"nickname"`
	Amount   int64            `json:"amount"`
	Currency string           `json:"currency"`
	Interval string           `json:"interval"`
	Product  *ProductResponse `json:"product"`
}

// ProductResponse представляет продукт, к которому привязан план
type ProductResponse struct {
	ID       string            `json:"id"`
	Object   string            `json:"object"`
	Name     *string           `json:"name"`
	Metadata map[string]string `json:"metadata"`
}

// UnmarshalJSON поддерживает оба представления продукта: строка-ID
// (без expand) и полный объект (с expand).
func (p *ProductResponse) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		// Продукт без раскрытия: только ID
		id := string(data[1 : len(data)-1])
		*p = ProductResponse{ID: id}
		return nil
	}

	type productAlias ProductResponse
	var alias productAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*p = ProductResponse(alias)
	return nil
}

// SubscriptionListResponse представляет список подписок
type SubscriptionListResponse struct {
	Object  string                 `json:"object"`
	HasMore bool                   `json:"has_more"`
	URL     string                 `json:"url"`
	Data    []SubscriptionResponse `json:"data"`
}

// ListOptions параметры запроса списка подписок
type ListOptions struct {
	// Status фильтр по статусу на стороне провайдера ("all" — все)
	Status string
	// Limit ограничение количества записей (0 — по умолчанию провайдера)
	Limit int
	// ExpandProduct раскрывать ли план и продукт в ответе
	ExpandProduct bool
}

// ListSubscriptions получает подписки клиента из Stripe
func (c *Client) ListSubscriptions(ctx context.Context, customerID string, opts ListOptions) ([]SubscriptionResponse, error) {
	c.log.Debug("Listing Stripe subscriptions for customer: %s", customerID)

	query := url.Values{}
	query.Add("customer", customerID)
	if opts.Status != "" {
		query.Add("status", opts.Status)
	}
	if opts.Limit > 0 {
		query.Add("limit", strconv.Itoa(opts.Limit))
	}
	if opts.ExpandProduct {
		query.Add("expand[]", "data.plan.product")
	}

	var listResp SubscriptionListResponse
	if err := c.get(ctx, "/subscriptions", query, &listResp); err != nil {
		return nil, err
	}

	c.log.Debug("Retrieved %d subscriptions for customer: %s", len(listResp.Data), customerID)
	return listResp.Data, nil
}
