package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/proxidata/billing-service/internal/domain"
	"github.com/proxidata/billing-service/pkg/logger"
)

const defaultBaseURL = "https://api.stripe.com/v1"

// Client представляет клиент для чтения из API Stripe.
type Client struct {
	baseURL    string
	apiKey     string
	apiVersion string
	httpClient *http.Client
	log        *logger.Logger
}

// Config конфигурация для клиента Stripe
type Config struct {
	APIKey string
	// APIVersion фиксируется на старте процесса и отправляется в заголовке
	// Stripe-Version на каждый запрос
	APIVersion string
	// Timeout ограничение на один запрос к провайдеру
	Timeout time.Duration
	// BaseURL переопределяется в тестах
	BaseURL string
}

// NewClient создает новый клиент Stripe
func NewClient(cfg Config, log *logger.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		apiVersion: cfg.APIVersion,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// IsConfigured проверяет, задан ли ключ API провайдера.
func (c *Client) IsConfigured() bool {
	return c.apiKey != ""
}

// ErrorResponse представляет ошибку от API Stripe
type ErrorResponse struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	Code      string `json:"code"`
	Param     string `json:"param"`
	RequestID string `json:"request_log_url,omitempty"`
}

// get выполняет GET-запрос к API Stripe и декодирует ответ в out.
// Ошибка провайдера (объект error в теле) преобразуется в domain.ProviderError
// с HTTP-статусом ответа.
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint = endpoint + "?" + query.Encode()
	}

	// Создаем запрос
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	// Добавляем заголовки
	req.Header.Add("Authorization", "Bearer "+c.apiKey)
	if c.apiVersion != "" {
		req.Header.Add("Stripe-Version", c.apiVersion)
	}

	// Выполняем запрос; таймаут клиента трактуем как ошибку провайдера
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.NewProviderError("request_failed", "failed to reach billing provider", 0, err)
	}
	defer resp.Body.Close()

	// Парсим тело вместе с возможным объектом ошибки
	var envelope struct {
		Error *ErrorResponse `json:"error,omitempty"`
	}
	body := json.NewDecoder(resp.Body)
	raw := json.RawMessage{}
	if err := body.Decode(&raw); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	// Проверяем на ошибки
	if envelope.Error != nil {
		c.log.Errorw("Stripe API error",
			"path", path,
			"type", envelope.Error.Type,
			"code", envelope.Error.Code,
			"message", envelope.Error.Message,
			"status_code", resp.StatusCode,
		)
		return domain.NewProviderError(envelope.Error.Code, envelope.Error.Message, resp.StatusCode, nil)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
