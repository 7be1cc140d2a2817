package domain

import (
	"errors"
	"fmt"
)

// Application errors
var (
	// ErrProviderNotConfigured отсутствует ключ API провайдера биллинга
	ErrProviderNotConfigured = errors.New("billing provider is not configured")

	// ErrNoLinkedCustomer у пользователя нет привязанного клиента биллинга
	ErrNoLinkedCustomer = errors.New("no billing customer linked to this user")

	// ErrNotFound запись не найдена
	ErrNotFound = errors.New("record not found")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("internal error")
)

// ProviderError представляет ошибку внешнего провайдера биллинга.
type ProviderError struct {
	Code        string
	Message     string
	RequestID   string
	StatusCode  int
	OriginalErr error
}

// Error реализует интерфейс error
func (e *ProviderError) Error() string {
	if e.OriginalErr != nil {
		return fmt.Sprintf("billing provider error [%s]: %s: %v", e.Code, e.Message, e.OriginalErr)
	}
	return fmt.Sprintf("billing provider error [%s]: %s", e.Code, e.Message)
}

// Unwrap возвращает оригинальную ошибку
func (e *ProviderError) Unwrap() error {
	return e.OriginalErr
}

// NewProviderError создает новую ошибку провайдера
func NewProviderError(code, message string, statusCode int, err error) *ProviderError {
	return &ProviderError{
		Code:        code,
		Message:     message,
		StatusCode:  statusCode,
		OriginalErr: err,
	}
}

// AsProviderError извлекает ProviderError из цепочки ошибок.
func AsProviderError(err error) (*ProviderError, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
