package domain

// Customer представляет собой проекцию клиента биллинга (только чтение).
type Customer struct {
	ID          string  `json:"id"`
	Email       *string `json:"email"`
	Name        *string `json:"name"`
	Created     int64   `json:"created"`
	Description *string `json:"description"`
}
