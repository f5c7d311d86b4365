package domain

import "errors"

// ErrNotFound маппится в 404 на границе хендлеров.
var ErrNotFound = errors.New("not found")

// Результаты мутаций. Форма едина для всех эндпоинтов,
// в отличие от сырых объектов драйвера.
type UpdateResult struct {
	Matched  int64 `json:"matched"`
	Modified int64 `json:"modified"`
}

type DeleteResult struct {
	Deleted int64 `json:"deleted"`
}

type InsertResult struct {
	InsertedID string `json:"inserted_id"`
}
