package domain

import "time"

// WishlistItem — позиция вишлиста. Пара (email, product_id) уникальна:
// повторное добавление возвращает существующую запись.
type WishlistItem struct {
	ID        string    `json:"id"`
	Email     string    `json:"email" validate:"required,email"`
	ProductID string    `json:"product_id" validate:"required"`
	Title     string    `json:"title,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
	Price     float64   `json:"price,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
