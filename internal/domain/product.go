package domain

import "time"

type Product struct {
	ID          string    `json:"id"`
	SellerEmail string    `json:"seller_email" validate:"required,email"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Price       float64   `json:"price" validate:"gte=0"`
	Stock       int       `json:"stock" validate:"gte=0"`
	Category    string    `json:"category" validate:"required"`
	Brand       string    `json:"brand" validate:"required"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UpdateProductRequest — тело PUT /products/{id}.
// Контракт жёсткий: все поля обязательны, частичных обновлений нет.
// Указатели нужны, чтобы отличить отсутствующее поле от нулевого значения.
type UpdateProductRequest struct {
	Title       *string  `json:"title" validate:"required"`
	Description *string  `json:"description" validate:"required"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Stock       *int     `json:"stock" validate:"required,gte=0"`
	Category    *string  `json:"category" validate:"required"`
	Brand       *string  `json:"brand" validate:"required"`
}

// ProductFilter — параметры GET /products.
// Title и Category — регистронезависимое вхождение, Brand — точное совпадение.
type ProductFilter struct {
	Title    string
	Category string
	Brand    string
	// Sort — сортировка по цене: "asc" | "desc". Пусто — без сортировки.
	Sort string
}

// Facets — полные множества значений brand/category по всей коллекции,
// без учёта активных фильтров.
type Facets struct {
	Brands     []string `json:"brands"`
	Categories []string `json:"categories"`
}

// Catalog — ответ листинга: товары после фильтра + фасеты по всей коллекции.
type Catalog struct {
	Products   []Product `json:"products"`
	Brands     []string  `json:"brands"`
	Categories []string  `json:"categories"`
}
