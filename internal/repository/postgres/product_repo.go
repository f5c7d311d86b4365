package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/xela07ax/mrfashion-backend/internal/domain"
)

const productColumns = `id, seller_email, title, description, price, stock, category, brand, image_url, created_at, updated_at`

func scanProduct(row pgx.Row, p *domain.Product) error {
	return row.Scan(
		&p.ID, &p.SellerEmail, &p.Title, &p.Description, &p.Price,
		&p.Stock, &p.Category, &p.Brand, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
	)
}

func (s *Store) CreateProduct(ctx context.Context, p *domain.Product) error {
	query := `
		INSERT INTO products (id, seller_email, title, description, price, stock, category, brand, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())`

	_, err := s.pool.Exec(ctx, query,
		p.ID, p.SellerEmail, p.Title, p.Description, p.Price, p.Stock, p.Category, p.Brand, p.ImageURL,
	)
	if err != nil {
		return fmt.Errorf("postgres: failed to create product: %w", err)
	}
	return nil
}

// ListProducts возвращает товары под фильтром листинга.
// Title/Category — регистронезависимое вхождение (ILIKE), Brand — точное
// совпадение, Sort — бинарный переключатель сортировки по цене.
func (s *Store) ListProducts(ctx context.Context, f domain.ProductFilter) ([]domain.Product, error) {
	var (
		conds []string
		args  []any
	)

	if f.Title != "" {
		args = append(args, f.Title)
		conds = append(conds, "title ILIKE '%' || $"+strconv.Itoa(len(args))+" || '%'")
	}
	if f.Category != "" {
		args = append(args, f.Category)
		conds = append(conds, "category ILIKE '%' || $"+strconv.Itoa(len(args))+" || '%'")
	}
	if f.Brand != "" {
		args = append(args, f.Brand)
		conds = append(conds, "brand = $"+strconv.Itoa(len(args)))
	}

	query := "SELECT " + productColumns + " FROM products"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	switch f.Sort {
	case "asc":
		query += " ORDER BY price ASC"
	case "desc":
		query += " ORDER BY price DESC"
	default:
		query += " ORDER BY created_at DESC"
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		results = append(results, p)
	}
	return results, rows.Err()
}

func (s *Store) GetProductsBySeller(ctx context.Context, sellerEmail string) ([]domain.Product, error) {
	query := "SELECT " + productColumns + " FROM products WHERE seller_email = $1 ORDER BY created_at DESC"

	rows, err := s.pool.Query(ctx, query, sellerEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		results = append(results, p)
	}
	return results, rows.Err()
}

// DistinctFacets собирает полные множества brand/category по всей коллекции.
// Дорогая операция на каждый листинг — поверх неё стоит redis-кэш сервиса.
func (s *Store) DistinctFacets(ctx context.Context) (*domain.Facets, error) {
	facets := &domain.Facets{}

	collect := func(query string, dst *[]string) error {
		rows, err := s.pool.Query(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var v string
			if err := rows.Scan(&v); err != nil {
				return err
			}
			*dst = append(*dst, v)
		}
		return rows.Err()
	}

	if err := collect(`SELECT DISTINCT brand FROM products ORDER BY brand`, &facets.Brands); err != nil {
		return nil, fmt.Errorf("postgres: failed to aggregate brands: %w", err)
	}
	if err := collect(`SELECT DISTINCT category FROM products ORDER BY category`, &facets.Categories); err != nil {
		return nil, fmt.Errorf("postgres: failed to aggregate categories: %w", err)
	}
	return facets, nil
}

// UpdateProduct перезаписывает полный набор полей. Частичных обновлений
// в контракте нет, валидация обязательности — на границе хендлера.
func (s *Store) UpdateProduct(ctx context.Context, id string, req *domain.UpdateProductRequest) (*domain.UpdateResult, error) {
	query := `
		UPDATE products
		SET title = $1, description = $2, price = $3, stock = $4, category = $5, brand = $6, updated_at = NOW()
		WHERE id = $7`

	ct, err := s.pool.Exec(ctx, query,
		*req.Title, *req.Description, *req.Price, *req.Stock, *req.Category, *req.Brand, id,
	)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to update product: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return nil, fmt.Errorf("postgres: product %s: %w", id, domain.ErrNotFound)
	}
	return &domain.UpdateResult{Matched: ct.RowsAffected(), Modified: ct.RowsAffected()}, nil
}

func (s *Store) DeleteProduct(ctx context.Context, id string) (*domain.DeleteResult, error) {
	query := `DELETE FROM products WHERE id = $1`

	ct, err := s.pool.Exec(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to delete product: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return nil, fmt.Errorf("postgres: product %s: %w", id, domain.ErrNotFound)
	}
	return &domain.DeleteResult{Deleted: ct.RowsAffected()}, nil
}
