package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/xela07ax/mrfashion-backend/internal/domain"
)

// FindWishlistItem ищет позицию по паре (email, product_id).
// Пара уникальна, на ней держится идемпотентность добавления.
func (s *Store) FindWishlistItem(ctx context.Context, email, productID string) (*domain.WishlistItem, error) {
	query := `
		SELECT id, email, product_id, title, image_url, price, created_at
		FROM wishlists WHERE email = $1 AND product_id = $2`

	item := &domain.WishlistItem{}
	err := s.pool.QueryRow(ctx, query, email, productID).Scan(
		&item.ID, &item.Email, &item.ProductID, &item.Title, &item.ImageURL, &item.Price, &item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return item, nil
}

func (s *Store) CreateWishlistItem(ctx context.Context, item *domain.WishlistItem) error {
	query := `
		INSERT INTO wishlists (id, email, product_id, title, image_url, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())`

	_, err := s.pool.Exec(ctx, query,
		item.ID, item.Email, item.ProductID, item.Title, item.ImageURL, item.Price,
	)
	if err != nil {
		return fmt.Errorf("postgres: failed to create wishlist item: %w", err)
	}
	return nil
}

func (s *Store) ListWishlistByEmail(ctx context.Context, email string) ([]domain.WishlistItem, error) {
	query := `
		SELECT id, email, product_id, title, image_url, price, created_at
		FROM wishlists WHERE email = $1 ORDER BY created_at DESC`

	rows, err := s.pool.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.WishlistItem
	for rows.Next() {
		var item domain.WishlistItem
		if err := rows.Scan(&item.ID, &item.Email, &item.ProductID, &item.Title, &item.ImageURL, &item.Price, &item.CreatedAt); err != nil {
			return nil, err
		}
		results = append(results, item)
	}
	return results, rows.Err()
}

func (s *Store) DeleteWishlistItem(ctx context.Context, id string) (*domain.DeleteResult, error) {
	query := `DELETE FROM wishlists WHERE id = $1`

	ct, err := s.pool.Exec(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to delete wishlist item: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return nil, fmt.Errorf("postgres: wishlist item %s: %w", id, domain.ErrNotFound)
	}
	return &domain.DeleteResult{Deleted: ct.RowsAffected()}, nil
}
