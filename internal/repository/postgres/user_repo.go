package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/xela07ax/mrfashion-backend/internal/domain"
)

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, name, photo_url, role, created_at, updated_at
		FROM users WHERE email = $1`

	u := &domain.User{}
	err := s.pool.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.Name, &u.PhotoURL, &u.Role, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // nil для 404/идемпотентного create в сервисе
		}
		return nil, err
	}
	return u, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]domain.User, error) {
	query := `
		SELECT id, email, name, photo_url, role, created_at, updated_at
		FROM users ORDER BY created_at`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.PhotoURL, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		results = append(results, u)
	}
	return results, rows.Err()
}

func (s *Store) CreateUser(ctx context.Context, u *domain.User) error {
	query := `
		INSERT INTO users (id, email, name, photo_url, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())`

	_, err := s.pool.Exec(ctx, query, u.ID, u.Email, u.Name, u.PhotoURL, u.Role)
	if err != nil {
		return fmt.Errorf("postgres: failed to create user: %w", err)
	}
	return nil
}

// UpdateUserRole меняет только роль. Единственный источник правды для
// привилегированных маршрутов — это поле, не токен.
func (s *Store) UpdateUserRole(ctx context.Context, id, role string) (*domain.UpdateResult, error) {
	query := `UPDATE users SET role = $1, updated_at = NOW() WHERE id = $2`

	ct, err := s.pool.Exec(ctx, query, role, id)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to update role: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return nil, fmt.Errorf("postgres: user %s: %w", id, domain.ErrNotFound)
	}
	return &domain.UpdateResult{Matched: ct.RowsAffected(), Modified: ct.RowsAffected()}, nil
}

func (s *Store) DeleteUser(ctx context.Context, id string) (*domain.DeleteResult, error) {
	query := `DELETE FROM users WHERE id = $1`

	ct, err := s.pool.Exec(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to delete user: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return nil, fmt.Errorf("postgres: user %s: %w", id, domain.ErrNotFound)
	}
	return &domain.DeleteResult{Deleted: ct.RowsAffected()}, nil
}
