package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/xela07ax/mrfashion-backend/internal/infra"
)

// Store — единая точка доступа слоёв сервиса к PostgreSQL.
// Все репозитории (users, products, wishlists) — методы на этом типе;
// сервисы объявляют свои узкие интерфейсы на стороне потребителя.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore создает пул соединений. Соединение проверяется в main через Ping.
func NewStore(ctx context.Context, cfg infra.DatabaseConfig) (*Store, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("postgres: invalid connection string: %w", err)
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		pcfg.MinConns = cfg.MinConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to create pool: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Ping проверяет доступность базы при старте.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) Close() {
	s.pool.Close()
}
