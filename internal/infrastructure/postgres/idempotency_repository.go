package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bridgewms/kepabeanan-api/internal/domain/repository"
)

var _ repository.IdempotencyRepository = (*IdempotencyRepo)(nil)

// IdempotencyRepo processed-event keys over PostgreSQL.
type IdempotencyRepo struct {
	pool *pgxpool.Pool
}

// NewIdempotencyRepository builds the adapter.
func NewIdempotencyRepository(pool *pgxpool.Pool) *IdempotencyRepo {
	return &IdempotencyRepo{pool: pool}
}

// Seen reports whether the key was already processed.
func (r *IdempotencyRepo) Seen(key string) (bool, error) {
	var seen bool
	err := r.pool.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM idempotency_keys WHERE key = $1)`, key).Scan(&seen)
	if err != nil {
		return false, fmt.Errorf("check idempotency key: %w", err)
	}
	return seen, nil
}

// Mark records the key. A concurrent duplicate insert is not an error.
func (r *IdempotencyRepo) Mark(key, event string) error {
	_, err := r.pool.Exec(context.Background(),
		`INSERT INTO idempotency_keys (key, event) VALUES ($1, $2) ON CONFLICT (key) DO NOTHING`, key, event)
	if err != nil {
		return fmt.Errorf("mark idempotency key: %w", err)
	}
	return nil
}
