package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bridgewms/kepabeanan-api/internal/domain/entity"
	"github.com/bridgewms/kepabeanan-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo warehouse registry over PostgreSQL.
type WarehouseRepo struct {
	pool *pgxpool.Pool
}

// NewWarehouseRepository builds the adapter.
func NewWarehouseRepository(pool *pgxpool.Pool) *WarehouseRepo {
	return &WarehouseRepo{pool: pool}
}

// GetByID returns the warehouse, or nil when the id is unknown.
func (r *WarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	query := `
		SELECT id, name, country, city, metadata, created_at, updated_at
		FROM warehouses WHERE id = $1`
	var w entity.Warehouse
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&w.ID, &w.Name, &w.Country, &w.City, &w.Metadata, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return &w, nil
}

// Upsert inserts or updates the warehouse by id.
func (r *WarehouseRepo) Upsert(w *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (id, name, country, city, metadata, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id)
		DO UPDATE SET name = EXCLUDED.name, country = EXCLUDED.country,
		              city = EXCLUDED.city, metadata = EXCLUDED.metadata,
		              updated_at = EXCLUDED.updated_at`
	_, err := r.pool.Exec(context.Background(), query,
		w.ID, w.Name, w.Country, w.City, w.Metadata, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert warehouse: %w", err)
	}
	return nil
}

// Delete removes the warehouse by id.
func (r *WarehouseRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM warehouses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete warehouse: %w", err)
	}
	return nil
}

// List returns all warehouses in insertion order.
func (r *WarehouseRepo) List() ([]entity.Warehouse, error) {
	query := `
		SELECT id, name, country, city, metadata, created_at, updated_at
		FROM warehouses ORDER BY created_at`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()

	list := []entity.Warehouse{}
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.ID, &w.Name, &w.Country, &w.City, &w.Metadata, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, w)
	}
	return list, rows.Err()
}
