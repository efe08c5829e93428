package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/bridgewms/kepabeanan-api/internal/domain"
	"github.com/bridgewms/kepabeanan-api/internal/domain/entity"
	"github.com/bridgewms/kepabeanan-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo at-rest stock lines over PostgreSQL. Quantity changes go through
// relative single-statement updates so concurrent mutations of the same line
// serialize on the row, never on a stale read.
type StockRepo struct {
	pool *pgxpool.Pool
}

// NewStockRepository builds the adapter.
func NewStockRepository(pool *pgxpool.Pool) *StockRepo {
	return &StockRepo{pool: pool}
}

// Get returns the line for (sku, warehouseId), or nil when none exists.
func (r *StockRepo) Get(sku, warehouseID string) (*entity.StockLine, error) {
	query := `
		SELECT id, sku, name, warehouse_id, qty, created_at, updated_at
		FROM stock_lines WHERE sku = $1 AND warehouse_id = $2`
	var l entity.StockLine
	err := r.pool.QueryRow(context.Background(), query, sku, warehouseID).Scan(
		&l.ID, &l.SKU, &l.Name, &l.WarehouseID, &l.Qty, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock line: %w", err)
	}
	return &l, nil
}

// Add adds line.Qty to the stored balance, inserting line as-is on first
// receive. The increment happens inside the upsert, so concurrent receives
// never overwrite each other. The stored name is kept on conflict.
func (r *StockRepo) Add(line *entity.StockLine) (*entity.StockLine, error) {
	query := `
		INSERT INTO stock_lines (id, sku, name, warehouse_id, qty, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (sku, warehouse_id)
		DO UPDATE SET qty = stock_lines.qty + EXCLUDED.qty, updated_at = EXCLUDED.updated_at
		RETURNING id, sku, name, warehouse_id, qty, created_at, updated_at`
	var out entity.StockLine
	err := r.pool.QueryRow(context.Background(), query,
		line.ID, line.SKU, line.Name, line.WarehouseID, line.Qty, line.CreatedAt, line.UpdatedAt,
	).Scan(&out.ID, &out.SKU, &out.Name, &out.WarehouseID, &out.Qty, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("add stock: %w", err)
	}
	return &out, nil
}

// Subtract removes qty from the line through a guarded relative update: the
// balance check sits in the WHERE clause of the same statement. A miss is
// classified afterwards as not-found or insufficient; in the insufficient
// case the returned line carries the current balance.
func (r *StockRepo) Subtract(sku, warehouseID string, qty decimal.Decimal) (*entity.StockLine, error) {
	query := `
		UPDATE stock_lines
		SET qty = qty - $3, updated_at = now()
		WHERE sku = $1 AND warehouse_id = $2 AND qty >= $3
		RETURNING id, sku, name, warehouse_id, qty, created_at, updated_at`
	var out entity.StockLine
	err := r.pool.QueryRow(context.Background(), query, sku, warehouseID, qty).Scan(
		&out.ID, &out.SKU, &out.Name, &out.WarehouseID, &out.Qty, &out.CreatedAt, &out.UpdatedAt,
	)
	if err == nil {
		return &out, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("subtract stock: %w", err)
	}

	line, err := r.Get(sku, warehouseID)
	if err != nil {
		return nil, err
	}
	if line == nil {
		return nil, domain.ErrNotFound
	}
	return line, domain.ErrInsufficientStock
}

// Upsert inserts or replaces the line by (sku, warehouse_id). Used for whole
// replacements, never for relative quantity changes.
func (r *StockRepo) Upsert(line *entity.StockLine) error {
	query := `
		INSERT INTO stock_lines (id, sku, name, warehouse_id, qty, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (sku, warehouse_id)
		DO UPDATE SET name = EXCLUDED.name, qty = EXCLUDED.qty, updated_at = EXCLUDED.updated_at`
	_, err := r.pool.Exec(context.Background(), query,
		line.ID, line.SKU, line.Name, line.WarehouseID, line.Qty, line.CreatedAt, line.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert stock line: %w", err)
	}
	return nil
}

// List returns all stock lines.
func (r *StockRepo) List() ([]entity.StockLine, error) {
	return r.list(`SELECT id, sku, name, warehouse_id, qty, created_at, updated_at
		FROM stock_lines ORDER BY created_at`)
}

// ListByWarehouse returns the stock lines held in one warehouse.
func (r *StockRepo) ListByWarehouse(warehouseID string) ([]entity.StockLine, error) {
	return r.list(`SELECT id, sku, name, warehouse_id, qty, created_at, updated_at
		FROM stock_lines WHERE warehouse_id = $1 ORDER BY created_at`, warehouseID)
}

func (r *StockRepo) list(query string, args ...any) ([]entity.StockLine, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock lines: %w", err)
	}
	defer rows.Close()

	list := []entity.StockLine{}
	for rows.Next() {
		var l entity.StockLine
		if err := rows.Scan(&l.ID, &l.SKU, &l.Name, &l.WarehouseID, &l.Qty, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock line: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}
