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

var _ repository.ConsignmentRepository = (*ConsignmentRepo)(nil)

// ConsignmentRepo consignments over PostgreSQL. Item lines live in a JSONB
// column; they are only ever read and written whole.
type ConsignmentRepo struct {
	pool *pgxpool.Pool
}

// NewConsignmentRepository builds the adapter.
func NewConsignmentRepository(pool *pgxpool.Pool) *ConsignmentRepo {
	return &ConsignmentRepo{pool: pool}
}

// GetByID returns the consignment, or nil when the id is unknown.
func (r *ConsignmentRepo) GetByID(id string) (*entity.Consignment, error) {
	query := `
		SELECT id, warehouse_id, status, destination, awb_number, note, items, created_at, updated_at
		FROM consignments WHERE id = $1`
	var c entity.Consignment
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.WarehouseID, &c.Status, &c.Destination, &c.AWBNumber, &c.Note,
		&c.Items, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get consignment: %w", err)
	}
	return &c, nil
}

// Create persists a new consignment.
func (r *ConsignmentRepo) Create(c *entity.Consignment) error {
	query := `
		INSERT INTO consignments (id, warehouse_id, status, destination, awb_number, note, items, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		c.ID, c.WarehouseID, c.Status, c.Destination, c.AWBNumber, c.Note,
		c.Items, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert consignment: %w", err)
	}
	return nil
}

// Update replaces the consignment row by id.
func (r *ConsignmentRepo) Update(c *entity.Consignment) error {
	query := `
		INSERT INTO consignments (id, warehouse_id, status, destination, awb_number, note, items, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id)
		DO UPDATE SET warehouse_id = EXCLUDED.warehouse_id, status = EXCLUDED.status,
		              destination = EXCLUDED.destination, awb_number = EXCLUDED.awb_number,
		              note = EXCLUDED.note, items = EXCLUDED.items,
		              updated_at = EXCLUDED.updated_at`
	_, err := r.pool.Exec(context.Background(), query,
		c.ID, c.WarehouseID, c.Status, c.Destination, c.AWBNumber, c.Note,
		c.Items, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update consignment: %w", err)
	}
	return nil
}

// Delete removes the consignment by id.
func (r *ConsignmentRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM consignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete consignment: %w", err)
	}
	return nil
}

// List returns all consignments in insertion order.
func (r *ConsignmentRepo) List() ([]entity.Consignment, error) {
	query := `
		SELECT id, warehouse_id, status, destination, awb_number, note, items, created_at, updated_at
		FROM consignments ORDER BY seq`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list consignments: %w", err)
	}
	defer rows.Close()

	list := []entity.Consignment{}
	for rows.Next() {
		var c entity.Consignment
		if err := rows.Scan(
			&c.ID, &c.WarehouseID, &c.Status, &c.Destination, &c.AWBNumber, &c.Note,
			&c.Items, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan consignment: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
