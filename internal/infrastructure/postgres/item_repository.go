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

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo item master over PostgreSQL.
type ItemRepo struct {
	pool *pgxpool.Pool
}

// NewItemRepository builds the adapter.
func NewItemRepository(pool *pgxpool.Pool) *ItemRepo {
	return &ItemRepo{pool: pool}
}

// GetByCode returns the item for a code, or nil when unregistered.
func (r *ItemRepo) GetByCode(itemCode string) (*entity.Item, error) {
	query := `
		SELECT id, item_code, item_name, unit, item_group, hs_code, price, currency, created_at, updated_at
		FROM items WHERE item_code = $1`
	var it entity.Item
	err := r.pool.QueryRow(context.Background(), query, itemCode).Scan(
		&it.ID, &it.ItemCode, &it.ItemName, &it.Unit, &it.ItemGroup,
		&it.HSCode, &it.Price, &it.Currency, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// Save inserts or updates the item by item_code.
func (r *ItemRepo) Save(item *entity.Item) error {
	query := `
		INSERT INTO items (id, item_code, item_name, unit, item_group, hs_code, price, currency, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (item_code)
		DO UPDATE SET item_name = EXCLUDED.item_name, unit = EXCLUDED.unit,
		              item_group = EXCLUDED.item_group, hs_code = EXCLUDED.hs_code,
		              price = EXCLUDED.price, currency = EXCLUDED.currency,
		              updated_at = EXCLUDED.updated_at`
	_, err := r.pool.Exec(context.Background(), query,
		item.ID, item.ItemCode, item.ItemName, item.Unit, item.ItemGroup,
		item.HSCode, item.Price, item.Currency, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save item: %w", err)
	}
	return nil
}

// List returns all items in insertion order.
func (r *ItemRepo) List() ([]entity.Item, error) {
	query := `
		SELECT id, item_code, item_name, unit, item_group, hs_code, price, currency, created_at, updated_at
		FROM items ORDER BY seq`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	list := []entity.Item{}
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(
			&it.ID, &it.ItemCode, &it.ItemName, &it.Unit, &it.ItemGroup,
			&it.HSCode, &it.Price, &it.Currency, &it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}
