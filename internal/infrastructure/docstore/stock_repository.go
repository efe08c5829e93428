package docstore

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bridgewms/kepabeanan-api/internal/domain"
	"github.com/bridgewms/kepabeanan-api/internal/domain/entity"
	"github.com/bridgewms/kepabeanan-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo at-rest stock lines over the "inventory" collection.
type StockRepo struct {
	store *Store
}

// NewStockRepository builds the adapter.
func NewStockRepository(store *Store) *StockRepo {
	return &StockRepo{store: store}
}

// Get returns the line for (sku, warehouseId), or nil when none exists.
func (r *StockRepo) Get(sku, warehouseID string) (*entity.StockLine, error) {
	var found *entity.StockLine
	r.store.view(func(doc *document) {
		for i := range doc.Inventory {
			if doc.Inventory[i].SKU == sku && doc.Inventory[i].WarehouseID == warehouseID {
				line := doc.Inventory[i]
				found = &line
				return
			}
		}
	})
	return found, nil
}

// Add adds line.Qty to the stored balance, inserting line as-is on first
// receive. The find and the increment run under one write lock.
func (r *StockRepo) Add(line *entity.StockLine) (*entity.StockLine, error) {
	var out entity.StockLine
	err := r.store.update(func(doc *document) error {
		for i := range doc.Inventory {
			l := &doc.Inventory[i]
			if l.SKU == line.SKU && l.WarehouseID == line.WarehouseID {
				l.Qty = l.Qty.Add(line.Qty)
				l.UpdatedAt = line.UpdatedAt
				out = *l
				return nil
			}
		}
		doc.Inventory = append(doc.Inventory, *line)
		out = *line
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Subtract removes qty from the line, with the balance check under the same
// write lock as the decrement. On ErrInsufficientStock the returned line
// carries the unmodified balance.
func (r *StockRepo) Subtract(sku, warehouseID string, qty decimal.Decimal) (*entity.StockLine, error) {
	var out *entity.StockLine
	err := r.store.update(func(doc *document) error {
		for i := range doc.Inventory {
			l := &doc.Inventory[i]
			if l.SKU == sku && l.WarehouseID == warehouseID {
				if l.Qty.LessThan(qty) {
					current := *l
					out = &current
					return domain.ErrInsufficientStock
				}
				l.Qty = l.Qty.Sub(qty)
				l.UpdatedAt = time.Now()
				updated := *l
				out = &updated
				return nil
			}
		}
		return domain.ErrNotFound
	})
	if err != nil {
		return out, err
	}
	return out, nil
}

// Upsert inserts or replaces the line by (sku, warehouseId). Used for whole
// replacements (seeding, corrections), never for relative quantity changes.
func (r *StockRepo) Upsert(line *entity.StockLine) error {
	return r.store.update(func(doc *document) error {
		for i := range doc.Inventory {
			if doc.Inventory[i].SKU == line.SKU && doc.Inventory[i].WarehouseID == line.WarehouseID {
				doc.Inventory[i] = *line
				return nil
			}
		}
		doc.Inventory = append(doc.Inventory, *line)
		return nil
	})
}

// List returns all stock lines.
func (r *StockRepo) List() ([]entity.StockLine, error) {
	var lines []entity.StockLine
	r.store.view(func(doc *document) {
		lines = make([]entity.StockLine, len(doc.Inventory))
		copy(lines, doc.Inventory)
	})
	return lines, nil
}

// ListByWarehouse returns the stock lines held in one warehouse.
func (r *StockRepo) ListByWarehouse(warehouseID string) ([]entity.StockLine, error) {
	var lines []entity.StockLine
	r.store.view(func(doc *document) {
		lines = []entity.StockLine{}
		for _, l := range doc.Inventory {
			if l.WarehouseID == warehouseID {
				lines = append(lines, l)
			}
		}
	})
	return lines, nil
}
