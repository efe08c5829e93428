package docstore

import (
	"github.com/bridgewms/kepabeanan-api/internal/domain/entity"
	"github.com/bridgewms/kepabeanan-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo warehouse registry over the "warehouses" collection.
type WarehouseRepo struct {
	store *Store
}

// NewWarehouseRepository builds the adapter.
func NewWarehouseRepository(store *Store) *WarehouseRepo {
	return &WarehouseRepo{store: store}
}

// GetByID returns the warehouse, or nil when the id is unknown.
func (r *WarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	var found *entity.Warehouse
	r.store.view(func(doc *document) {
		for i := range doc.Warehouses {
			if doc.Warehouses[i].ID == id {
				w := doc.Warehouses[i]
				found = &w
				return
			}
		}
	})
	return found, nil
}

// Upsert inserts or replaces the warehouse by id.
func (r *WarehouseRepo) Upsert(w *entity.Warehouse) error {
	return r.store.update(func(doc *document) error {
		for i := range doc.Warehouses {
			if doc.Warehouses[i].ID == w.ID {
				doc.Warehouses[i] = *w
				return nil
			}
		}
		doc.Warehouses = append(doc.Warehouses, *w)
		return nil
	})
}

// Delete removes the warehouse by id. Deleting an unknown id is a no-op.
func (r *WarehouseRepo) Delete(id string) error {
	return r.store.update(func(doc *document) error {
		kept := doc.Warehouses[:0]
		for _, w := range doc.Warehouses {
			if w.ID != id {
				kept = append(kept, w)
			}
		}
		doc.Warehouses = kept
		return nil
	})
}

// List returns all warehouses in insertion order.
func (r *WarehouseRepo) List() ([]entity.Warehouse, error) {
	var ws []entity.Warehouse
	r.store.view(func(doc *document) {
		ws = make([]entity.Warehouse, len(doc.Warehouses))
		copy(ws, doc.Warehouses)
	})
	return ws, nil
}
