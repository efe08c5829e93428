package repository

import "github.com/bridgewms/kepabeanan-api/internal/domain/entity"

// WarehouseRepository is the warehouse registry port. GetByID returns nil
// when the id is unknown; Upsert inserts or replaces by id.
type WarehouseRepository interface {
	GetByID(id string) (*entity.Warehouse, error)
	Upsert(w *entity.Warehouse) error
	Delete(id string) error
	List() ([]entity.Warehouse, error)
}
