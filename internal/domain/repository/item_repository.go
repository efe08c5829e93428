package repository

import "github.com/bridgewms/kepabeanan-api/internal/domain/entity"

// ItemRepository is the item master port. GetByCode returns nil when the
// code is not registered; Save inserts or replaces by item_code; List
// returns items in insertion order.
type ItemRepository interface {
	GetByCode(itemCode string) (*entity.Item, error)
	Save(item *entity.Item) error
	List() ([]entity.Item, error)
}
