package docstore

import (
	"github.com/bridgewms/kepabeanan-api/internal/domain/entity"
	"github.com/bridgewms/kepabeanan-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo item master over the "items" collection.
type ItemRepo struct {
	store *Store
}

// NewItemRepository builds the adapter.
func NewItemRepository(store *Store) *ItemRepo {
	return &ItemRepo{store: store}
}

// GetByCode returns the item for a code, or nil when unregistered.
func (r *ItemRepo) GetByCode(itemCode string) (*entity.Item, error) {
	var found *entity.Item
	r.store.view(func(doc *document) {
		for i := range doc.Items {
			if doc.Items[i].ItemCode == itemCode {
				item := doc.Items[i]
				found = &item
				return
			}
		}
	})
	return found, nil
}

// Save inserts or replaces the item by item_code, keeping its position.
func (r *ItemRepo) Save(item *entity.Item) error {
	return r.store.update(func(doc *document) error {
		for i := range doc.Items {
			if doc.Items[i].ItemCode == item.ItemCode {
				doc.Items[i] = *item
				return nil
			}
		}
		doc.Items = append(doc.Items, *item)
		return nil
	})
}

// List returns all items in insertion order.
func (r *ItemRepo) List() ([]entity.Item, error) {
	var items []entity.Item
	r.store.view(func(doc *document) {
		items = make([]entity.Item, len(doc.Items))
		copy(items, doc.Items)
	})
	return items, nil
}
