package docstore

import (
	"github.com/bridgewms/kepabeanan-api/internal/domain/entity"
	"github.com/bridgewms/kepabeanan-api/internal/domain/repository"
)

var _ repository.ConsignmentRepository = (*ConsignmentRepo)(nil)

// ConsignmentRepo consignments over the "consignments" collection.
type ConsignmentRepo struct {
	store *Store
}

// NewConsignmentRepository builds the adapter.
func NewConsignmentRepository(store *Store) *ConsignmentRepo {
	return &ConsignmentRepo{store: store}
}

// GetByID returns the consignment, or nil when the id is unknown.
func (r *ConsignmentRepo) GetByID(id string) (*entity.Consignment, error) {
	var found *entity.Consignment
	r.store.view(func(doc *document) {
		for i := range doc.Consignments {
			if doc.Consignments[i].ID == id {
				c := doc.Consignments[i]
				found = &c
				return
			}
		}
	})
	return found, nil
}

// Create appends a consignment.
func (r *ConsignmentRepo) Create(c *entity.Consignment) error {
	return r.store.update(func(doc *document) error {
		doc.Consignments = append(doc.Consignments, *c)
		return nil
	})
}

// Update replaces the consignment by id, keeping its position.
func (r *ConsignmentRepo) Update(c *entity.Consignment) error {
	return r.store.update(func(doc *document) error {
		for i := range doc.Consignments {
			if doc.Consignments[i].ID == c.ID {
				doc.Consignments[i] = *c
				return nil
			}
		}
		doc.Consignments = append(doc.Consignments, *c)
		return nil
	})
}

// Delete removes the consignment by id.
func (r *ConsignmentRepo) Delete(id string) error {
	return r.store.update(func(doc *document) error {
		kept := doc.Consignments[:0]
		for _, c := range doc.Consignments {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		doc.Consignments = kept
		return nil
	})
}

// List returns all consignments in insertion order.
func (r *ConsignmentRepo) List() ([]entity.Consignment, error) {
	var cs []entity.Consignment
	r.store.view(func(doc *document) {
		cs = make([]entity.Consignment, len(doc.Consignments))
		copy(cs, doc.Consignments)
	})
	return cs, nil
}
