package docstore

import (
	"strings"

	"github.com/bridgewms/kepabeanan-api/internal/domain/entity"
	"github.com/bridgewms/kepabeanan-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo movement ledger over the "movements" collection.
type MovementRepo struct {
	store *Store
}

// NewMovementRepository builds the adapter.
func NewMovementRepository(store *Store) *MovementRepo {
	return &MovementRepo{store: store}
}

// Create appends one movement to the ledger.
func (r *MovementRepo) Create(m *entity.Movement) error {
	return r.store.update(func(doc *document) error {
		doc.Movements = append(doc.Movements, *m)
		return nil
	})
}

// CreateBatch appends several movements in one write.
func (r *MovementRepo) CreateBatch(ms []*entity.Movement) error {
	return r.store.update(func(doc *document) error {
		for _, m := range ms {
			doc.Movements = append(doc.Movements, *m)
		}
		return nil
	})
}

// List returns matching movements in insertion order.
func (r *MovementRepo) List(filter repository.MovementFilter) ([]entity.Movement, error) {
	var rows []entity.Movement
	r.store.view(func(doc *document) {
		rows = make([]entity.Movement, 0, len(doc.Movements))
		for _, m := range doc.Movements {
			if matches(m, filter) {
				rows = append(rows, m)
			}
		}
	})
	return rows, nil
}

// matches applies the ANDed filter set. Dates compare lexicographically
// against doc_date (inclusive bounds, ISO YYYY-MM-DD).
func matches(m entity.Movement, f repository.MovementFilter) bool {
	if f.Start != "" && m.DocDate < f.Start {
		return false
	}
	if f.End != "" && m.DocDate > f.End {
		return false
	}
	if f.Item != "" {
		needle := strings.ToLower(f.Item)
		if !strings.Contains(strings.ToLower(m.ItemCode), needle) &&
			!strings.Contains(strings.ToLower(m.ItemName), needle) {
			return false
		}
	}
	if f.Type != "" && m.MovementType != f.Type {
		return false
	}
	return true
}
