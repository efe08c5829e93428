package docstore

import (
	"time"

	"github.com/bridgewms/kepabeanan-api/internal/domain/repository"
)

var _ repository.IdempotencyRepository = (*IdempotencyRepo)(nil)

// IdempotencyRepo processed-event keys over the "_idempotency" map.
type IdempotencyRepo struct {
	store *Store
}

// NewIdempotencyRepository builds the adapter.
func NewIdempotencyRepository(store *Store) *IdempotencyRepo {
	return &IdempotencyRepo{store: store}
}

// Seen reports whether the key was already processed.
func (r *IdempotencyRepo) Seen(key string) (bool, error) {
	var seen bool
	r.store.view(func(doc *document) {
		_, seen = doc.Idempotency[key]
	})
	return seen, nil
}

// Mark records the key with its event and processing time.
func (r *IdempotencyRepo) Mark(key, event string) error {
	return r.store.update(func(doc *document) error {
		doc.Idempotency[key] = idempotencyEntry{Event: event, Time: time.Now()}
		return nil
	})
}
