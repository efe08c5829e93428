package docstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bridgewms/kepabeanan-api/internal/domain/entity"
)

// idempotencyEntry marks one processed warehouse lifecycle event key.
type idempotencyEntry struct {
	Event string    `json:"event"`
	Time  time.Time `json:"time"`
}

// document is the whole persisted store: one JSON file with logically
// independent top-level collections. Field order matches the on-disk layout.
type document struct {
	Warehouses   []entity.Warehouse          `json:"warehouses"`
	Inventory    []entity.StockLine          `json:"inventory"`
	Items        []entity.Item               `json:"items"`
	Movements    []entity.Movement           `json:"movements"`
	Consignments []entity.Consignment        `json:"consignments"`
	Locations    []entity.Location           `json:"locations"`
	Idempotency  map[string]idempotencyEntry `json:"_idempotency"`
}

func newDocument() *document {
	return &document{
		Warehouses:   []entity.Warehouse{},
		Inventory:    []entity.StockLine{},
		Items:        []entity.Item{},
		Movements:    []entity.Movement{},
		Consignments: []entity.Consignment{},
		Locations:    []entity.Location{},
		Idempotency:  map[string]idempotencyEntry{},
	}
}

// Store holds the document in memory and rewrites the whole file on every
// mutation. One RWMutex serializes all writers (single-writer discipline),
// which is what keeps the stock invariant intact under concurrent requests.
type Store struct {
	path string

	mu  sync.RWMutex
	doc *document
}

// Open loads the document from path, creating an empty store (and the parent
// directory) when the file does not exist yet. An empty path keeps the store
// in memory only, which the tests use.
func Open(path string) (*Store, error) {
	s := &Store{path: path, doc: newDocument()}
	if path == "" {
		return s, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store: %w", err)
	}
	if err := json.Unmarshal(raw, s.doc); err != nil {
		return nil, fmt.Errorf("decode store: %w", err)
	}
	if s.doc.Idempotency == nil {
		s.doc.Idempotency = map[string]idempotencyEntry{}
	}
	return s, nil
}

// update runs fn under the write lock and persists the document when fn
// succeeds. The mutation is kept even if the save fails; the next successful
// save writes it out.
func (s *Store) update(fn func(doc *document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s.doc); err != nil {
		return err
	}
	return s.save()
}

// view runs fn under the read lock. fn must not retain references to the
// document's slices beyond the call.
func (s *Store) view(fn func(doc *document)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.doc)
}

func (s *Store) save() error {
	if s.path == "" {
		return nil
	}
	raw, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	return nil
}
