package repository

import "github.com/bridgewms/kepabeanan-api/internal/domain/entity"

// MovementFilter narrows movement queries. All set filters are ANDed.
// Start/End are inclusive ISO YYYY-MM-DD bounds compared lexicographically
// against doc_date; Item is a case-insensitive substring matched against
// item_code or item_name; Type is an exact movement-type match.
type MovementFilter struct {
	Start string
	End   string
	Item  string
	Type  string
}

// MovementRepository is the append-only movement ledger port.
// List always returns movements in insertion order.
type MovementRepository interface {
	Create(m *entity.Movement) error
	CreateBatch(ms []*entity.Movement) error
	List(filter MovementFilter) ([]entity.Movement, error)
}
