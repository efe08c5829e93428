package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bridgewms/kepabeanan-api/internal/domain"
	"github.com/bridgewms/kepabeanan-api/internal/domain/entity"
	"github.com/bridgewms/kepabeanan-api/internal/domain/repository"
)

// UseCase appends to and queries the append-only movement ledger.
//
// This ledger and the at-rest inventory tracker are deliberately separate
// books: a receive/dispatch on the quantity tracker does not append here and
// a ledger append does not touch stock lines. The customs reports read this
// ledger only.
type UseCase struct {
	movRepo repository.MovementRepository
}

// NewUseCase builds the ledger use case.
func NewUseCase(movRepo repository.MovementRepository) *UseCase {
	return &UseCase{movRepo: movRepo}
}

// Append validates and stores a single movement. ItemCode and a non-zero Qty
// are required; every other field falls back to the ledger defaults.
func (uc *UseCase) Append(m *entity.Movement) (*entity.Movement, error) {
	if m.ItemCode == "" || m.Qty.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	applyDefaults(m, time.Now())
	if err := uc.movRepo.Create(m); err != nil {
		return nil, fmt.Errorf("append movement: %w", err)
	}
	return m, nil
}

// AppendBatch stores a batch of movements sharing document-level defaults.
// Lines missing item_code or qty are skipped, not fatal: the returned slice
// holds only the movements actually created.
func (uc *UseCase) AppendBatch(ms []*entity.Movement) ([]entity.Movement, error) {
	now := time.Now()
	valid := make([]*entity.Movement, 0, len(ms))
	for _, m := range ms {
		if m.ItemCode == "" || m.Qty.IsZero() {
			continue
		}
		applyDefaults(m, now)
		valid = append(valid, m)
	}
	if len(valid) > 0 {
		if err := uc.movRepo.CreateBatch(valid); err != nil {
			return nil, fmt.Errorf("append movement batch: %w", err)
		}
	}
	created := make([]entity.Movement, len(valid))
	for i, m := range valid {
		created[i] = *m
	}
	return created, nil
}

// Query returns the filtered ledger in insertion order.
func (uc *UseCase) Query(filter repository.MovementFilter) ([]entity.Movement, error) {
	rows, err := uc.movRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("query movements: %w", err)
	}
	return rows, nil
}

// applyDefaults fills identity, timestamps and the document defaults the
// warehouse UI relies on.
func applyDefaults(m *entity.Movement, now time.Time) {
	today := now.Format("2006-01-02")
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.DocType == "" {
		m.DocType = entity.MovementTypeIN
	}
	if m.DocNumber == "" {
		m.DocNumber = fmt.Sprintf("DOC-%d", now.UnixMilli())
	}
	if m.DocDate == "" {
		m.DocDate = today
	}
	if m.ReceiptDate == "" {
		m.ReceiptDate = today
	}
	if m.ItemName == "" {
		m.ItemName = m.ItemCode
	}
	if m.Unit == "" {
		m.Unit = "unit"
	}
	if m.ValueCurrency == "" {
		m.ValueCurrency = "IDR"
	}
	if m.MovementType == "" {
		m.MovementType = entity.MovementTypeIN
	}
	if m.Source == "" {
		m.Source = "WAREHOUSE"
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
}
