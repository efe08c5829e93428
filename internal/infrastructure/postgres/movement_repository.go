package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bridgewms/kepabeanan-api/internal/domain/entity"
	"github.com/bridgewms/kepabeanan-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo movement ledger over PostgreSQL.
type MovementRepo struct {
	pool *pgxpool.Pool
}

// NewMovementRepository builds the adapter.
func NewMovementRepository(pool *pgxpool.Pool) *MovementRepo {
	return &MovementRepo{pool: pool}
}

const movementColumns = `
	id, doc_type, doc_number, doc_date, receipt_number, receipt_date, sender_name,
	item_code, item_name, qty, unit, value_amount, value_currency,
	movement_type, source, location, area, lot, rack, wip_stage, note,
	country_of_origin, hs_code, approval_status, approval_by, approval_date,
	fob_value, cif_value, condition, reference_id, created_at, updated_at`

const insertMovement = `
	INSERT INTO movements (` + movementColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
	        $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32)`

func movementArgs(m *entity.Movement) []any {
	return []any{
		m.ID, m.DocType, m.DocNumber, m.DocDate, m.ReceiptNumber, m.ReceiptDate, m.SenderName,
		m.ItemCode, m.ItemName, m.Qty, m.Unit, m.ValueAmount, m.ValueCurrency,
		m.MovementType, m.Source, m.Location, m.Area, m.Lot, m.Rack, m.WIPStage, m.Note,
		m.CountryOfOrigin, m.HSCode, m.ApprovalStatus, m.ApprovalBy, m.ApprovalDate,
		m.FOBValue, m.CIFValue, m.Condition, m.ReferenceID, m.CreatedAt, m.UpdatedAt,
	}
}

// Create appends one movement to the ledger.
func (r *MovementRepo) Create(m *entity.Movement) error {
	_, err := r.pool.Exec(context.Background(), insertMovement, movementArgs(m)...)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// CreateBatch appends several movements in one round trip.
func (r *MovementRepo) CreateBatch(ms []*entity.Movement) error {
	batch := &pgx.Batch{}
	for _, m := range ms {
		batch.Queue(insertMovement, movementArgs(m)...)
	}
	if err := r.pool.SendBatch(context.Background(), batch).Close(); err != nil {
		return fmt.Errorf("insert movement batch: %w", err)
	}
	return nil
}

// List returns matching movements in insertion order (by seq). Empty filter
// fields are skipped inside the query.
func (r *MovementRepo) List(filter repository.MovementFilter) ([]entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements
		WHERE ($1 = '' OR doc_date >= $1)
		  AND ($2 = '' OR doc_date <= $2)
		  AND ($3 = '' OR item_code ILIKE '%' || $3 || '%' OR item_name ILIKE '%' || $3 || '%')
		  AND ($4 = '' OR movement_type = $4)
		ORDER BY seq`
	rows, err := r.pool.Query(context.Background(), query, filter.Start, filter.End, filter.Item, filter.Type)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	list := []entity.Movement{}
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(
			&m.ID, &m.DocType, &m.DocNumber, &m.DocDate, &m.ReceiptNumber, &m.ReceiptDate, &m.SenderName,
			&m.ItemCode, &m.ItemName, &m.Qty, &m.Unit, &m.ValueAmount, &m.ValueCurrency,
			&m.MovementType, &m.Source, &m.Location, &m.Area, &m.Lot, &m.Rack, &m.WIPStage, &m.Note,
			&m.CountryOfOrigin, &m.HSCode, &m.ApprovalStatus, &m.ApprovalBy, &m.ApprovalDate,
			&m.FOBValue, &m.CIFValue, &m.Condition, &m.ReferenceID, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
