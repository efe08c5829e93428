package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bridgewms/kepabeanan-api/internal/application/ledger"
	"github.com/bridgewms/kepabeanan-api/internal/domain"
	"github.com/bridgewms/kepabeanan-api/internal/domain/entity"
	"github.com/bridgewms/kepabeanan-api/internal/domain/repository"
	"github.com/bridgewms/kepabeanan-api/internal/infrastructure/docstore"
)

func newLedgerUseCase(t *testing.T) *ledger.UseCase {
	t.Helper()
	store, err := docstore.Open("")
	require.NoError(t, err)
	return ledger.NewUseCase(docstore.NewMovementRepository(store))
}

// TestAppend_Defaults verifies the movement defaults applied on append:
// doc_type IN, generated DOC number, today's dates, item_name falling back to
// item_code, unit "unit", IDR and WAREHOUSE source.
func TestAppend_Defaults(t *testing.T) {
	uc := newLedgerUseCase(t)

	created, err := uc.Append(&entity.Movement{
		ItemCode: "BBK-001",
		Qty:      decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, entity.MovementTypeIN, created.DocType)
	assert.Regexp(t, `^DOC-\d+$`, created.DocNumber)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, created.DocDate)
	assert.Equal(t, created.DocDate, created.ReceiptDate)
	assert.Equal(t, "BBK-001", created.ItemName, "item_name must fall back to item_code")
	assert.Equal(t, "unit", created.Unit)
	assert.Equal(t, "IDR", created.ValueCurrency)
	assert.Equal(t, entity.MovementTypeIN, created.MovementType)
	assert.Equal(t, "WAREHOUSE", created.Source)
	assert.False(t, created.CreatedAt.IsZero())
}

// TestAppend_KeepsExplicitFields: defaults never overwrite what the caller set.
func TestAppend_KeepsExplicitFields(t *testing.T) {
	uc := newLedgerUseCase(t)

	created, err := uc.Append(&entity.Movement{
		ItemCode:     "PJ-100",
		ItemName:     "Finished Pump",
		Qty:          decimal.NewFromInt(3),
		Unit:         "box",
		MovementType: entity.MovementTypeOUT,
		DocDate:      "2025-01-15",
	})
	require.NoError(t, err)

	assert.Equal(t, "Finished Pump", created.ItemName)
	assert.Equal(t, "box", created.Unit)
	assert.Equal(t, entity.MovementTypeOUT, created.MovementType)
	assert.Equal(t, "2025-01-15", created.DocDate)
}

func TestAppend_RequiresItemCodeAndQty(t *testing.T) {
	uc := newLedgerUseCase(t)

	_, err := uc.Append(&entity.Movement{Qty: decimal.NewFromInt(5)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "missing item_code must be rejected")

	_, err = uc.Append(&entity.Movement{ItemCode: "BBK-001"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "zero qty must be rejected")
}

// TestAppendBatch_SkipsInvalidLines: a batch with one good and one bad line
// creates only the good one and reports count 1, never failing the whole
// document.
func TestAppendBatch_SkipsInvalidLines(t *testing.T) {
	uc := newLedgerUseCase(t)

	created, err := uc.AppendBatch([]*entity.Movement{
		{ItemCode: "BBK-001", Qty: decimal.NewFromInt(10)},
		{ItemCode: "", Qty: decimal.NewFromInt(4)},
		{ItemCode: "BBK-002"},
	})
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, "BBK-001", created[0].ItemCode)

	rows, err := uc.Query(repository.MovementFilter{})
	require.NoError(t, err)
	assert.Len(t, rows, 1, "only the valid line may reach the ledger")
}

// TestQuery_Filters exercises the ANDed filter set: inclusive doc_date range,
// case-insensitive item substring (code or name) and exact movement type.
func TestQuery_Filters(t *testing.T) {
	uc := newLedgerUseCase(t)

	seed := []*entity.Movement{
		{ItemCode: "BBK-001", ItemName: "Steel Coil", Qty: decimal.NewFromInt(10), DocDate: "2025-01-10", MovementType: entity.MovementTypeIN},
		{ItemCode: "BBK-001", ItemName: "Steel Coil", Qty: decimal.NewFromInt(4), DocDate: "2025-01-20", MovementType: entity.MovementTypeOUT},
		{ItemCode: "PJ-100", ItemName: "Finished Pump", Qty: decimal.NewFromInt(2), DocDate: "2025-02-01", MovementType: entity.MovementTypeIN},
	}
	for _, m := range seed {
		_, err := uc.Append(m)
		require.NoError(t, err)
	}

	rows, err := uc.Query(repository.MovementFilter{Start: "2025-01-10", End: "2025-01-20"})
	require.NoError(t, err)
	assert.Len(t, rows, 2, "range bounds are inclusive")

	rows, err = uc.Query(repository.MovementFilter{Item: "steel"})
	require.NoError(t, err)
	assert.Len(t, rows, 2, "item filter matches the name, case-insensitively")

	rows, err = uc.Query(repository.MovementFilter{Item: "pj-1"})
	require.NoError(t, err)
	assert.Len(t, rows, 1, "item filter matches the code substring")

	rows, err = uc.Query(repository.MovementFilter{Type: entity.MovementTypeOUT})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "BBK-001", rows[0].ItemCode)
}

// TestQuery_InsertionOrder: the ledger keeps append order regardless of dates.
func TestQuery_InsertionOrder(t *testing.T) {
	uc := newLedgerUseCase(t)

	for _, code := range []string{"C-3", "A-1", "B-2"} {
		_, err := uc.Append(&entity.Movement{ItemCode: code, Qty: decimal.NewFromInt(1)})
		require.NoError(t, err)
	}

	rows, err := uc.Query(repository.MovementFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "C-3", rows[0].ItemCode)
	assert.Equal(t, "A-1", rows[1].ItemCode)
	assert.Equal(t, "B-2", rows[2].ItemCode)
}
