package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bridgewms/kepabeanan-api/internal/application/dto"
	"github.com/bridgewms/kepabeanan-api/internal/application/usecase"
	"github.com/bridgewms/kepabeanan-api/internal/domain"
	"github.com/bridgewms/kepabeanan-api/internal/domain/entity"
	"github.com/bridgewms/kepabeanan-api/internal/domain/repository"
	"github.com/bridgewms/kepabeanan-api/internal/infrastructure/docstore"
)

type warehouseFixture struct {
	uc        *usecase.WarehouseUseCase
	stockRepo repository.StockRepository
}

func newWarehouseFixture(t *testing.T) *warehouseFixture {
	t.Helper()
	store, err := docstore.Open("")
	require.NoError(t, err)
	stockRepo := docstore.NewStockRepository(store)
	return &warehouseFixture{
		uc: usecase.NewWarehouseUseCase(
			docstore.NewWarehouseRepository(store),
			stockRepo,
			docstore.NewIdempotencyRepository(store),
		),
		stockRepo: stockRepo,
	}
}

func createdEvent(id, name string) dto.WarehouseSyncRequest {
	return dto.WarehouseSyncRequest{
		Event: dto.EventWarehouseCreated,
		Data:  dto.WarehouseSyncData{WarehouseID: id, Name: name},
	}
}

// TestSync_Created stores the warehouse and makes it visible through both
// List and Locations.
func TestSync_Created(t *testing.T) {
	f := newWarehouseFixture(t)

	out, err := f.uc.Sync(dto.WarehouseSyncRequest{
		Event: dto.EventWarehouseCreated,
		Data: dto.WarehouseSyncData{
			WarehouseID: "W1",
			Name:        "Bonded Zone A",
			Country:     "Indonesia",
			City:        "Batam",
		},
	}, "")
	require.NoError(t, err)
	assert.True(t, out.Ok)

	ws, err := f.uc.List()
	require.NoError(t, err)
	require.Len(t, ws, 1)
	assert.Equal(t, "Bonded Zone A", ws[0].Name)
	assert.Equal(t, "Batam", ws[0].City)

	locs, err := f.uc.Locations()
	require.NoError(t, err)
	require.Len(t, locs, 1)
	assert.Equal(t, "W1", locs[0].ID)
}

// TestSync_AlternateFieldNames: the sender may say id/warehouseName instead
// of warehouseId/name.
func TestSync_AlternateFieldNames(t *testing.T) {
	f := newWarehouseFixture(t)

	_, err := f.uc.Sync(dto.WarehouseSyncRequest{
		Event: dto.EventWarehouseCreated,
		Data:  dto.WarehouseSyncData{ID: "W9", WarehouseName: "Annex"},
	}, "")
	require.NoError(t, err)

	ws, err := f.uc.List()
	require.NoError(t, err)
	require.Len(t, ws, 1)
	assert.Equal(t, "W9", ws[0].ID)
	assert.Equal(t, "Annex", ws[0].Name)
}

func TestSync_CreatedNameFallback(t *testing.T) {
	f := newWarehouseFixture(t)

	_, err := f.uc.Sync(dto.WarehouseSyncRequest{
		Event: dto.EventWarehouseCreated,
		Data:  dto.WarehouseSyncData{WarehouseID: "W2"},
	}, "")
	require.NoError(t, err)

	ws, err := f.uc.List()
	require.NoError(t, err)
	require.Len(t, ws, 1)
	assert.Equal(t, "Unnamed Warehouse", ws[0].Name)
}

// TestSync_IdempotentReplay: the same derived key applied twice short-circuits
// to "already processed" without reapplying the mutation.
func TestSync_IdempotentReplay(t *testing.T) {
	f := newWarehouseFixture(t)

	_, err := f.uc.Sync(createdEvent("W1", "Bonded Zone A"), "")
	require.NoError(t, err)

	out, err := f.uc.Sync(createdEvent("W1", "A Different Name"), "")
	require.NoError(t, err)
	assert.True(t, out.Ok)
	assert.Equal(t, "already processed", out.Message)

	ws, err := f.uc.List()
	require.NoError(t, err)
	require.Len(t, ws, 1)
	assert.Equal(t, "Bonded Zone A", ws[0].Name, "the replay must not reapply the event")
}

// TestSync_ExplicitKeyWinsOverDerived: distinct explicit keys let the same
// event apply twice, and a reused explicit key blocks a different event.
func TestSync_ExplicitKeyWinsOverDerived(t *testing.T) {
	f := newWarehouseFixture(t)

	_, err := f.uc.Sync(createdEvent("W1", "First"), "key-1")
	require.NoError(t, err)

	out, err := f.uc.Sync(createdEvent("W1", "Second"), "key-2")
	require.NoError(t, err)
	assert.Empty(t, out.Message, "a fresh key must apply the event")

	out, err = f.uc.Sync(createdEvent("W2", "Other"), "key-1")
	require.NoError(t, err)
	assert.Equal(t, "already processed", out.Message)
}

// TestSync_UpdatedMerges: update merges non-empty fields and creates the
// warehouse when the created event never arrived.
func TestSync_UpdatedMerges(t *testing.T) {
	f := newWarehouseFixture(t)

	_, err := f.uc.Sync(dto.WarehouseSyncRequest{
		Event: dto.EventWarehouseCreated,
		Data:  dto.WarehouseSyncData{WarehouseID: "W1", Name: "Zone A", City: "Batam"},
	}, "k1")
	require.NoError(t, err)

	_, err = f.uc.Sync(dto.WarehouseSyncRequest{
		Event: dto.EventWarehouseUpdated,
		Data:  dto.WarehouseSyncData{WarehouseID: "W1", Name: "Zone A Renamed"},
	}, "k2")
	require.NoError(t, err)

	ws, err := f.uc.List()
	require.NoError(t, err)
	require.Len(t, ws, 1)
	assert.Equal(t, "Zone A Renamed", ws[0].Name)
	assert.Equal(t, "Batam", ws[0].City, "fields absent from the update survive")

	// Out-of-order: updated before created still materializes the record.
	_, err = f.uc.Sync(dto.WarehouseSyncRequest{
		Event: dto.EventWarehouseUpdated,
		Data:  dto.WarehouseSyncData{WarehouseID: "W7", Name: "Late Zone"},
	}, "k3")
	require.NoError(t, err)

	ws, err = f.uc.List()
	require.NoError(t, err)
	assert.Len(t, ws, 2)
}

// TestSync_DeleteGuardedByStock: a warehouse holding quantity cannot be
// deleted; drained to zero it can.
func TestSync_DeleteGuardedByStock(t *testing.T) {
	f := newWarehouseFixture(t)

	_, err := f.uc.Sync(createdEvent("W1", "Bonded Zone A"), "k1")
	require.NoError(t, err)
	require.NoError(t, f.stockRepo.Upsert(&entity.StockLine{
		ID: "1", SKU: "WIDGET", WarehouseID: "W1", Qty: decimal.NewFromInt(15),
	}))

	deleted := dto.WarehouseSyncRequest{
		Event: dto.EventWarehouseDeleted,
		Data:  dto.WarehouseSyncData{WarehouseID: "W1"},
	}
	_, err = f.uc.Sync(deleted, "k2")
	assert.ErrorIs(t, err, domain.ErrWarehouseHasStock)

	require.NoError(t, f.stockRepo.Upsert(&entity.StockLine{
		ID: "1", SKU: "WIDGET", WarehouseID: "W1", Qty: decimal.Zero,
	}))
	_, err = f.uc.Sync(deleted, "k3")
	require.NoError(t, err, "zero-quantity lines must not block deletion")

	ws, err := f.uc.List()
	require.NoError(t, err)
	assert.Empty(t, ws)
}

// TestSync_FailedDeleteNotMarked: a guarded delete must stay replayable, the
// key is only marked after the event applies.
func TestSync_FailedDeleteNotMarked(t *testing.T) {
	f := newWarehouseFixture(t)

	_, err := f.uc.Sync(createdEvent("W1", "Bonded Zone A"), "k1")
	require.NoError(t, err)
	require.NoError(t, f.stockRepo.Upsert(&entity.StockLine{
		ID: "1", SKU: "WIDGET", WarehouseID: "W1", Qty: decimal.NewFromInt(5),
	}))

	deleted := dto.WarehouseSyncRequest{
		Event: dto.EventWarehouseDeleted,
		Data:  dto.WarehouseSyncData{WarehouseID: "W1"},
	}
	_, err = f.uc.Sync(deleted, "k2")
	require.ErrorIs(t, err, domain.ErrWarehouseHasStock)

	require.NoError(t, f.stockRepo.Upsert(&entity.StockLine{
		ID: "1", SKU: "WIDGET", WarehouseID: "W1", Qty: decimal.Zero,
	}))
	out, err := f.uc.Sync(deleted, "k2")
	require.NoError(t, err)
	assert.Empty(t, out.Message, "the retried key must apply, not short-circuit")
}

func TestSync_UnknownEvent(t *testing.T) {
	f := newWarehouseFixture(t)

	_, err := f.uc.Sync(dto.WarehouseSyncRequest{
		Event: "warehouse.exploded",
		Data:  dto.WarehouseSyncData{WarehouseID: "W1"},
	}, "")
	assert.ErrorIs(t, err, domain.ErrUnknownEvent)
}
