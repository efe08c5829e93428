package docstore_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bridgewms/kepabeanan-api/internal/domain/entity"
	"github.com/bridgewms/kepabeanan-api/internal/infrastructure/docstore"
)

// TestOpen_CreatesEmptyStore: a path that does not exist yet yields an empty
// store and creates the parent directory lazily.
func TestOpen_CreatesEmptyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "store.json")

	store, err := docstore.Open(path)
	require.NoError(t, err)

	lines, err := docstore.NewStockRepository(store).List()
	require.NoError(t, err)
	assert.Empty(t, lines)
}

// TestStore_PersistsAcrossReopen: every mutation rewrites the file, and a
// fresh Open sees all collections including the idempotency map.
func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	store, err := docstore.Open(path)
	require.NoError(t, err)

	require.NoError(t, docstore.NewWarehouseRepository(store).Upsert(&entity.Warehouse{
		ID: "W1", Name: "Bonded Zone A",
	}))
	require.NoError(t, docstore.NewStockRepository(store).Upsert(&entity.StockLine{
		ID: "1", SKU: "WIDGET", Name: "Widget A", WarehouseID: "W1", Qty: decimal.NewFromInt(15),
	}))
	require.NoError(t, docstore.NewMovementRepository(store).Create(&entity.Movement{
		ID: "m1", ItemCode: "BBK-001", Qty: decimal.NewFromInt(10), MovementType: entity.MovementTypeIN,
	}))
	require.NoError(t, docstore.NewIdempotencyRepository(store).Mark("warehouse.created:W1", "warehouse.created"))

	reopened, err := docstore.Open(path)
	require.NoError(t, err)

	ws, err := docstore.NewWarehouseRepository(reopened).List()
	require.NoError(t, err)
	require.Len(t, ws, 1)
	assert.Equal(t, "Bonded Zone A", ws[0].Name)

	line, err := docstore.NewStockRepository(reopened).Get("WIDGET", "W1")
	require.NoError(t, err)
	require.NotNil(t, line)
	assert.Equal(t, "15", line.Qty.String())

	seen, err := docstore.NewIdempotencyRepository(reopened).Seen("warehouse.created:W1")
	require.NoError(t, err)
	assert.True(t, seen, "processed keys must survive a restart")
}

// TestStore_DocumentLayout pins the on-disk shape: top-level collections plus
// the "_idempotency" map.
func TestStore_DocumentLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	store, err := docstore.Open(path)
	require.NoError(t, err)
	require.NoError(t, docstore.NewItemRepository(store).Save(&entity.Item{
		ID: "1", ItemCode: "BBK-001", ItemName: "Steel Coil",
	}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))
	for _, key := range []string{"warehouses", "inventory", "items", "movements", "consignments", "_idempotency"} {
		assert.Contains(t, doc, key)
	}
}

// TestOpen_MemoryOnly: an empty path never touches the filesystem.
func TestOpen_MemoryOnly(t *testing.T) {
	store, err := docstore.Open("")
	require.NoError(t, err)

	repo := docstore.NewItemRepository(store)
	require.NoError(t, repo.Save(&entity.Item{ID: "1", ItemCode: "X", ItemName: "X"}))

	items, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

// TestOpen_ToleratesPartialDocument: a hand-edited file missing the
// idempotency map still opens.
func TestOpen_ToleratesPartialDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"warehouses": [{"id": "W1", "name": "Zone"}]}`), 0o644))

	store, err := docstore.Open(path)
	require.NoError(t, err)

	ws, err := docstore.NewWarehouseRepository(store).List()
	require.NoError(t, err)
	require.Len(t, ws, 1)

	require.NoError(t, docstore.NewIdempotencyRepository(store).Mark("k", "e"))
	seen, err := docstore.NewIdempotencyRepository(store).Seen("k")
	require.NoError(t, err)
	assert.True(t, seen)
}
