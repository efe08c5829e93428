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
	"github.com/bridgewms/kepabeanan-api/internal/infrastructure/docstore"
)

func newItemUseCase(t *testing.T) *usecase.ItemUseCase {
	t.Helper()
	store, err := docstore.Open("")
	require.NoError(t, err)
	return usecase.NewItemUseCase(docstore.NewItemRepository(store))
}

// TestItemUpsert_CreateDefaults: a new record gets unit "unit" and group
// "bahan" when the caller leaves them empty.
func TestItemUpsert_CreateDefaults(t *testing.T) {
	uc := newItemUseCase(t)

	item, err := uc.Upsert(dto.UpsertItemRequest{ItemCode: "BBK-001", ItemName: "Steel Coil"})
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "unit", item.Unit)
	assert.Equal(t, entity.ItemGroupBahan, item.ItemGroup)
	assert.False(t, item.CreatedAt.IsZero())
}

func TestItemUpsert_CreateRequiresCodeAndName(t *testing.T) {
	uc := newItemUseCase(t)

	_, err := uc.Upsert(dto.UpsertItemRequest{ItemName: "Nameless"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Upsert(dto.UpsertItemRequest{ItemCode: "BBK-001"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"item_name is required on creation only")
}

// TestItemUpsert_NonDestructiveMerge: an empty incoming field never
// overwrites a stored non-empty value; a second upsert with only the code
// leaves everything intact.
func TestItemUpsert_NonDestructiveMerge(t *testing.T) {
	uc := newItemUseCase(t)

	_, err := uc.Upsert(dto.UpsertItemRequest{
		ItemCode:  "BBK-001",
		ItemName:  "Steel Coil",
		Unit:      "kg",
		ItemGroup: entity.ItemGroupBahan,
		HSCode:    "7208.10",
		Price:     dto.Quantity{Decimal: decimal.NewFromInt(150)},
		Currency:  "USD",
	})
	require.NoError(t, err)

	merged, err := uc.Upsert(dto.UpsertItemRequest{ItemCode: "BBK-001"})
	require.NoError(t, err)
	assert.Equal(t, "Steel Coil", merged.ItemName)
	assert.Equal(t, "kg", merged.Unit)
	assert.Equal(t, "7208.10", merged.HSCode)
	assert.Equal(t, "150", merged.Price.String())
	assert.Equal(t, "USD", merged.Currency)

	merged, err = uc.Upsert(dto.UpsertItemRequest{ItemCode: "BBK-001", Unit: "ton"})
	require.NoError(t, err)
	assert.Equal(t, "ton", merged.Unit, "a non-empty incoming field does overwrite")
	assert.Equal(t, "Steel Coil", merged.ItemName)
}

// TestItemUpsert_NoDuplicateByCode: upserting the same code twice keeps one
// record.
func TestItemUpsert_NoDuplicateByCode(t *testing.T) {
	uc := newItemUseCase(t)

	first, err := uc.Upsert(dto.UpsertItemRequest{ItemCode: "BBK-001", ItemName: "Steel Coil"})
	require.NoError(t, err)
	second, err := uc.Upsert(dto.UpsertItemRequest{ItemCode: "BBK-001", ItemName: "Steel Coil v2"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	items, err := uc.List()
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestItemList_InsertionOrder(t *testing.T) {
	uc := newItemUseCase(t)

	for _, code := range []string{"C-3", "A-1", "B-2"} {
		_, err := uc.Upsert(dto.UpsertItemRequest{ItemCode: code, ItemName: code})
		require.NoError(t, err)
	}

	items, err := uc.List()
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "C-3", items[0].ItemCode)
	assert.Equal(t, "A-1", items[1].ItemCode)
	assert.Equal(t, "B-2", items[2].ItemCode)
}
