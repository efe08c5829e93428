package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bridgewms/kepabeanan-api/internal/application/dto"
	"github.com/bridgewms/kepabeanan-api/internal/domain"
	"github.com/bridgewms/kepabeanan-api/internal/domain/entity"
	"github.com/bridgewms/kepabeanan-api/internal/domain/repository"
)

// ItemUseCase manages the item master registry (upsert-by-code).
type ItemUseCase struct {
	itemRepo repository.ItemRepository
}

// NewItemUseCase builds the use case.
func NewItemUseCase(itemRepo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{itemRepo: itemRepo}
}

// Upsert creates or merges an item master record by item_code.
//
// The merge is non-destructive: an empty incoming field never overwrites a
// stored non-empty value. On creation item_code and item_name are required;
// unit defaults to "unit" and item_group to "bahan".
func (uc *ItemUseCase) Upsert(in dto.UpsertItemRequest) (*entity.Item, error) {
	if in.ItemCode == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()

	existing, err := uc.itemRepo.GetByCode(in.ItemCode)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	if existing == nil {
		if in.ItemName == "" {
			return nil, domain.ErrInvalidInput
		}
		item := &entity.Item{
			ID:        uuid.New().String(),
			ItemCode:  in.ItemCode,
			ItemName:  in.ItemName,
			Unit:      orDefault(in.Unit, "unit"),
			ItemGroup: orDefault(in.ItemGroup, entity.ItemGroupBahan),
			HSCode:    in.HSCode,
			Price:     in.Price.Decimal,
			Currency:  in.Currency,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.itemRepo.Save(item); err != nil {
			return nil, fmt.Errorf("save item: %w", err)
		}
		return item, nil
	}

	if in.ItemName != "" {
		existing.ItemName = in.ItemName
	}
	if in.Unit != "" {
		existing.Unit = in.Unit
	}
	if in.ItemGroup != "" {
		existing.ItemGroup = in.ItemGroup
	}
	if in.HSCode != "" {
		existing.HSCode = in.HSCode
	}
	if !in.Price.IsZero() {
		existing.Price = in.Price.Decimal
	}
	if in.Currency != "" {
		existing.Currency = in.Currency
	}
	existing.UpdatedAt = now

	if err := uc.itemRepo.Save(existing); err != nil {
		return nil, fmt.Errorf("save item: %w", err)
	}
	return existing, nil
}

// List returns the full item master in insertion order.
func (uc *ItemUseCase) List() ([]entity.Item, error) {
	items, err := uc.itemRepo.List()
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
