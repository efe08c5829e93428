package usecase

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bridgewms/kepabeanan-api/internal/application/dto"
	"github.com/bridgewms/kepabeanan-api/internal/domain"
	"github.com/bridgewms/kepabeanan-api/internal/domain/entity"
	"github.com/bridgewms/kepabeanan-api/internal/domain/repository"
)

// WarehouseUseCase applies warehouse lifecycle events synced in from the
// warehouse-management side, with idempotency-key replay protection and the
// delete-with-stock guard.
type WarehouseUseCase struct {
	warehouseRepo   repository.WarehouseRepository
	stockRepo       repository.StockRepository
	idempotencyRepo repository.IdempotencyRepository
}

// NewWarehouseUseCase builds the use case.
func NewWarehouseUseCase(
	warehouseRepo repository.WarehouseRepository,
	stockRepo repository.StockRepository,
	idempotencyRepo repository.IdempotencyRepository,
) *WarehouseUseCase {
	return &WarehouseUseCase{
		warehouseRepo:   warehouseRepo,
		stockRepo:       stockRepo,
		idempotencyRepo: idempotencyRepo,
	}
}

// Sync applies one lifecycle event. A replayed idempotency key short-circuits
// to a no-op success ("already processed") without reapplying the mutation.
// When the caller supplies no key, one is derived from the event and the
// warehouse identity.
func (uc *WarehouseUseCase) Sync(in dto.WarehouseSyncRequest, idempotencyKey string) (*dto.WarehouseSyncResponse, error) {
	if idempotencyKey == "" {
		idempotencyKey = fmt.Sprintf("%s:%s", in.Event, in.Data.ResolveID())
	}

	seen, err := uc.idempotencyRepo.Seen(idempotencyKey)
	if err != nil {
		return nil, fmt.Errorf("check idempotency key: %w", err)
	}
	if seen {
		return &dto.WarehouseSyncResponse{Ok: true, Message: "already processed"}, nil
	}

	switch in.Event {
	case dto.EventWarehouseCreated:
		if err := uc.applyCreated(in.Data); err != nil {
			return nil, err
		}
	case dto.EventWarehouseUpdated:
		if err := uc.applyUpdated(in.Data); err != nil {
			return nil, err
		}
	case dto.EventWarehouseDeleted:
		if err := uc.applyDeleted(in.Data); err != nil {
			return nil, err
		}
	default:
		return nil, domain.ErrUnknownEvent
	}

	if err := uc.idempotencyRepo.Mark(idempotencyKey, in.Event); err != nil {
		return nil, fmt.Errorf("mark idempotency key: %w", err)
	}
	return &dto.WarehouseSyncResponse{Ok: true}, nil
}

// applyCreated upserts the warehouse carried by a created event.
func (uc *WarehouseUseCase) applyCreated(data dto.WarehouseSyncData) error {
	now := time.Now()
	id := data.ResolveID()
	if id == "" {
		id = fmt.Sprintf("wh-%d", now.UnixMilli())
	}

	w := &entity.Warehouse{
		ID:        id,
		Name:      firstNonEmpty(data.Name, data.WarehouseName, "Unnamed Warehouse"),
		Country:   firstNonEmpty(data.Country, data.CountryName),
		City:      firstNonEmpty(data.City, data.CityName),
		Metadata:  data.Metadata,
		CreatedAt: now,
		UpdatedAt: now,
	}

	existing, err := uc.warehouseRepo.GetByID(id)
	if err != nil {
		return fmt.Errorf("get warehouse: %w", err)
	}
	if existing != nil {
		w.CreatedAt = existing.CreatedAt
	}
	if err := uc.warehouseRepo.Upsert(w); err != nil {
		return fmt.Errorf("upsert warehouse: %w", err)
	}
	return nil
}

// applyUpdated merges the event payload into the warehouse, creating it when
// it does not exist yet (events may arrive out of order).
func (uc *WarehouseUseCase) applyUpdated(data dto.WarehouseSyncData) error {
	now := time.Now()
	id := data.ResolveID()

	existing, err := uc.warehouseRepo.GetByID(id)
	if err != nil {
		return fmt.Errorf("get warehouse: %w", err)
	}
	if existing == nil {
		return uc.applyCreated(data)
	}

	if name := firstNonEmpty(data.Name, data.WarehouseName); name != "" {
		existing.Name = name
	}
	if country := firstNonEmpty(data.Country, data.CountryName); country != "" {
		existing.Country = country
	}
	if city := firstNonEmpty(data.City, data.CityName); city != "" {
		existing.City = city
	}
	if data.Metadata != nil {
		existing.Metadata = data.Metadata
	}
	existing.UpdatedAt = now

	if err := uc.warehouseRepo.Upsert(existing); err != nil {
		return fmt.Errorf("upsert warehouse: %w", err)
	}
	return nil
}

// applyDeleted removes the warehouse unless any of its stock lines still
// holds quantity.
func (uc *WarehouseUseCase) applyDeleted(data dto.WarehouseSyncData) error {
	id := data.ResolveID()
	if id == "" {
		return nil
	}

	lines, err := uc.stockRepo.ListByWarehouse(id)
	if err != nil {
		return fmt.Errorf("list stock lines: %w", err)
	}
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Qty)
	}
	if total.GreaterThan(decimal.Zero) {
		return domain.ErrWarehouseHasStock
	}

	if err := uc.warehouseRepo.Delete(id); err != nil {
		return fmt.Errorf("delete warehouse: %w", err)
	}
	return nil
}

// List returns all synced warehouses.
func (uc *WarehouseUseCase) List() ([]entity.Warehouse, error) {
	ws, err := uc.warehouseRepo.List()
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	return ws, nil
}

// Locations returns the simplified warehouse view.
func (uc *WarehouseUseCase) Locations() ([]entity.Location, error) {
	ws, err := uc.warehouseRepo.List()
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	locations := make([]entity.Location, len(ws))
	for i, w := range ws {
		locations[i] = entity.Location{ID: w.ID, Name: w.Name, Country: w.Country, City: w.City}
	}
	return locations, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
