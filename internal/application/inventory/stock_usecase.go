package inventory

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bridgewms/kepabeanan-api/internal/application/dto"
	"github.com/bridgewms/kepabeanan-api/internal/domain"
	"github.com/bridgewms/kepabeanan-api/internal/domain/entity"
	"github.com/bridgewms/kepabeanan-api/internal/domain/repository"
)

// StockUseCase tracks at-rest quantities per (sku, warehouseId).
//
// This tracker and the movement ledger are separate books by design: a
// receive or dispatch here never appends a ledger movement. The stock line
// invariant is qty = Σ receives − Σ dispatches − Σ consignment dispatches,
// and qty never goes negative. All quantity changes go through the
// repository's atomic Add/Subtract, so the invariant holds under concurrent
// requests.
type StockUseCase struct {
	stockRepo       repository.StockRepository
	consignmentRepo repository.ConsignmentRepository
}

// NewStockUseCase builds the quantity tracker.
func NewStockUseCase(stockRepo repository.StockRepository, consignmentRepo repository.ConsignmentRepository) *StockUseCase {
	return &StockUseCase{stockRepo: stockRepo, consignmentRepo: consignmentRepo}
}

// Receive adds qty to the stock line for (sku, warehouseId), creating the
// line on first receive. Qty must be positive.
func (uc *StockUseCase) Receive(sku, name, warehouseID string, qty decimal.Decimal) (*entity.StockLine, error) {
	if sku == "" || warehouseID == "" || !qty.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if name == "" {
		name = sku
	}
	now := time.Now()

	line, err := uc.stockRepo.Add(&entity.StockLine{
		ID:          uuid.New().String(),
		SKU:         sku,
		Name:        name,
		WarehouseID: warehouseID,
		Qty:         qty,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("add stock: %w", err)
	}
	return line, nil
}

// Dispatch subtracts qty from the stock line for (sku, warehouseId).
// Requesting exactly the available amount succeeds and leaves the line at
// zero; the line is never deleted.
func (uc *StockUseCase) Dispatch(sku, warehouseID string, qty decimal.Decimal) (*entity.StockLine, error) {
	if sku == "" || warehouseID == "" || !qty.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	line, err := uc.stockRepo.Subtract(sku, warehouseID, qty)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInsufficientStock) {
			return nil, err
		}
		return nil, fmt.Errorf("subtract stock: %w", err)
	}
	return line, nil
}

// DispatchConsignment processes every consignment line independently: a line
// with a missing sku/qty, unknown stock or insufficient stock is recorded as
// an error string and skipped, never aborting its siblings. Lines already
// decremented stay decremented even when errors are reported. After the loop
// the referenced consignment, if it exists, is stamped with the dispatched
// status sentinel regardless of per-line errors.
func (uc *StockUseCase) DispatchConsignment(consignmentID, warehouseID string, items []dto.ConsignmentLineRequest) (*dto.DispatchConsignmentResponse, error) {
	if consignmentID == "" || warehouseID == "" || len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()

	dispatched := []dto.DispatchedLine{}
	errs := []string{}
	for _, it := range items {
		if it.SKU == "" || it.Qty.IsZero() {
			errs = append(errs, fmt.Sprintf("Invalid item: sku=%s, qty=%s", it.SKU, it.Qty.Decimal))
			continue
		}
		line, err := uc.stockRepo.Subtract(it.SKU, warehouseID, it.Qty.Decimal)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			errs = append(errs, fmt.Sprintf("Stock not found for SKU %s in warehouse %s", it.SKU, warehouseID))
			continue
		case errors.Is(err, domain.ErrInsufficientStock):
			errs = append(errs, fmt.Sprintf("Insufficient stock for %s: available %s, requested %s", it.SKU, line.Qty, it.Qty.Decimal))
			continue
		case err != nil:
			return nil, fmt.Errorf("subtract stock: %w", err)
		}
		dispatched = append(dispatched, dto.DispatchedLine{
			SKU:    it.SKU,
			Qty:    it.Qty,
			NewQty: dto.Quantity{Decimal: line.Qty},
		})
	}

	// Status update happens even on partial failure; there is no rollback of
	// the lines already applied.
	consignment, err := uc.consignmentRepo.GetByID(consignmentID)
	if err != nil {
		return nil, fmt.Errorf("get consignment: %w", err)
	}
	if consignment != nil {
		consignment.Status = entity.ConsignmentStatusDispatched
		consignment.UpdatedAt = now
		if err := uc.consignmentRepo.Update(consignment); err != nil {
			return nil, fmt.Errorf("update consignment: %w", err)
		}
	}

	if len(errs) > 0 {
		return &dto.DispatchConsignmentResponse{
			Ok:              false,
			Message:         "Some items failed to dispatch",
			DispatchedItems: dispatched,
			Errors:          errs,
		}, nil
	}
	return &dto.DispatchConsignmentResponse{
		Ok:              true,
		Message:         "Consignment dispatched successfully",
		DispatchedItems: dispatched,
	}, nil
}

// List returns all stock lines.
func (uc *StockUseCase) List() ([]entity.StockLine, error) {
	lines, err := uc.stockRepo.List()
	if err != nil {
		return nil, fmt.Errorf("list stock lines: %w", err)
	}
	return lines, nil
}
