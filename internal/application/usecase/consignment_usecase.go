package usecase

import (
	"fmt"
	"time"

	"github.com/bridgewms/kepabeanan-api/internal/application/dto"
	"github.com/bridgewms/kepabeanan-api/internal/domain"
	"github.com/bridgewms/kepabeanan-api/internal/domain/entity"
	"github.com/bridgewms/kepabeanan-api/internal/domain/repository"
)

// ConsignmentUseCase manages the consignment collection (shipment groupings
// kept in sync with the warehouse-management UI).
type ConsignmentUseCase struct {
	consignmentRepo repository.ConsignmentRepository
}

// NewConsignmentUseCase builds the use case.
func NewConsignmentUseCase(consignmentRepo repository.ConsignmentRepository) *ConsignmentUseCase {
	return &ConsignmentUseCase{consignmentRepo: consignmentRepo}
}

// Create stores a consignment, generating a WH-<ms> id when none is supplied.
func (uc *ConsignmentUseCase) Create(in dto.UpsertConsignmentRequest) (*entity.Consignment, error) {
	now := time.Now()
	id := in.ID
	if id == "" {
		id = fmt.Sprintf("WH-%d", now.UnixMilli())
	}
	c := &entity.Consignment{
		ID:          id,
		WarehouseID: in.WarehouseID,
		Status:      in.Status,
		Destination: in.Destination,
		AWBNumber:   in.AWBNumber,
		Note:        in.Note,
		Items:       toLines(in.Items),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.consignmentRepo.Create(c); err != nil {
		return nil, fmt.Errorf("create consignment: %w", err)
	}
	return c, nil
}

// Update merges non-empty fields into an existing consignment.
func (uc *ConsignmentUseCase) Update(id string, in dto.UpsertConsignmentRequest) (*entity.Consignment, error) {
	existing, err := uc.consignmentRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("get consignment: %w", err)
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	if in.WarehouseID != "" {
		existing.WarehouseID = in.WarehouseID
	}
	if in.Status != "" {
		existing.Status = in.Status
	}
	if in.Destination != "" {
		existing.Destination = in.Destination
	}
	if in.AWBNumber != "" {
		existing.AWBNumber = in.AWBNumber
	}
	if in.Note != "" {
		existing.Note = in.Note
	}
	if len(in.Items) > 0 {
		existing.Items = toLines(in.Items)
	}
	existing.UpdatedAt = time.Now()

	if err := uc.consignmentRepo.Update(existing); err != nil {
		return nil, fmt.Errorf("update consignment: %w", err)
	}
	return existing, nil
}

// Delete removes a consignment by id.
func (uc *ConsignmentUseCase) Delete(id string) error {
	existing, err := uc.consignmentRepo.GetByID(id)
	if err != nil {
		return fmt.Errorf("get consignment: %w", err)
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	if err := uc.consignmentRepo.Delete(id); err != nil {
		return fmt.Errorf("delete consignment: %w", err)
	}
	return nil
}

// List returns all consignments in insertion order.
func (uc *ConsignmentUseCase) List() ([]entity.Consignment, error) {
	cs, err := uc.consignmentRepo.List()
	if err != nil {
		return nil, fmt.Errorf("list consignments: %w", err)
	}
	return cs, nil
}

func toLines(items []dto.ConsignmentLineRequest) []entity.ConsignmentLine {
	if len(items) == 0 {
		return nil
	}
	lines := make([]entity.ConsignmentLine, len(items))
	for i, it := range items {
		lines[i] = entity.ConsignmentLine{SKU: it.SKU, Qty: it.Qty.Decimal}
	}
	return lines
}
