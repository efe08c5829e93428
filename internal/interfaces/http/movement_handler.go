package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bridgewms/kepabeanan-api/internal/application/dto"
	"github.com/bridgewms/kepabeanan-api/internal/application/ledger"
	"github.com/bridgewms/kepabeanan-api/internal/domain/entity"
	"github.com/bridgewms/kepabeanan-api/internal/domain/repository"
)

// MovementHandler handles the movement ledger endpoints.
type MovementHandler struct {
	uc *ledger.UseCase
}

// NewMovementHandler builds the handler.
func NewMovementHandler(uc *ledger.UseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Create handles POST /api/inventory/movements.
// Accepts a single movement or a batch ({items: [...]} sharing document
// fields). A single append with missing item_code/qty is a 400; batch lines
// failing the same check are skipped and only created lines are reported.
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "invalid body")
	}

	if in.IsBatch() {
		lines := make([]*entity.Movement, len(in.Items))
		for i, item := range in.Items {
			lines[i] = movementFromBatchLine(in, item)
		}
		created, err := h.uc.AppendBatch(lines)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(dto.MovementBatchResponse{Ok: true, Movements: created, Count: len(created)})
	}

	created, err := h.uc.Append(movementFromRequest(in))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MovementResponse{Ok: true, Movement: *created})
}

// List handles GET /api/inventory/movements with start/end/item/type filters.
func (h *MovementHandler) List(c *fiber.Ctx) error {
	rows, err := h.uc.Query(repository.MovementFilter{
		Start: c.Query("start"),
		End:   c.Query("end"),
		Item:  c.Query("item"),
		Type:  c.Query("type"),
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MovementListResponse{Ok: true, Rows: rows, Count: len(rows)})
}

// movementFromRequest maps a single-movement request onto the entity.
func movementFromRequest(in dto.CreateMovementRequest) *entity.Movement {
	return &entity.Movement{
		DocType:         in.DocType,
		DocNumber:       in.DocNumber,
		DocDate:         in.DocDate,
		ReceiptNumber:   in.ReceiptNumber,
		ReceiptDate:     in.ReceiptDate,
		SenderName:      in.SenderName,
		ItemCode:        in.ItemCode,
		ItemName:        in.ItemName,
		Qty:             in.Qty.Decimal,
		Unit:            in.Unit,
		ValueAmount:     in.ValueAmount.Decimal,
		ValueCurrency:   in.ValueCurrency,
		MovementType:    in.MovementType,
		Source:          in.Source,
		Location:        locationOf(in),
		Area:            in.Area,
		Lot:             in.Lot,
		Rack:            in.Rack,
		WIPStage:        in.WIPStage,
		Note:            in.Note,
		CountryOfOrigin: in.CountryOfOrigin,
		HSCode:          in.HSCode,
		ApprovalStatus:  in.ApprovalStatus,
		ApprovalBy:      in.ApprovalBy,
		ApprovalDate:    in.ApprovalDate,
		FOBValue:        in.FOBValue.Decimal,
		CIFValue:        in.CIFValue.Decimal,
		Condition:       in.Condition,
	}
}

// movementFromBatchLine maps a batch line onto the entity, with the request's
// document-level fields as defaults for whatever the line leaves unset.
func movementFromBatchLine(in dto.CreateMovementRequest, line dto.MovementLineRequest) *entity.Movement {
	m := movementFromRequest(in)
	m.ItemCode = line.ItemCode
	m.ItemName = line.ItemName
	m.Qty = line.Qty.Decimal
	m.ReferenceID = line.ReferenceID
	if line.Unit != "" {
		m.Unit = line.Unit
	}
	if line.MovementType != "" {
		m.MovementType = line.MovementType
	}
	if line.Note != "" {
		m.Note = line.Note
	}
	return m
}

func locationOf(in dto.CreateMovementRequest) string {
	if in.Location != "" {
		return in.Location
	}
	return in.LocationID
}
