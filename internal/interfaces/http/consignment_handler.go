package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bridgewms/kepabeanan-api/internal/application/dto"
	"github.com/bridgewms/kepabeanan-api/internal/application/inventory"
	"github.com/bridgewms/kepabeanan-api/internal/application/usecase"
)

// ConsignmentHandler handles consignment CRUD and dispatch.
type ConsignmentHandler struct {
	uc      *usecase.ConsignmentUseCase
	stockUC *inventory.StockUseCase
}

// NewConsignmentHandler builds the handler.
func NewConsignmentHandler(uc *usecase.ConsignmentUseCase, stockUC *inventory.StockUseCase) *ConsignmentHandler {
	return &ConsignmentHandler{uc: uc, stockUC: stockUC}
}

// List handles GET /api/consignments.
func (h *ConsignmentHandler) List(c *fiber.Ctx) error {
	cs, err := h.uc.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.ConsignmentListResponse{Ok: true, Consignments: cs})
}

// Create handles POST /api/consignments.
func (h *ConsignmentHandler) Create(c *fiber.Ctx) error {
	var in dto.UpsertConsignmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "invalid body")
	}
	created, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.ConsignmentResponse{Ok: true, Consignment: *created})
}

// Update handles PUT /api/consignments/:id.
func (h *ConsignmentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpsertConsignmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "invalid body")
	}
	updated, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.ConsignmentResponse{Ok: true, Consignment: *updated})
}

// Delete handles DELETE /api/consignments/:id.
func (h *ConsignmentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// Dispatch handles POST /api/consignments/dispatch. Lines are processed
// independently; any per-line error makes the overall response a 400 while
// the dispatched lines stay dispatched.
func (h *ConsignmentHandler) Dispatch(c *fiber.Ctx) error {
	var in dto.DispatchConsignmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "invalid body")
	}
	if in.ConsignmentID == "" || in.WarehouseID == "" || len(in.Items) == 0 {
		return badRequest(c, "VALIDATION", "consignmentId, warehouseId, and items array are required")
	}
	out, err := h.stockUC.DispatchConsignment(in.ConsignmentID, in.WarehouseID, in.Items)
	if err != nil {
		return fail(c, err)
	}
	if !out.Ok {
		return c.Status(fiber.StatusBadRequest).JSON(out)
	}
	return c.JSON(out)
}
