package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bridgewms/kepabeanan-api/internal/application/dto"
	"github.com/bridgewms/kepabeanan-api/internal/application/usecase"
)

// WarehouseHandler handles warehouse sync and listings.
type WarehouseHandler struct {
	uc *usecase.WarehouseUseCase
}

// NewWarehouseHandler builds the handler.
func NewWarehouseHandler(uc *usecase.WarehouseUseCase) *WarehouseHandler {
	return &WarehouseHandler{uc: uc}
}

// Sync handles POST /api/warehouses/sync. The optional Idempotency-Key
// header shields the caller's retries: a replayed key answers "already
// processed" without reapplying the event.
func (h *WarehouseHandler) Sync(c *fiber.Ctx) error {
	var in dto.WarehouseSyncRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "invalid body")
	}
	out, err := h.uc.Sync(in, c.Get("Idempotency-Key"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// List handles GET /api/warehouses.
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	ws, err := h.uc.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.WarehouseListResponse{Ok: true, Warehouses: ws})
}

// Locations handles GET /api/locations (simplified warehouse view).
func (h *WarehouseHandler) Locations(c *fiber.Ctx) error {
	locations, err := h.uc.Locations()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.LocationListResponse{Ok: true, Locations: locations})
}
