package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/bridgewms/kepabeanan-api/internal/application/dto"
	"github.com/bridgewms/kepabeanan-api/internal/application/inventory"
	"github.com/bridgewms/kepabeanan-api/internal/domain"
)

// StockHandler handles the at-rest inventory endpoints.
type StockHandler struct {
	uc *inventory.StockUseCase
}

// NewStockHandler builds the handler.
func NewStockHandler(uc *inventory.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Receive handles POST /api/inventory/receive.
func (h *StockHandler) Receive(c *fiber.Ctx) error {
	var in dto.ReceiveStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "invalid body")
	}
	if in.SKU == "" || in.WarehouseID == "" || in.Qty.IsZero() {
		return badRequest(c, "VALIDATION", "sku, warehouseId and qty are required")
	}
	line, err := h.uc.Receive(in.SKU, in.Name, in.WarehouseID, in.Qty.Decimal)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.StockLineResponse{Ok: true, Item: *line})
}

// Dispatch handles POST /api/inventory/dispatch. An unknown stock line is a
// 400 here, not a 404: the warehouse-management caller treats both refusals
// the same way.
func (h *StockHandler) Dispatch(c *fiber.Ctx) error {
	var in dto.DispatchStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "invalid body")
	}
	if in.SKU == "" || in.WarehouseID == "" || in.Qty.IsZero() {
		return badRequest(c, "VALIDATION", "sku, warehouseId and qty are required")
	}
	line, err := h.uc.Dispatch(in.SKU, in.WarehouseID, in.Qty.Decimal)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return badRequest(c, "STOCK_NOT_FOUND", "stock not found")
		}
		return fail(c, err)
	}
	return c.JSON(dto.StockLineResponse{Ok: true, Item: *line})
}

// List handles GET /api/inventory.
func (h *StockHandler) List(c *fiber.Ctx) error {
	lines, err := h.uc.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.StockListResponse{Ok: true, Inventory: lines})
}
