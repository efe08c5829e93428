package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bridgewms/kepabeanan-api/internal/application/dto"
	"github.com/bridgewms/kepabeanan-api/internal/application/usecase"
)

// ItemHandler handles the item master endpoints.
type ItemHandler struct {
	uc *usecase.ItemUseCase
}

// NewItemHandler builds the handler.
func NewItemHandler(uc *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// Upsert handles POST /api/inventory/items.
func (h *ItemHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "invalid body")
	}
	if in.ItemCode == "" || in.ItemName == "" {
		return badRequest(c, "VALIDATION", "item_code and item_name are required")
	}
	item, err := h.uc.Upsert(in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.ItemResponse{Ok: true, Item: *item})
}

// List handles GET /api/inventory/items.
func (h *ItemHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.ItemListResponse{Ok: true, Items: items})
}
