package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bridgewms/kepabeanan-api/internal/application/dto"
	"github.com/bridgewms/kepabeanan-api/internal/application/kepabeanan"
)

// MutationHandler serves the kepabeanan mutation aggregation.
type MutationHandler struct {
	uc *kepabeanan.MutationUseCase
}

// NewMutationHandler builds the handler.
func NewMutationHandler(uc *kepabeanan.MutationUseCase) *MutationHandler {
	return &MutationHandler{uc: uc}
}

// Aggregate handles GET /api/inventory/aggregations/mutasi.
// The type parameter carries the classification group (bahan, produk, asset,
// reject); an unmatched group silently degrades to no filter.
func (h *MutationHandler) Aggregate(c *fiber.Ctx) error {
	out, err := h.uc.Aggregate(dto.MutationFilter{
		Start: c.Query("start"),
		End:   c.Query("end"),
		Item:  c.Query("item"),
		Group: c.Query("type"),
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
