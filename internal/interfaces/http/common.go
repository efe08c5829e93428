package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/bridgewms/kepabeanan-api/internal/application/dto"
	"github.com/bridgewms/kepabeanan-api/internal/domain"
)

// fail maps domain errors to HTTP responses. Business-rule refusals stay
// 400s, like the warehouse-management side expects; anything unrecognized is
// surfaced generically without internal detail.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return badRequest(c, "VALIDATION", err.Error())
	case errors.Is(err, domain.ErrUnknownEvent):
		return badRequest(c, "UNKNOWN_EVENT", "unknown event type")
	case errors.Is(err, domain.ErrInsufficientStock):
		return badRequest(c, "INSUFFICIENT_STOCK", "insufficient stock")
	case errors.Is(err, domain.ErrWarehouseHasStock):
		return badRequest(c, "WAREHOUSE_HAS_STOCK", "warehouse has stock, cannot delete")
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "resource not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "internal error"})
	}
}

func badRequest(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: message})
}
