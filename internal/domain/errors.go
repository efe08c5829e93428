package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrConflict          = errors.New("conflict with current state")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrWarehouseHasStock = errors.New("warehouse has stock, cannot delete")
	ErrUnknownEvent      = errors.New("unknown event type")
)
