package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockLine is the at-rest quantity of one SKU in one warehouse ("inventory"
// collection). Created on first receive, decremented in place by dispatches,
// never deleted: a fully-dispatched line stays at qty 0.
//
// Qty must never go negative.
type StockLine struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	WarehouseID string          `json:"warehouseId"`
	Qty         decimal.Decimal `json:"qty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
