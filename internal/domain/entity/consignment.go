package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConsignmentStatusDispatched is the status sentinel stamped on a consignment
// once its dispatch loop has run ("Sudah Keluar" = already out).
const ConsignmentStatusDispatched = "Sudah Keluar"

// ConsignmentLine is one SKU/qty pair inside a consignment.
type ConsignmentLine struct {
	SKU string          `json:"sku"`
	Qty decimal.Decimal `json:"qty"`
}

// Consignment groups inventory lines that leave the warehouse together
// (AWB/BL shipment level).
type Consignment struct {
	ID          string            `json:"id"`
	WarehouseID string            `json:"warehouseId,omitempty"`
	Status      string            `json:"status,omitempty"`
	Destination string            `json:"destination,omitempty"`
	AWBNumber   string            `json:"awbNumber,omitempty"`
	Note        string            `json:"note,omitempty"`
	Items       []ConsignmentLine `json:"items,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}
