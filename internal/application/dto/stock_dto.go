package dto

import "github.com/bridgewms/kepabeanan-api/internal/domain/entity"

// ReceiveStockRequest body for POST /api/inventory/receive.
type ReceiveStockRequest struct {
	SKU         string   `json:"sku"`
	Name        string   `json:"name"`
	WarehouseID string   `json:"warehouseId"`
	Qty         Quantity `json:"qty"`
}

// DispatchStockRequest body for POST /api/inventory/dispatch.
type DispatchStockRequest struct {
	SKU         string   `json:"sku"`
	WarehouseID string   `json:"warehouseId"`
	Qty         Quantity `json:"qty"`
}

// StockLineResponse updated or created stock line.
type StockLineResponse struct {
	Ok   bool             `json:"ok"`
	Item entity.StockLine `json:"item"`
}

// StockListResponse body for GET /api/inventory.
type StockListResponse struct {
	Ok        bool               `json:"ok"`
	Inventory []entity.StockLine `json:"inventory"`
}

// DispatchConsignmentRequest body for POST /api/consignments/dispatch.
type DispatchConsignmentRequest struct {
	ConsignmentID string                   `json:"consignmentId"`
	WarehouseID   string                   `json:"warehouseId"`
	Items         []ConsignmentLineRequest `json:"items"`
}

// ConsignmentLineRequest one SKU/qty pair to dispatch.
type ConsignmentLineRequest struct {
	SKU string   `json:"sku"`
	Qty Quantity `json:"qty"`
}

// DispatchedLine reports one successfully decremented line.
type DispatchedLine struct {
	SKU    string   `json:"sku"`
	Qty    Quantity `json:"qty"`
	NewQty Quantity `json:"newQty"`
}

// DispatchConsignmentResponse partial-success result: every line is processed
// independently, so both slices can be non-empty at once.
type DispatchConsignmentResponse struct {
	Ok              bool             `json:"ok"`
	Message         string           `json:"message"`
	DispatchedItems []DispatchedLine `json:"dispatchedItems"`
	Errors          []string         `json:"errors,omitempty"`
}
