package dto

import "github.com/bridgewms/kepabeanan-api/internal/domain/entity"

// UpsertConsignmentRequest body for POST /api/consignments and
// PUT /api/consignments/:id.
type UpsertConsignmentRequest struct {
	ID          string                   `json:"id"`
	WarehouseID string                   `json:"warehouseId"`
	Status      string                   `json:"status"`
	Destination string                   `json:"destination"`
	AWBNumber   string                   `json:"awbNumber"`
	Note        string                   `json:"note"`
	Items       []ConsignmentLineRequest `json:"items"`
}

// ConsignmentResponse single consignment record.
type ConsignmentResponse struct {
	Ok          bool               `json:"ok"`
	Consignment entity.Consignment `json:"consignment"`
}

// ConsignmentListResponse body for GET /api/consignments.
type ConsignmentListResponse struct {
	Ok           bool                 `json:"ok"`
	Consignments []entity.Consignment `json:"consignments"`
}
