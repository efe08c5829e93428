package dto

import "github.com/bridgewms/kepabeanan-api/internal/domain/entity"

// CreateMovementRequest body for POST /api/inventory/movements.
//
// Two shapes share this struct: a single movement (line fields set at the top
// level, Items empty) or a batch (Items non-empty, with the top-level document
// fields used as defaults for every line that leaves them unset).
type CreateMovementRequest struct {
	DocType       string `json:"doc_type"`
	DocNumber     string `json:"doc_number"`
	DocDate       string `json:"doc_date"`
	ReceiptNumber string `json:"receipt_number"`
	ReceiptDate   string `json:"receipt_date"`
	SenderName    string `json:"sender_name"`
	Location      string `json:"location"`
	LocationID    string `json:"location_id"`

	ItemCode     string   `json:"item_code"`
	ItemName     string   `json:"item_name"`
	Qty          Quantity `json:"qty"`
	Unit         string   `json:"unit"`
	MovementType string   `json:"movement_type"`
	Source       string   `json:"source"`

	Area     string `json:"area"`
	Lot      string `json:"lot"`
	Rack     string `json:"rack"`
	WIPStage string `json:"wip_stage"`
	Note     string `json:"note"`

	ValueAmount   Quantity `json:"value_amount"`
	ValueCurrency string   `json:"value_currency"`

	CountryOfOrigin string   `json:"country_of_origin"`
	HSCode          string   `json:"hs_code"`
	ApprovalStatus  string   `json:"approval_status"`
	ApprovalBy      string   `json:"approval_by"`
	ApprovalDate    string   `json:"approval_date"`
	FOBValue        Quantity `json:"fob_value"`
	CIFValue        Quantity `json:"cif_value"`
	Condition       string   `json:"condition"`

	Items []MovementLineRequest `json:"items"`
}

// MovementLineRequest one line of a batch movement request.
type MovementLineRequest struct {
	ItemCode     string   `json:"item_code"`
	ItemName     string   `json:"item_name"`
	Qty          Quantity `json:"qty"`
	Unit         string   `json:"unit"`
	MovementType string   `json:"movement_type"`
	ReferenceID  string   `json:"reference_id"`
	Note         string   `json:"note"`
}

// IsBatch reports whether the request carries batch lines.
func (r CreateMovementRequest) IsBatch() bool {
	return len(r.Items) > 0
}

// MovementResponse single created movement.
type MovementResponse struct {
	Ok       bool            `json:"ok"`
	Movement entity.Movement `json:"movement"`
}

// MovementBatchResponse result of a batch append: only the lines actually
// created are reported.
type MovementBatchResponse struct {
	Ok        bool              `json:"ok"`
	Movements []entity.Movement `json:"movements"`
	Count     int               `json:"count"`
}

// MovementListResponse rows for GET /api/inventory/movements.
type MovementListResponse struct {
	Ok    bool              `json:"ok"`
	Rows  []entity.Movement `json:"rows"`
	Count int               `json:"count"`
}
