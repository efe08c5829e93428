package dto

import "github.com/bridgewms/kepabeanan-api/internal/domain/entity"

// UpsertItemRequest body for POST /api/inventory/items.
type UpsertItemRequest struct {
	ItemCode  string   `json:"item_code"`
	ItemName  string   `json:"item_name"`
	Unit      string   `json:"unit"`
	ItemGroup string   `json:"item_group"`
	HSCode    string   `json:"hs_code"`
	Price     Quantity `json:"price"`
	Currency  string   `json:"currency"`
}

// ItemResponse single item master record.
type ItemResponse struct {
	Ok   bool        `json:"ok"`
	Item entity.Item `json:"item"`
}

// ItemListResponse body for GET /api/inventory/items.
type ItemListResponse struct {
	Ok    bool          `json:"ok"`
	Items []entity.Item `json:"items"`
}
