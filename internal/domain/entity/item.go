package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item master classification groups (kepabeanan report buckets).
const (
	ItemGroupBahan  = "bahan"  // raw material
	ItemGroupProduk = "produk" // finished good
	ItemGroupAsset  = "asset"  // machinery / capital good
	ItemGroupReject = "reject" // rejected / scrap
)

// Item is the master record for an item code. Upserted by code; movements may
// reference codes that were never registered here (no referential integrity).
type Item struct {
	ID        string          `json:"id"`
	ItemCode  string          `json:"item_code"`
	ItemName  string          `json:"item_name"`
	Unit      string          `json:"unit"`
	ItemGroup string          `json:"item_group"`
	HSCode    string          `json:"hs_code,omitempty"`
	Price     decimal.Decimal `json:"price"`
	Currency  string          `json:"currency,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
