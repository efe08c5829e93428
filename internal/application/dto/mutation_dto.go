package dto

import "github.com/shopspring/decimal"

// MutationFilter query parameters for the mutasi aggregation.
// Group is the item classification (bahan, produk, asset, reject).
type MutationFilter struct {
	Start string
	End   string
	Item  string
	Group string
}

// MutationRow one aggregated kepabeanan report row per item code.
// Descriptive fields are seeded from the first movement seen for the code.
type MutationRow struct {
	ItemCode       string          `json:"item_code"`
	ItemName       string          `json:"item_name"`
	Unit           string          `json:"unit"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	Inbound        decimal.Decimal `json:"inbound"`
	Outbound       decimal.Decimal `json:"outbound"`
	Adjustment     decimal.Decimal `json:"adjustment"`
	BookBalance    decimal.Decimal `json:"book_balance"`
	PhysicalOpname decimal.Decimal `json:"physical_opname"`
	Variance       decimal.Decimal `json:"variance"`
	Notes          string          `json:"notes"`
	WIPStage       string          `json:"wip_stage,omitempty"`
	Location       string          `json:"location"`
	Area           string          `json:"area"`
	Lot            string          `json:"lot"`
	Rack           string          `json:"rack"`
}

// MutationSummary totals across all rows of one aggregation.
type MutationSummary struct {
	TotalRows     int             `json:"totalRows"`
	TotalInbound  decimal.Decimal `json:"totalInbound"`
	TotalOutbound decimal.Decimal `json:"totalOutbound"`
}

// MutationAggregateResponse body for GET /api/inventory/aggregations/mutasi.
type MutationAggregateResponse struct {
	Ok      bool            `json:"ok"`
	Rows    []MutationRow   `json:"rows"`
	Summary MutationSummary `json:"summary"`
}
