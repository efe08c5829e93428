package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movement types in the customs ledger. Qty is stored as a non-negative
// magnitude; the type decides whether it adds to or subtracts from the book.
const (
	MovementTypeIN  = "IN"  // goods receipt into the bonded warehouse
	MovementTypeOUT = "OUT" // goods issue
	MovementTypeADJ = "ADJ" // stock-take adjustment, additive magnitude
)

// Movement is one append-only fact in the movement ledger. Once created it is
// never rewritten; only UpdatedAt and annotations may change. DocDate is the
// field used for all range filtering and is kept as an ISO YYYY-MM-DD string
// so date ranges compare lexicographically, as the reports expect.
//
// The JSON tags are the persisted document layout ("movements" collection).
type Movement struct {
	ID string `json:"id"`

	// Regulatory document linkage (PIB/PEB/TPPB references).
	DocType       string `json:"doc_type"`
	DocNumber     string `json:"doc_number"`
	DocDate       string `json:"doc_date"`
	ReceiptNumber string `json:"receipt_number"`
	ReceiptDate   string `json:"receipt_date"`
	SenderName    string `json:"sender_name"`

	ItemCode string          `json:"item_code"`
	ItemName string          `json:"item_name"`
	Qty      decimal.Decimal `json:"qty"`
	Unit     string          `json:"unit"`

	ValueAmount   decimal.Decimal `json:"value_amount"`
	ValueCurrency string          `json:"value_currency"`

	MovementType string `json:"movement_type"`
	Source       string `json:"source"`

	// Physical placement inside the warehouse.
	Location string `json:"location"`
	Area     string `json:"area"`
	Lot      string `json:"lot"`
	Rack     string `json:"rack"`

	WIPStage string `json:"wip_stage,omitempty"`
	Note     string `json:"note"`

	// Customs attributes carried through for the kepabeanan reports;
	// none of these participate in aggregation.
	CountryOfOrigin string          `json:"country_of_origin,omitempty"`
	HSCode          string          `json:"hs_code,omitempty"`
	ApprovalStatus  string          `json:"approval_status,omitempty"`
	ApprovalBy      string          `json:"approval_by,omitempty"`
	ApprovalDate    string          `json:"approval_date,omitempty"`
	FOBValue        decimal.Decimal `json:"fob_value"`
	CIFValue        decimal.Decimal `json:"cif_value"`
	Condition       string          `json:"condition,omitempty"`

	// ReferenceID links an issue line back to the inbound it draws from.
	ReferenceID string `json:"reference_id,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
