package dto

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ErrorResponse HTTP error body.
type ErrorResponse struct {
	Ok      bool   `json:"ok"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Quantity is a permissive decimal for request payloads coming from the
// warehouse UI: accepts a JSON number or numeric string, and coerces null,
// empty or non-numeric input to zero instead of failing the whole request.
type Quantity struct {
	decimal.Decimal
}

// UnmarshalJSON implements the coercion. Never returns an error.
func (q *Quantity) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		q.Decimal = decimal.Zero
		return nil
	}
	s = strings.Trim(s, `"`)
	d, err := decimal.NewFromString(s)
	if err != nil {
		q.Decimal = decimal.Zero
		return nil
	}
	q.Decimal = d
	return nil
}

// IsZero reports whether the coerced value is zero (missing / falsy input).
func (q Quantity) IsZero() bool {
	return q.Decimal.IsZero()
}
