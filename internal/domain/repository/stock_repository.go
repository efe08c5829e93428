package repository

import (
	"github.com/shopspring/decimal"

	"github.com/bridgewms/kepabeanan-api/internal/domain/entity"
)

// StockRepository is the at-rest inventory port, keyed by (sku, warehouseId).
// Get returns nil when no line exists for the pair.
//
// Add and Subtract are the only quantity mutations and each one is atomic:
// the read, the balance check and the write happen in a single critical
// section (or a single guarded SQL statement), so concurrent calls against
// the same line never lose updates.
type StockRepository interface {
	Get(sku, warehouseID string) (*entity.StockLine, error)

	// Add adds line.Qty to the stored quantity for (line.SKU,
	// line.WarehouseID), inserting line as-is when no row exists yet, and
	// returns the resulting line.
	Add(line *entity.StockLine) (*entity.StockLine, error)

	// Subtract removes qty from the line for (sku, warehouseId). It returns
	// domain.ErrNotFound when no line exists, and domain.ErrInsufficientStock
	// when qty exceeds the balance; in the insufficient case the returned
	// line carries the unmodified balance for error reporting.
	Subtract(sku, warehouseID string, qty decimal.Decimal) (*entity.StockLine, error)

	Upsert(line *entity.StockLine) error
	List() ([]entity.StockLine, error)
	ListByWarehouse(warehouseID string) ([]entity.StockLine, error)
}
