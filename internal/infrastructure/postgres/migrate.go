package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate creates the schema when it does not exist yet. The bigserial seq
// columns preserve insertion order for ledger and listing queries.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS movements (
			seq               BIGSERIAL PRIMARY KEY,
			id                TEXT NOT NULL UNIQUE,
			doc_type          TEXT NOT NULL DEFAULT '',
			doc_number        TEXT NOT NULL DEFAULT '',
			doc_date          TEXT NOT NULL DEFAULT '',
			receipt_number    TEXT NOT NULL DEFAULT '',
			receipt_date      TEXT NOT NULL DEFAULT '',
			sender_name       TEXT NOT NULL DEFAULT '',
			item_code         TEXT NOT NULL,
			item_name         TEXT NOT NULL DEFAULT '',
			qty               NUMERIC NOT NULL DEFAULT 0,
			unit              TEXT NOT NULL DEFAULT 'unit',
			value_amount      NUMERIC NOT NULL DEFAULT 0,
			value_currency    TEXT NOT NULL DEFAULT 'IDR',
			movement_type     TEXT NOT NULL,
			source            TEXT NOT NULL DEFAULT 'WAREHOUSE',
			location          TEXT NOT NULL DEFAULT '',
			area              TEXT NOT NULL DEFAULT '',
			lot               TEXT NOT NULL DEFAULT '',
			rack              TEXT NOT NULL DEFAULT '',
			wip_stage         TEXT NOT NULL DEFAULT '',
			note              TEXT NOT NULL DEFAULT '',
			country_of_origin TEXT NOT NULL DEFAULT '',
			hs_code           TEXT NOT NULL DEFAULT '',
			approval_status   TEXT NOT NULL DEFAULT '',
			approval_by       TEXT NOT NULL DEFAULT '',
			approval_date     TEXT NOT NULL DEFAULT '',
			fob_value         NUMERIC NOT NULL DEFAULT 0,
			cif_value         NUMERIC NOT NULL DEFAULT 0,
			condition         TEXT NOT NULL DEFAULT '',
			reference_id      TEXT NOT NULL DEFAULT '',
			created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_movements_doc_date ON movements (doc_date)`,
		`CREATE INDEX IF NOT EXISTS idx_movements_item_code ON movements (item_code)`,
		`CREATE TABLE IF NOT EXISTS items (
			seq        BIGSERIAL PRIMARY KEY,
			id         TEXT NOT NULL,
			item_code  TEXT NOT NULL UNIQUE,
			item_name  TEXT NOT NULL,
			unit       TEXT NOT NULL DEFAULT 'unit',
			item_group TEXT NOT NULL DEFAULT 'bahan',
			hs_code    TEXT NOT NULL DEFAULT '',
			price      NUMERIC NOT NULL DEFAULT 0,
			currency   TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS stock_lines (
			id           TEXT NOT NULL,
			sku          TEXT NOT NULL,
			warehouse_id TEXT NOT NULL,
			name         TEXT NOT NULL DEFAULT '',
			qty          NUMERIC NOT NULL DEFAULT 0 CHECK (qty >= 0),
			created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (sku, warehouse_id)
		)`,
		`CREATE TABLE IF NOT EXISTS warehouses (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			country    TEXT NOT NULL DEFAULT '',
			city       TEXT NOT NULL DEFAULT '',
			metadata   JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS consignments (
			seq          BIGSERIAL,
			id           TEXT PRIMARY KEY,
			warehouse_id TEXT NOT NULL DEFAULT '',
			status       TEXT NOT NULL DEFAULT '',
			destination  TEXT NOT NULL DEFAULT '',
			awb_number   TEXT NOT NULL DEFAULT '',
			note         TEXT NOT NULL DEFAULT '',
			items        JSONB,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS idempotency_keys (
			key          TEXT PRIMARY KEY,
			event        TEXT NOT NULL,
			processed_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
