package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS billing_entries (
		id           SERIAL PRIMARY KEY,
		category     TEXT    NOT NULL,
		year         INTEGER NOT NULL,
		month        INTEGER NOT NULL,
		department   TEXT    NOT NULL,
		amount       NUMERIC(12,2) NOT NULL DEFAULT 0,
		data         JSONB   NOT NULL DEFAULT '{}',
		created_at   TIMESTAMPTZ DEFAULT NOW(),
		updated_at   TIMESTAMPTZ DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_billing_cat_year_month
		ON billing_entries(category, year, month)`,
	`CREATE TABLE IF NOT EXISTS app_settings (
		id             INTEGER PRIMARY KEY DEFAULT 1,
		prepared_by    TEXT DEFAULT '',
		prepared_title TEXT DEFAULT '',
		checked_by     TEXT DEFAULT '',
		checked_title  TEXT DEFAULT '',
		updated_at     TIMESTAMPTZ DEFAULT NOW()
	)`,
	`INSERT INTO app_settings (id) VALUES (1)
		ON CONFLICT (id) DO NOTHING`,
}

// EnsureSchema creates the billing tables, the period lookup index and the
// settings row when they are missing. It is safe to run on every start.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	conn, err := db.Connx(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	for _, stmt := range schemaStatements {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	return nil
}
