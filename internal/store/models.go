package store

import (
	"time"
)

// Entry represents a row of the 'billing_entries' table as served to clients.
// Amount is read back as float8 so it serialises as a JSON number.
type Entry struct {
	ID         int64   `db:"id" json:"id"`
	Category   string  `db:"category" json:"category"`
	Year       int     `db:"year" json:"year"`
	Month      int     `db:"month" json:"month"`
	Department string  `db:"department" json:"department"`
	Amount     float64 `db:"amount" json:"amount"`
	Data       JSON    `db:"data" json:"data"`
}

// NewEntry carries the columns written by an insert.
type NewEntry struct {
	Category   string
	Year       FlexInt
	Month      FlexInt
	Department string
	Amount     Amount
	Data       JSON
}

// EntryUpdate overwrites every mutable column of an entry. Category is
// fixed at creation. A nil Department binds NULL and is rejected by the
// NOT NULL constraint.
type EntryUpdate struct {
	Amount     Amount
	Data       JSON
	Department *string
	Year       FlexInt
	Month      FlexInt
}

// YearlyTotals maps a category to the sum of its amounts in one year.
type YearlyTotals map[string]float64

// Settings represents the singleton 'app_settings' row. Column names are
// exposed as-is.
type Settings struct {
	ID            int        `db:"id" json:"id"`
	PreparedBy    string     `db:"prepared_by" json:"prepared_by"`
	PreparedTitle string     `db:"prepared_title" json:"prepared_title"`
	CheckedBy     string     `db:"checked_by" json:"checked_by"`
	CheckedTitle  string     `db:"checked_title" json:"checked_title"`
	UpdatedAt     *time.Time `db:"updated_at" json:"updated_at"`
}

// SettingsUpdate is a full overwrite of the sign-off fields.
type SettingsUpdate struct {
	PreparedBy    string
	PreparedTitle string
	CheckedBy     string
	CheckedTitle  string
}
