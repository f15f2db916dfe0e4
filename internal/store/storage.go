package store

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type Storage struct {
	Entries interface {
		GetByPeriod(ctx context.Context, category string, year, month FlexInt) ([]Entry, error)
		GetByYear(ctx context.Context, category string, year FlexInt) ([]Entry, error)
		GetYearlyTotals(ctx context.Context, year FlexInt) (YearlyTotals, error)
		InsertEntry(ctx context.Context, entry *NewEntry) (int64, error)
		UpdateEntry(ctx context.Context, id FlexInt, update *EntryUpdate) (int64, error)
		DeleteEntry(ctx context.Context, id FlexInt) (int64, error)
	}

	Settings interface {
		GetSettings(ctx context.Context) (*Settings, error)
		SaveSettings(ctx context.Context, settings *SettingsUpdate) error
	}

	Health interface {
		Ping(ctx context.Context) error
	}
}

func NewStorage(db *sqlx.DB) *Storage {
	return &Storage{
		Entries:  &EntryStore{db: db},
		Settings: &SettingsStore{db: db},
		Health:   &HealthStore{db: db},
	}

}

type HealthStore struct {
	db *sqlx.DB
}

func (hs *HealthStore) Ping(ctx context.Context) error {
	return hs.db.PingContext(ctx)
}
