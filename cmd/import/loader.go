package main

import (
	"context"

	"github.com/farxc/cesla-billing/internal/logger"
	"github.com/farxc/cesla-billing/internal/store"
)

type entryInserter interface {
	InsertEntry(ctx context.Context, entry *store.NewEntry) (int64, error)
}

// loadEntries inserts each entry on its own and returns how many made it.
// A failed row is logged and skipped.
func loadEntries(ctx context.Context, entries entryInserter, rows []store.NewEntry, appLogger *logger.Logger) int {
	const component = "Import"

	inserted := 0
	for i := range rows {
		if ctx.Err() != nil {
			appLogger.Warn(component, "Import interrupted: remaining=%d error=%v", len(rows)-i, ctx.Err())
			break
		}

		id, err := entries.InsertEntry(ctx, &rows[i])
		if err != nil {
			appLogger.Warn(component, "Failed to insert entry: category=%s period=%s-%s department=%s error=%v",
				rows[i].Category, rows[i].Year, rows[i].Month, rows[i].Department, err)
			continue
		}
		inserted++
		appLogger.Debug(component, "Inserted entry: id=%d", id)
	}
	return inserted
}
