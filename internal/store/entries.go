package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type EntryStore struct {
	db *sqlx.DB
}

func (es *EntryStore) GetByPeriod(ctx context.Context, category string, year, month FlexInt) ([]Entry, error) {
	query := `
	SELECT
		id,
		category,
		year,
		month,
		department,
		amount::float AS amount,
		data
	FROM
		billing_entries
	WHERE
		category = $1 AND year = $2 AND month = $3
	ORDER BY
		department, id`

	entries := []Entry{}
	if err := es.db.SelectContext(ctx, &entries, query, category, year, month); err != nil {
		return nil, err
	}

	return entries, nil
}

func (es *EntryStore) GetByYear(ctx context.Context, category string, year FlexInt) ([]Entry, error) {
	query := `
	SELECT
		id,
		category,
		year,
		month,
		department,
		amount::float AS amount,
		data
	FROM
		billing_entries
	WHERE
		category = $1 AND year = $2
	ORDER BY
		month, department, id`

	entries := []Entry{}
	if err := es.db.SelectContext(ctx, &entries, query, category, year); err != nil {
		return nil, err
	}

	return entries, nil
}

func (es *EntryStore) GetYearlyTotals(ctx context.Context, year FlexInt) (YearlyTotals, error) {
	query := `
	SELECT
		category,
		SUM(amount)::float AS total
	FROM
		billing_entries
	WHERE
		year = $1
	GROUP BY
		category`

	rows, err := es.db.QueryxContext(ctx, query, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(YearlyTotals)

	for rows.Next() {
		var category string
		var total sql.NullFloat64

		if err := rows.Scan(&category, &total); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		totals[category] = total.Float64
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return totals, nil
}

func (es *EntryStore) InsertEntry(ctx context.Context, entry *NewEntry) (int64, error) {
	query := `
	INSERT INTO billing_entries (
		category,
		year,
		month,
		department,
		amount,
		data
	) VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id`

	var id int64
	err := es.db.QueryRowxContext(ctx, query,
		entry.Category,
		entry.Year,
		entry.Month,
		entry.Department,
		entry.Amount,
		entry.Data,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// UpdateEntry overwrites the row with the given id and reports how many rows
// changed. Zero rows affected is not an error.
func (es *EntryStore) UpdateEntry(ctx context.Context, id FlexInt, update *EntryUpdate) (int64, error) {
	query := `
	UPDATE billing_entries
	SET
		amount = $1,
		data = $2,
		department = $3,
		year = $4,
		month = $5,
		updated_at = NOW()
	WHERE
		id = $6`

	res, err := es.db.ExecContext(ctx, query,
		update.Amount,
		update.Data,
		update.Department,
		update.Year,
		update.Month,
		id,
	)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

// DeleteEntry removes the row with the given id, if any.
func (es *EntryStore) DeleteEntry(ctx context.Context, id FlexInt) (int64, error) {
	res, err := es.db.ExecContext(ctx, `DELETE FROM billing_entries WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}
