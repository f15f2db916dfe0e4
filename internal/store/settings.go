package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

const settingsID = 1

type SettingsStore struct {
	db *sqlx.DB
}

// GetSettings returns the singleton row, or nil when it does not exist.
func (ss *SettingsStore) GetSettings(ctx context.Context) (*Settings, error) {
	query := `
	SELECT
		id,
		COALESCE(prepared_by, '') AS prepared_by,
		COALESCE(prepared_title, '') AS prepared_title,
		COALESCE(checked_by, '') AS checked_by,
		COALESCE(checked_title, '') AS checked_title,
		updated_at
	FROM
		app_settings
	WHERE
		id = $1`

	var settings Settings
	if err := ss.db.GetContext(ctx, &settings, query, settingsID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &settings, nil
}

func (ss *SettingsStore) SaveSettings(ctx context.Context, settings *SettingsUpdate) error {
	query := `
	UPDATE app_settings
	SET
		prepared_by = $1,
		prepared_title = $2,
		checked_by = $3,
		checked_title = $4,
		updated_at = NOW()
	WHERE
		id = $5`

	_, err := ss.db.ExecContext(ctx, query,
		settings.PreparedBy,
		settings.PreparedTitle,
		settings.CheckedBy,
		settings.CheckedTitle,
		settingsID,
	)
	return err
}
