package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var settingsColumns = []string{"id", "prepared_by", "prepared_title", "checked_by", "checked_title", "updated_at"}

func TestGetSettings(t *testing.T) {
	s, mock := newMockStorage(t)
	updated := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`(?s)FROM\s+app_settings\s+WHERE\s+id = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(settingsColumns).
			AddRow(int64(1), "Ana Cruz", "Accountant", "", "", updated))

	settings, err := s.Settings.GetSettings(context.Background())
	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, "Ana Cruz", settings.PreparedBy)
	assert.Equal(t, "Accountant", settings.PreparedTitle)
	assert.Equal(t, "", settings.CheckedBy)
	require.NotNil(t, settings.UpdatedAt)
	assert.True(t, updated.Equal(*settings.UpdatedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSettingsMissingRow(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery(`FROM\s+app_settings`).
		WithArgs(1).
		WillReturnError(sql.ErrNoRows)

	settings, err := s.Settings.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Nil(t, settings)
}

func TestGetSettingsError(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery(`FROM\s+app_settings`).
		WithArgs(1).
		WillReturnError(errors.New(`pq: relation "app_settings" does not exist`))

	_, err := s.Settings.GetSettings(context.Background())
	assert.ErrorContains(t, err, "does not exist")
}

func TestSaveSettingsOverwritesAllFields(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectExec(`(?s)UPDATE app_settings\s+SET.+updated_at = NOW\(\)\s+WHERE\s+id = \$5`).
		WithArgs("Ana Cruz", "", "", "", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.Settings.SaveSettings(context.Background(), &SettingsUpdate{PreparedBy: "Ana Cruz"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
