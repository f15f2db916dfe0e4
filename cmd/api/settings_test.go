package main

import (
	"net/http"
	"testing"
	"time"

	"github.com/farxc/cesla-billing/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetSettings(t *testing.T) {
	ta := newTestApp(t, "")
	updated := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	ta.settings.On("GetSettings", mock.Anything).Return(&store.Settings{
		ID:            1,
		PreparedBy:    "Ana Cruz",
		PreparedTitle: "Accountant",
		UpdatedAt:     &updated,
	}, nil).Once()

	w := ta.do(http.MethodGet, "/api/settings", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"id": 1,
		"prepared_by": "Ana Cruz",
		"prepared_title": "Accountant",
		"checked_by": "",
		"checked_title": "",
		"updated_at": "2024-03-01T08:00:00Z"
	}`, w.Body.String())
}

func TestGetSettingsMissingRow(t *testing.T) {
	ta := newTestApp(t, "")
	ta.settings.On("GetSettings", mock.Anything).Return(nil, nil).Once()

	w := ta.do(http.MethodGet, "/api/settings", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())
}

func TestSaveSettingsIsFullOverwrite(t *testing.T) {
	ta := newTestApp(t, "")
	ta.settings.On("SaveSettings", mock.Anything, &store.SettingsUpdate{
		PreparedBy: "Ana Cruz",
		CheckedBy:  "Ben Ortiz",
	}).Return(nil).Once()

	w := ta.do(http.MethodPost, "/api/settings", `{"preparedBy":"Ana Cruz","checkedBy":"Ben Ortiz"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
}

func TestSaveSettingsEmptyBody(t *testing.T) {
	ta := newTestApp(t, "")
	ta.settings.On("SaveSettings", mock.Anything, &store.SettingsUpdate{}).Return(nil).Once()

	w := ta.do(http.MethodPost, "/api/settings", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSaveSettingsAcceptsNonStringValues(t *testing.T) {
	ta := newTestApp(t, "")
	ta.settings.On("SaveSettings", mock.Anything, &store.SettingsUpdate{
		PreparedBy:    "5",
		PreparedTitle: "true",
		CheckedBy:     "",
		CheckedTitle:  "",
	}).Return(nil).Once()

	w := ta.do(http.MethodPost, "/api/settings",
		`{"preparedBy":5,"preparedTitle":true,"checkedBy":0,"checkedTitle":false}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
}
