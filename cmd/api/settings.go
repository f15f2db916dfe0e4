package main

import (
	"net/http"

	"github.com/farxc/cesla-billing/internal/response"
	"github.com/farxc/cesla-billing/internal/store"
)

type saveSettingsInput struct {
	PreparedBy    store.Text `json:"preparedBy"`
	PreparedTitle store.Text `json:"preparedTitle"`
	CheckedBy     store.Text `json:"checkedBy"`
	CheckedTitle  store.Text `json:"checkedTitle"`
}

func (app *application) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := app.store.Settings.GetSettings(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	var data any = struct{}{}
	if settings != nil {
		data = settings
	}

	if err := writeJSON(w, http.StatusOK, data); err != nil {
		app.logger.Error("API", "failed to write response: %v", err)
	}
}

// handleSaveSettings overwrites all four fields; absent or falsy ones become empty.
func (app *application) handleSaveSettings(w http.ResponseWriter, r *http.Request) {
	var input saveSettingsInput
	if err := readJSON(w, r, &input); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	err := app.store.Settings.SaveSettings(r.Context(), &store.SettingsUpdate{
		PreparedBy:    input.PreparedBy.OrEmpty(),
		PreparedTitle: input.PreparedTitle.OrEmpty(),
		CheckedBy:     input.CheckedBy.OrEmpty(),
		CheckedTitle:  input.CheckedTitle.OrEmpty(),
	})
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, &response.SuccessResponse{Success: true}); err != nil {
		app.logger.Error("API", "failed to write response: %v", err)
	}
}
