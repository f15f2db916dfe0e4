package main

import (
	"net/http"

	"github.com/farxc/cesla-billing/internal/response"
	"github.com/farxc/cesla-billing/internal/store"
	"github.com/go-chi/chi/v5"
)

type createEntryInput struct {
	Category   store.Text     `json:"category" validate:"required"`
	Year       *store.FlexInt `json:"year" validate:"required"`
	Month      *store.FlexInt `json:"month" validate:"required"`
	Department store.Text     `json:"department" validate:"required"`
	Amount     store.Amount   `json:"amount"`
	Data       store.JSON     `json:"data"`
}

type updateEntryInput struct {
	Amount     store.Amount  `json:"amount"`
	Data       store.JSON    `json:"data"`
	Department *store.Text   `json:"department"`
	Year       store.FlexInt `json:"year"`
	Month      store.FlexInt `json:"month"`
}

func (app *application) handleGetEntries(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	cat := query.Get("cat")

	if cat == "" || !query.Has("year") || !query.Has("month") {
		writeJSONError(w, http.StatusBadRequest, "cat, year, month required")
		return
	}

	year := store.ParseFlexInt(query.Get("year"))
	month := store.ParseFlexInt(query.Get("month"))

	entries, err := app.store.Entries.GetByPeriod(r.Context(), cat, year, month)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, entries); err != nil {
		app.logger.Error("API", "failed to write response: %v", err)
	}
}

func (app *application) handleGetYearlyTotals(w http.ResponseWriter, r *http.Request) {
	yearParam := r.URL.Query().Get("year")
	if yearParam == "" {
		writeJSONError(w, http.StatusBadRequest, "year required")
		return
	}

	totals, err := app.store.Entries.GetYearlyTotals(r.Context(), store.ParseFlexInt(yearParam))
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, totals); err != nil {
		app.logger.Error("API", "failed to write response: %v", err)
	}
}

func (app *application) handleGetEntriesForYear(w http.ResponseWriter, r *http.Request) {
	cat := r.URL.Query().Get("cat")
	yearParam := r.URL.Query().Get("year")

	if cat == "" || yearParam == "" {
		writeJSONError(w, http.StatusBadRequest, "cat, year required")
		return
	}

	entries, err := app.store.Entries.GetByYear(r.Context(), cat, store.ParseFlexInt(yearParam))
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, entries); err != nil {
		app.logger.Error("API", "failed to write response: %v", err)
	}
}

func (app *application) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	var input createEntryInput

	if err := readJSON(w, r, &input); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := app.validate.Struct(input); err != nil {
		app.logger.Debug("API", "create entry rejected, missing %v", missingFields(err))
		writeJSONError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	entry := &store.NewEntry{
		Category:   input.Category.String(),
		Year:       *input.Year,
		Month:      *input.Month,
		Department: input.Department.String(),
		Amount:     input.Amount,
		Data:       input.Data,
	}

	id, err := app.store.Entries.InsertEntry(r.Context(), entry)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, &response.CreatedResponse{Success: true, ID: id}); err != nil {
		app.logger.Error("API", "failed to write response: %v", err)
	}
}

func (app *application) handleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	id := store.ParseFlexInt(chi.URLParam(r, "id"))

	var input updateEntryInput
	if err := readJSON(w, r, &input); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	update := &store.EntryUpdate{
		Amount: input.Amount,
		Data:   input.Data,
		Year:   input.Year,
		Month:  input.Month,
	}
	if input.Department != nil {
		department := input.Department.String()
		update.Department = &department
	}

	affected, err := app.store.Entries.UpdateEntry(r.Context(), id, update)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.logger.Debug("Entries", "updated entry: id=%s rows=%d", id, affected)

	if err := writeJSON(w, http.StatusOK, &response.SuccessResponse{Success: true}); err != nil {
		app.logger.Error("API", "failed to write response: %v", err)
	}
}

func (app *application) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	id := store.ParseFlexInt(chi.URLParam(r, "id"))

	affected, err := app.store.Entries.DeleteEntry(r.Context(), id)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.logger.Debug("Entries", "deleted entry: id=%s rows=%d", id, affected)

	if err := writeJSON(w, http.StatusOK, &response.SuccessResponse{Success: true}); err != nil {
		app.logger.Error("API", "failed to write response: %v", err)
	}
}
