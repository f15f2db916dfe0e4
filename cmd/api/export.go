package main

import (
	"bytes"
	"fmt"
	"net/http"
	"regexp"
	"strconv"

	"github.com/farxc/cesla-billing/internal/report"
	"github.com/farxc/cesla-billing/internal/store"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// handleExportYear renders the full-year report of a category as CSV.
func (app *application) handleExportYear(w http.ResponseWriter, r *http.Request) {
	cat := r.URL.Query().Get("cat")
	yearParam := r.URL.Query().Get("year")

	if cat == "" || yearParam == "" {
		writeJSONError(w, http.StatusBadRequest, "cat, year required")
		return
	}

	enc, err := report.ParseEncoding(r.URL.Query().Get("encoding"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	year := store.ParseFlexInt(yearParam)
	entries, err := app.store.Entries.GetByYear(r.Context(), cat, year)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, entries, enc); err != nil {
		app.serverError(w, r, err)
		return
	}

	filename := fmt.Sprintf("%s-%s.csv", unsafeFilenameChars.ReplaceAllString(cat, "_"), year)

	w.Header().Set("Content-Type", "text/csv; charset="+string(enc))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)

	if _, err := buf.WriteTo(w); err != nil {
		app.logger.Error("API", "failed to write export: %v", err)
	}
}
