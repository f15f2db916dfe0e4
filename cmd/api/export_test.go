package main

import (
	"net/http"
	"strings"
	"testing"

	"github.com/farxc/cesla-billing/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestExportYear(t *testing.T) {
	ta := newTestApp(t, "")
	ta.entries.On("GetByYear", mock.Anything, "utilities", store.IntOf(2024)).
		Return([]store.Entry{
			{ID: 1, Category: "utilities", Year: 2024, Month: 1, Department: "IT", Amount: 100},
			{ID: 2, Category: "utilities", Year: 2024, Month: 1, Department: "HR", Amount: 50},
		}, nil).Once()

	w := ta.do(http.MethodGet, "/api/entries/year/export?cat=utilities&year=2024", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="utilities-2024.csv"`, w.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "id,month,department,amount\n"))
	assert.Contains(t, w.Body.String(), "month,total\n1,150.00")
}

func TestExportYearValidation(t *testing.T) {
	ta := newTestApp(t, "")

	w := ta.do(http.MethodGet, "/api/entries/year/export?year=2024", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"cat, year required"}`, w.Body.String())

	w = ta.do(http.MethodGet, "/api/entries/year/export?cat=utilities&year=2024&encoding=ebcdic", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unsupported encoding")
}
