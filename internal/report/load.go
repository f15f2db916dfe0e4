package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/farxc/cesla-billing/internal/store"
	"github.com/go-gota/gota/dataframe"
	"golang.org/x/text/encoding/charmap"
)

var requiredImportColumns = []string{"category", "year", "month", "department", "amount"}

// RowError describes a CSV row that could not be turned into an entry.
// Line is the 1-based line in the file, header included.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// ReadEntries parses a billing spreadsheet export with the columns
// category, year, month, department, amount and an optional data column
// holding a JSON object. Rows that fail to parse are returned as RowErrors
// and skipped.
func ReadEntries(r io.Reader, enc Encoding, delimiter rune) ([]store.NewEntry, []RowError, error) {
	if enc == EncodingWindows1252 {
		r = charmap.Windows1252.NewDecoder().Reader(r)
	}

	df := dataframe.ReadCSV(r,
		dataframe.WithDelimiter(delimiter),
		dataframe.WithLazyQuotes(true),
		dataframe.DetectTypes(false),
	)
	if df.Err != nil {
		return nil, nil, fmt.Errorf("read CSV: %w", df.Err)
	}

	columns := make(map[string]bool, df.Ncol())
	for _, name := range df.Names() {
		columns[strings.ToLower(strings.TrimSpace(name))] = true
	}
	for _, name := range requiredImportColumns {
		if !columns[name] {
			return nil, nil, fmt.Errorf("missing column %q", name)
		}
	}

	records := df.Records()
	header := records[0]
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var entries []store.NewEntry
	var rowErrors []RowError

	for i, rec := range records[1:] {
		entry, err := parseImportRow(rec, index)
		if err != nil {
			rowErrors = append(rowErrors, RowError{Line: i + 2, Err: err})
			continue
		}
		entries = append(entries, entry)
	}

	return entries, rowErrors, nil
}

func parseImportRow(rec []string, index map[string]int) (store.NewEntry, error) {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(rec) {
			return ""
		}
		v := strings.TrimSpace(rec[i])
		if v == "NaN" {
			return ""
		}
		return v
	}

	entry := store.NewEntry{
		Category:   field("category"),
		Department: field("department"),
		Amount:     ParseLocalizedAmount(field("amount")),
	}
	if entry.Category == "" || entry.Department == "" {
		return store.NewEntry{}, fmt.Errorf("category and department required")
	}

	entry.Year = store.ParseFlexInt(field("year"))
	entry.Month = store.ParseFlexInt(field("month"))
	if _, ok := entry.Year.Int(); !ok {
		return store.NewEntry{}, fmt.Errorf("invalid year %q", field("year"))
	}
	if _, ok := entry.Month.Int(); !ok {
		return store.NewEntry{}, fmt.Errorf("invalid month %q", field("month"))
	}

	if data := field("data"); data != "" {
		if !json.Valid([]byte(data)) {
			return store.NewEntry{}, fmt.Errorf("data is not valid JSON")
		}
		entry.Data = store.JSON(data)
	}

	return entry, nil
}

// ParseLocalizedAmount accepts both 1234.56 and the spreadsheet form
// 1.234,56 where the comma is the decimal separator.
func ParseLocalizedAmount(s string) store.Amount {
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	return store.ParseAmount(s)
}
