// Package report assembles the full-year billing report of one category and
// renders it as CSV for printing or spreadsheet import.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/farxc/cesla-billing/internal/store"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type Encoding string

const (
	EncodingUTF8        Encoding = "utf-8"
	EncodingWindows1252 Encoding = "windows-1252"
)

// ParseEncoding accepts the common spellings of the supported encodings.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "utf-8", "utf8":
		return EncodingUTF8, nil
	case "windows-1252", "cp1252", "latin1":
		return EncodingWindows1252, nil
	}
	return "", fmt.Errorf("unsupported encoding %q", s)
}

// YearFrame loads entries into a dataframe with columns id, month,
// department and amount, keeping the order of the input.
func YearFrame(entries []store.Entry) dataframe.DataFrame {
	ids := make([]int, len(entries))
	months := make([]int, len(entries))
	departments := make([]string, len(entries))
	amounts := make([]float64, len(entries))

	for i, e := range entries {
		ids[i] = int(e.ID)
		months[i] = e.Month
		departments[i] = e.Department
		amounts[i] = e.Amount
	}

	return dataframe.New(
		series.New(ids, series.Int, "id"),
		series.New(months, series.Int, "month"),
		series.New(departments, series.String, "department"),
		series.New(amounts, series.Float, "amount"),
	)
}

// MonthlyTotals sums the amount column per month, ordered by month.
func MonthlyTotals(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	if df.Nrow() == 0 {
		return dataframe.New(
			series.New([]int{}, series.Int, "month"),
			series.New([]float64{}, series.Float, "total"),
		), nil
	}

	totals := df.GroupBy("month").
		Aggregation([]dataframe.AggregationType{dataframe.Aggregation_SUM}, []string{"amount"})
	if totals.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("aggregate monthly totals: %w", totals.Err)
	}

	// the aggregation infers column types, so rebuild with fixed ones
	monthValues := totals.Col("month").Float()
	months := make([]int, len(monthValues))
	for i, m := range monthValues {
		months[i] = int(m)
	}

	sorted := dataframe.New(
		series.New(months, series.Int, "month"),
		series.New(totals.Col("amount_SUM").Float(), series.Float, "total"),
	).Arrange(dataframe.Sort("month"))
	if sorted.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("sort monthly totals: %w", sorted.Err)
	}
	return sorted, nil
}

func formatMoney(df dataframe.DataFrame, col string) dataframe.DataFrame {
	values := df.Col(col).Float()
	formatted := make([]string, len(values))
	for i, v := range values {
		formatted[i] = fmt.Sprintf("%.2f", v)
	}
	return df.Mutate(series.New(formatted, series.String, col))
}

// WriteCSV writes the entries table, a blank line and the monthly totals
// table to w in the requested encoding.
func WriteCSV(w io.Writer, entries []store.Entry, enc Encoding) error {
	if enc == EncodingWindows1252 {
		ew := transform.NewWriter(w, encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder()))
		if err := writeCSV(ew, entries); err != nil {
			return err
		}
		return ew.Close()
	}
	return writeCSV(w, entries)
}

func writeCSV(w io.Writer, entries []store.Entry) error {
	df := YearFrame(entries)
	totals, err := MonthlyTotals(df)
	if err != nil {
		return err
	}

	if err := formatMoney(df, "amount").WriteCSV(w); err != nil {
		return fmt.Errorf("error writing CSV: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	if err := formatMoney(totals, "total").WriteCSV(w); err != nil {
		return fmt.Errorf("error writing CSV: %w", err)
	}

	return nil
}
