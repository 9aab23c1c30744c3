// Package export writes analytics to files other tools can open: CSV for
// scripts and XLSX workbooks with charts for spreadsheets.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/etnz/kvitto"
	"github.com/shopspring/decimal"
)

// WriteCSV writes t with a header row of months and one row per item.
func WriteCSV(w io.Writer, t *kvitto.Table) error {
	writer := csv.NewWriter(w)

	header := []string{"item"}
	for _, m := range t.Months() {
		header = append(header, m.String())
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	i := 0
	for item, values := range t.All() {
		record := make([]string, 0, len(values)+1)
		record = append(record, item)
		for _, v := range values {
			record = append(record, v.String())
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
		i++
	}
	writer.Flush()
	return writer.Error()
}

// WriteSummaryCSV writes one row per item summary. Undefined averages are
// written as empty fields.
func WriteSummaryCSV(w io.Writer, s *kvitto.Summary) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"item", "spend", "units", "avg_price", "avg_monthly"}); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	i := 0
	for is := range s.All() {
		record := []string{
			is.Item,
			is.Spend.String(),
			is.Units.String(),
			nullString(is.AvgPrice),
			nullString(is.AvgMonthly),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
		i++
	}
	writer.Flush()
	return writer.Error()
}

// WriteTotalsCSV writes one row per month.
func WriteTotalsCSV(w io.Writer, totals []kvitto.MonthTotal) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"month", "visits", "value"}); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	for i, mt := range totals {
		if err := writer.Write([]string{mt.Month.String(), strconv.Itoa(mt.Visits), mt.Value.String()}); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func nullString(v decimal.NullDecimal) string {
	if !v.Valid {
		return ""
	}
	return v.Decimal.Round(4).String()
}
