package export

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/etnz/kvitto"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// sheet names of the workbook.
const (
	SheetCosts      = "Costs"
	SheetQuantities = "Quantities"
	SheetPrices     = "Prices"
	SheetSummary    = "Summary"
	SheetTotals     = "Totals"
	SheetCharts     = "Charts"
)

// chart size in pixels, and the number of rows a chart spans on its sheet.
const (
	chartWidth  = 960
	chartHeight = 240
	chartRows   = 13
)

// WriteWorkbook writes an XLSX workbook with one sheet per table, the item
// summary, the monthly totals, and a Charts sheet holding the monthly
// totals chart followed by one cost chart for each of the first n cost rows.
func WriteWorkbook(w io.Writer, a *kvitto.Analytics, s *kvitto.Summary, totals []kvitto.MonthTotal, n int) error {
	f := excelize.NewFile()
	defer f.Close()

	// Replace default sheet with the first table.
	if err := f.SetSheetName(f.GetSheetName(0), SheetCosts); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	for _, sheet := range []string{SheetQuantities, SheetPrices, SheetSummary, SheetTotals, SheetCharts} {
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("failed to create sheet %q: %w", sheet, err)
		}
	}

	for sheet, t := range map[string]*kvitto.Table{SheetCosts: a.Costs, SheetQuantities: a.Quantities, SheetPrices: a.Prices} {
		if err := writeTable(f, sheet, t); err != nil {
			return err
		}
	}
	if err := writeSummary(f, s); err != nil {
		return err
	}
	if err := writeTotals(f, totals); err != nil {
		return err
	}
	charts, err := writeCharts(f, a.Costs, len(totals), n)
	if err != nil {
		return err
	}

	slog.Info("Writing workbook",
		slog.Int("items", a.Costs.Len()),
		slog.Int("months", len(a.Costs.Months())),
		slog.Int("charts", charts))
	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// cellValue returns v as a spreadsheet number, or nil for a blank cell.
func cellValue(v decimal.Decimal) any {
	if v.IsZero() {
		return nil
	}
	return v.InexactFloat64()
}

func nullValue(v decimal.NullDecimal) any {
	if !v.Valid {
		return nil
	}
	return v.Decimal.InexactFloat64()
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}

func writeTable(f *excelize.File, sheet string, t *kvitto.Table) error {
	header := []any{"Item"}
	for _, m := range t.Months() {
		header = append(header, m.String())
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	row := 2
	for item, values := range t.All() {
		cells := make([]any, 0, len(values)+1)
		cells = append(cells, item)
		for _, v := range values {
			cells = append(cells, cellValue(v))
		}
		if err := setRow(f, sheet, row, cells); err != nil {
			return err
		}
		row++
	}
	return f.SetColWidth(sheet, "A", "A", 32)
}

func writeSummary(f *excelize.File, s *kvitto.Summary) error {
	if err := setRow(f, SheetSummary, 1, []any{"Item", "Spent", "Units", "Avg Price", "Avg / Month"}); err != nil {
		return err
	}
	row := 2
	for is := range s.All() {
		cells := []any{
			is.Item,
			is.Spend.InexactFloat64(),
			is.Units.InexactFloat64(),
			nullValue(is.AvgPrice),
			nullValue(is.AvgMonthly),
		}
		if err := setRow(f, SheetSummary, row, cells); err != nil {
			return err
		}
		row++
	}
	return f.SetColWidth(SheetSummary, "A", "A", 32)
}

func writeTotals(f *excelize.File, totals []kvitto.MonthTotal) error {
	if err := setRow(f, SheetTotals, 1, []any{"Month", "Visits", "Spent"}); err != nil {
		return err
	}
	for i, mt := range totals {
		if err := setRow(f, SheetTotals, i+2, []any{mt.Month.String(), mt.Visits, mt.Value.InexactFloat64()}); err != nil {
			return err
		}
	}
	return nil
}

// writeCharts adds the line charts to the Charts sheet and returns how many
// were added. Row charts plot the first n rows of the costs sheet.
func writeCharts(f *excelize.File, costs *kvitto.Table, months, n int) (int, error) {
	charts := 0
	add := func(title string, series excelize.ChartSeries) error {
		cell, err := excelize.CoordinatesToCellName(1, 1+charts*chartRows)
		if err != nil {
			return err
		}
		if err := f.AddChart(SheetCharts, cell, &excelize.Chart{
			Type:         excelize.Line,
			Series:       []excelize.ChartSeries{series},
			Title:        []excelize.RichTextRun{{Text: title}},
			Legend:       excelize.ChartLegend{Position: "none"},
			Dimension:    excelize.ChartDimension{Width: chartWidth, Height: chartHeight},
			ShowBlanksAs: "zero",
		}); err != nil {
			return fmt.Errorf("failed to add chart %q: %w", title, err)
		}
		charts++
		return nil
	}

	if months > 0 {
		last := months + 1
		if err := add("Monthly Totals", excelize.ChartSeries{
			Name:       fmt.Sprintf("%s!$C$1", SheetTotals),
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", SheetTotals, last),
			Values:     fmt.Sprintf("%s!$C$2:$C$%d", SheetTotals, last),
		}); err != nil {
			return charts, err
		}
	}

	width := len(costs.Months())
	if width == 0 {
		return charts, nil
	}
	lastCol, err := excelize.ColumnNumberToName(width + 1)
	if err != nil {
		return charts, err
	}
	for i, item := range costs.Head(n).Items() {
		row := i + 2
		if err := add(item, excelize.ChartSeries{
			Name:       fmt.Sprintf("%s!$A$%d", SheetCosts, row),
			Categories: fmt.Sprintf("%s!$B$1:$%s$1", SheetCosts, lastCol),
			Values:     fmt.Sprintf("%s!$B$%d:$%s$%d", SheetCosts, row, lastCol, row),
		}); err != nil {
			return charts, err
		}
	}
	return charts, nil
}
