package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/kvitto"
	"github.com/etnz/kvitto/export"
	"github.com/google/subcommands"
)

// exportTables are the values accepted by 'export -table'.
var exportTables = []string{"prices", "quantities", "costs", "summary", "totals"}

type exportCmd struct {
	rangeFlags
	output string
	table  string
	top    int
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the reports to CSV or XLSX" }
func (*exportCmd) Usage() string {
	return `kvt export -o <file.xlsx|file.csv> [-table <name>] [-n <charts>] [-from <date>] [-to <date>] [-p <period>]

  Exports the reports. The format is chosen by the output file extension:
  - .xlsx: a workbook with one sheet per table, the item summary, the monthly
    totals, and a sheet of charts (monthly totals and the costs of the first
    -n items).
  - .csv: the single table selected by -table (prices, quantities, costs,
    summary or totals).

`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
	f.StringVar(&c.output, "o", "", "Output file, .xlsx or .csv.")
	f.StringVar(&c.table, "table", "costs", "Table to export in CSV: "+strings.Join(exportTables, ", ")+".")
	f.IntVar(&c.top, "n", config.Top, "Number of item charts in the workbook.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.output == "" {
		fmt.Fprintln(os.Stderr, "Error: -o is required")
		return subcommands.ExitUsageError
	}
	ext := strings.ToLower(filepath.Ext(c.output))
	if ext != ".xlsx" && ext != ".csv" {
		fmt.Fprintf(os.Stderr, "Error: unsupported output format %q, use .xlsx or .csv\n", ext)
		return subcommands.ExitUsageError
	}

	d, status := c.load()
	if status != subcommands.ExitSuccess {
		return status
	}
	a := d.Analyze()
	logSkipped(a.Skipped)

	out, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if ext == ".xlsx" {
		err = export.WriteWorkbook(out, a, a.Summary(), kvitto.MonthlyTotals(d.Receipts), c.top)
	} else {
		err = writeCSV(out, c.table, d, a)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting to %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported to %s\n", c.output)
	return subcommands.ExitSuccess
}

// writeCSV writes the table named name.
func writeCSV(w io.Writer, name string, d *kvitto.Dataset, a *kvitto.Analytics) error {
	switch name {
	case "prices":
		return export.WriteCSV(w, a.Prices)
	case "quantities":
		return export.WriteCSV(w, a.Quantities)
	case "costs":
		return export.WriteCSV(w, a.Costs)
	case "summary":
		return export.WriteSummaryCSV(w, a.Summary())
	case "totals":
		return export.WriteTotalsCSV(w, kvitto.MonthlyTotals(d.Receipts))
	default:
		return fmt.Errorf("unknown table %q, want one of %s", name, strings.Join(exportTables, ", "))
	}
}
