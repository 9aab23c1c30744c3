package cmd

import (
	"context"
	"flag"

	"github.com/etnz/kvitto"
	"github.com/etnz/kvitto/renderer"
	"github.com/google/subcommands"
)

type totalsCmd struct {
	rangeFlags
}

func (*totalsCmd) Name() string     { return "totals" }
func (*totalsCmd) Synopsis() string { return "display the money spent per month" }
func (*totalsCmd) Usage() string {
	return `kvt totals [-from <date>] [-to <date>] [-p <period>]

  Displays the number of store visits and the sum of receipt totals per month.

`
}

func (c *totalsCmd) SetFlags(f *flag.FlagSet) { c.rangeFlags.SetFlags(f) }

func (c *totalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, status := c.load()
	if status != subcommands.ExitSuccess {
		return status
	}
	printMarkdown(renderer.TotalsMarkdown(kvitto.MonthlyTotals(d.Receipts), config.Currency))
	return subcommands.ExitSuccess
}
