package cmd

import (
	"context"
	"flag"

	"github.com/etnz/kvitto/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	rangeFlags
	top int
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the lifetime summary of each item" }
func (*summaryCmd) Usage() string {
	return `kvt summary [-n <count>] [-from <date>] [-to <date>] [-p <period>]

  Displays, for each item, the money spent, the units bought, the average
  unit price and the average spend per month. Most expensive items first.

`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
	f.IntVar(&c.top, "n", config.Top, "Number of items to display, all of them if negative.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, status := c.load()
	if status != subcommands.ExitSuccess {
		return status
	}

	a := d.Analyze()
	logSkipped(a.Skipped)

	printMarkdown(renderer.SummaryMarkdown(a.Summary(), config.Currency, c.top))
	return subcommands.ExitSuccess
}
