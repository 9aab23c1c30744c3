package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/kvitto"
	"github.com/etnz/kvitto/renderer"
	"github.com/google/subcommands"
)

// tableCmd displays one of the monthly tables. The prices, quantities and
// costs commands only differ by the table they pick.
type tableCmd struct {
	name     string
	synopsis string
	title    string
	money    bool // amounts are formatted in the configured currency
	total    bool // rows end with their sum
	pick     func(*kvitto.Analytics) *kvitto.Table

	rangeFlags
	top int
}

func newPricesCmd() *tableCmd {
	return &tableCmd{
		name:     "prices",
		synopsis: "display the monthly unit price of each item",
		title:    "Monthly Prices",
		money:    true,
		pick:     func(a *kvitto.Analytics) *kvitto.Table { return a.Prices },
	}
}

func newQuantitiesCmd() *tableCmd {
	return &tableCmd{
		name:     "quantities",
		synopsis: "display the monthly quantity bought of each item",
		title:    "Monthly Quantities",
		total:    true,
		pick:     func(a *kvitto.Analytics) *kvitto.Table { return a.Quantities },
	}
}

func newCostsCmd() *tableCmd {
	return &tableCmd{
		name:     "costs",
		synopsis: "display the monthly money spent on each item",
		title:    "Monthly Costs",
		money:    true,
		total:    true,
		pick:     func(a *kvitto.Analytics) *kvitto.Table { return a.Costs },
	}
}

func (c *tableCmd) Name() string     { return c.name }
func (c *tableCmd) Synopsis() string { return c.synopsis }
func (c *tableCmd) Usage() string {
	return fmt.Sprintf(`kvt %s [-n <count>] [-from <date>] [-to <date>] [-p <period>]

  Displays the %s table: one row per item, one column per month.
  Items bought in the most months come first.

`, c.name, c.title)
}

func (c *tableCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
	f.IntVar(&c.top, "n", config.Top, "Number of items to display, all of them if negative.")
}

func (c *tableCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, status := c.load()
	if status != subcommands.ExitSuccess {
		return status
	}

	a := d.Analyze()
	logSkipped(a.Skipped)

	code := ""
	if c.money {
		code = config.Currency
	}
	printMarkdown(renderer.TableMarkdown(c.title, c.pick(a), code, c.top, c.total))
	return subcommands.ExitSuccess
}
