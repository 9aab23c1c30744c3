package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/kvitto/ica"
	"github.com/google/subcommands"
)

type importCmd struct {
	receipts stringList
	items    stringList
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import ICA receipt exports into the dataset" }
func (*importCmd) Usage() string {
	return `kvt import -r <receipts> [-r <receipts>...] -i <items> [-i <items>...]

  Reads ICA exports ("Butik kvitto" for receipts, "Butik kvittorader" for
  line items, in .xml or .json format) and merges them into the dataset.
  Receipts already in the dataset are ignored, so importing the same export
  twice is harmless.

Usage Examples:
$ kvt import -r "Butik kvitto.xml" -i "Butik kvittorader.xml"

`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.receipts, "r", "Receipts export file (repeatable).")
	f.Var(&c.items, "i", "Line items export file (repeatable).")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if len(c.receipts) == 0 && len(c.items) == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one -r or -i file is required")
		return subcommands.ExitUsageError
	}

	exported, err := ica.Load(ctx, c.receipts, c.items)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading exports: %v\n", err)
		return subcommands.ExitFailure
	}

	d, err := DecodeDataset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dataset: %v\n", err)
		return subcommands.ExitFailure
	}
	receipts, items := d.Merge(exported)

	if err := EncodeDataset(d); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving dataset: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d receipts and %d line items into %s\n", receipts, items, config.Data)
	return subcommands.ExitSuccess
}
