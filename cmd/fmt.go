package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "formats the dataset file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `kvt fmt

  Formats the dataset file. This command reads all receipts and line items,
  sorts receipts by timestamp, drops repeated receipts, and writes them back
  in the canonical JSONL format, each receipt followed by its line items.

`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := DecodeDataset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load dataset: %v\n", err)
		return subcommands.ExitFailure
	}

	canonical := d.Canonical()
	if dropped := len(d.Receipts) - len(canonical.Receipts); dropped > 0 {
		fmt.Fprintf(os.Stderr, "Dropped %d repeated receipts.\n", dropped)
	}

	if err := EncodeDataset(canonical); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted dataset %q: %v\n", config.Data, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "✅ Successfully formatted %s.\n", config.Data)
	return subcommands.ExitSuccess
}
