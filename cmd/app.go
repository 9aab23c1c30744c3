// Package cmd implements the kvt CLI application to analyze grocery receipts.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/kvitto"
	"github.com/etnz/kvitto/date"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&importCmd{}, "dataset")
	c.Register(&fmtCmd{}, "dataset")

	c.Register(newPricesCmd(), "reports")
	c.Register(newQuantitiesCmd(), "reports")
	c.Register(newCostsCmd(), "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&totalsCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataFile = flag.String("data", "", "Path to the dataset file (JSONL). Defaults to $KVT_DATA, then receipts.jsonl")
var currency = flag.String("currency", "", "Currency code used to display amounts. Defaults to $KVT_CURRENCY, then SEK")

// Verbose enables debug logging.
var Verbose = flag.Bool("v", false, "Verbose logging. Defaults to $KVT_VERBOSE")

// config is the resolved configuration, see Setup.
var config = &Config{Data: "receipts.jsonl", Currency: "SEK", Top: 10}

// Setup resolves the configuration from the environment and the global flags,
// and installs the default logger. It must be called after the global flags
// are parsed.
func Setup() error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	if *dataFile != "" {
		cfg.Data = *dataFile
	}
	if *currency != "" {
		cfg.Currency = strings.ToUpper(*currency)
	}
	if *Verbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	config = cfg
	slog.SetDefault(cfg.Logger())
	return nil
}

// DecodeDataset reads the dataset file. A missing file is an empty dataset.
func DecodeDataset() (*kvitto.Dataset, error) {
	f, err := os.Open(config.Data)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Warn("dataset does not exist, using an empty dataset instead", "file", config.Data)
		return new(kvitto.Dataset), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open dataset: %w", err)
	}
	defer f.Close()

	d, err := kvitto.DecodeDataset(f)
	if err != nil {
		return nil, fmt.Errorf("cannot decode dataset %q: %w", config.Data, err)
	}
	slog.Debug("dataset loaded", "file", config.Data, "receipts", len(d.Receipts), "items", len(d.Items))
	return d, nil
}

// EncodeDataset replaces the dataset file with d.
func EncodeDataset(d *kvitto.Dataset) error {
	tmp, err := os.CreateTemp(filepath.Dir(config.Data), ".kvt-*.jsonl")
	if err != nil {
		return fmt.Errorf("cannot create dataset: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := kvitto.EncodeDataset(tmp, d); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot encode dataset %q: %w", config.Data, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot write dataset %q: %w", config.Data, err)
	}
	if err := os.Rename(tmp.Name(), config.Data); err != nil {
		return fmt.Errorf("cannot replace dataset %q: %w", config.Data, err)
	}
	return nil
}

// rangeFlags are the flags of the commands reporting on a date range.
type rangeFlags struct {
	from, to, period string
}

func (r *rangeFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.from, "from", "", "First day of the report (inclusive). See 'kvt topic dates' for supported formats.")
	f.StringVar(&r.to, "to", "", "Last day of the report (inclusive).")
	f.StringVar(&r.period, "p", "", "Report on the calendar period (day, week, month, quarter, year) containing -to, or today.")
}

// Range returns the date range selected by the flags, open on sides that are not set.
func (r *rangeFlags) Range() (date.Range, error) {
	var rg date.Range
	var err error
	if r.period != "" {
		p, err := date.ParsePeriod(r.period)
		if err != nil {
			return rg, err
		}
		on := date.Today()
		if r.to != "" {
			if on, err = date.Parse(r.to); err != nil {
				return rg, fmt.Errorf("invalid -to: %w", err)
			}
		}
		return date.NewRange(on, p), nil
	}
	if r.from != "" {
		if rg.From, err = date.Parse(r.from); err != nil {
			return rg, fmt.Errorf("invalid -from: %w", err)
		}
	}
	if r.to != "" {
		if rg.To, err = date.Parse(r.to); err != nil {
			return rg, fmt.Errorf("invalid -to: %w", err)
		}
	}
	return rg, nil
}

// load decodes the dataset and restricts it to the range of the flags.
func (r *rangeFlags) load() (*kvitto.Dataset, subcommands.ExitStatus) {
	rg, err := r.Range()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing range: %v\n", err)
		return nil, subcommands.ExitUsageError
	}
	d, err := DecodeDataset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dataset: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	if !rg.IsZero() {
		slog.Debug("restricting dataset", "range", rg.String())
	}
	return d.Between(rg), subcommands.ExitSuccess
}

// logSkipped reports the records an aggregation ignored.
func logSkipped(s kvitto.Skipped) {
	if s.Total() == 0 {
		return
	}
	slog.Info("records skipped", "lines", s.Lines, "receipts", s.Receipts, "orphans", s.Orphans)
}

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}
