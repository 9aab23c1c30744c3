package ica

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/etnz/kvitto"
	"golang.org/x/sync/errgroup"
)

// Load reads receipt and line item export files concurrently.
//
// The format of each file is chosen by its extension (.xml or .json). Records
// are concatenated in file order and receipts are sorted chronologically. The
// first file that cannot be read cancels the others.
func Load(ctx context.Context, receiptFiles, itemFiles []string) (*kvitto.Dataset, error) {
	receipts := make([][]kvitto.Receipt, len(receiptFiles))
	items := make([][]kvitto.LineItem, len(itemFiles))

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range receiptFiles {
		g.Go(func() error {
			rs, err := readFile(ctx, name, ReadReceipts, ReadReceiptsJSON)
			receipts[i] = rs
			return err
		})
	}
	for i, name := range itemFiles {
		g.Go(func() error {
			its, err := readFile(ctx, name, ReadLineItems, ReadLineItemsJSON)
			items[i] = its
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	d := &kvitto.Dataset{
		Receipts: slices.Concat(receipts...),
		Items:    slices.Concat(items...),
	}
	d.Sort()
	return d, nil
}

// readFile opens name and decodes it with the reader matching its extension.
func readFile[T any](ctx context.Context, name string, fromXML, fromJSON func(io.Reader) ([]T, error)) ([]T, error) {
	var read func(io.Reader) ([]T, error)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xml":
		read = fromXML
	case ".json":
		read = fromJSON
	default:
		return nil, fmt.Errorf("%s: %w", name, ErrUnknownFormat)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("cannot open export: %w", err)
	}
	defer f.Close()

	records, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	slog.Info("export loaded", "file", name, "records", len(records))
	return records, nil
}
