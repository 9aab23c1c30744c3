// Package ica reads the receipt exports of the ICA store chain.
//
// ICA exports a customer's history as two files: "Butik kvitto" with one
// record per store visit, and "Butik kvittorader" with one record per
// purchased line. Both list records as `transactions` elements (XML) or
// objects under a `transactions` property (JSON), whose fields are:
//
//	receipts: transactionId, transactionTimestamp, transactionValue
//	lines:    transactionId, itemDesc, quantity, price
//
// Other fields (marketingName, vatAmount, paymentType, ...) are ignored.
// Records that cannot be used are dropped and logged at debug level.
package ica

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/etnz/kvitto"
	"github.com/shopspring/decimal"
)

// field names of the export.
const (
	fieldTransactionID = "transactionId"
	fieldTimestamp     = "transactionTimestamp"
	fieldValue         = "transactionValue"
	fieldDesc          = "itemDesc"
	fieldQuantity      = "quantity"
	fieldPrice         = "price"
)

// recordName is the element (or property) name holding records.
const recordName = "transactions"

var (
	// ErrMissingField is returned for a record without a required field.
	ErrMissingField = errors.New("missing field")
	// ErrUnknownFormat is returned for a file that is neither .xml nor .json.
	ErrUnknownFormat = errors.New("unknown export format")
)

// timestamp layouts, tried in order. Layouts without a zone are read in UTC
// so that the wall clock, and therefore the month, is kept.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	time.DateOnly,
}

// record is the flat set of fields of one exported record. Absent and empty
// fields are not distinguished.
type record map[string]string

func (r record) receipt() (kvitto.Receipt, error) {
	var rc kvitto.Receipt
	id := r[fieldTransactionID]
	if id == "" {
		return rc, fmt.Errorf("%w %s", ErrMissingField, fieldTransactionID)
	}
	rc.ID = kvitto.TransactionID(id)

	ts := r[fieldTimestamp]
	if ts == "" {
		return rc, fmt.Errorf("%w %s", ErrMissingField, fieldTimestamp)
	}
	t, err := parseTimestamp(ts)
	if err != nil {
		return rc, err
	}
	rc.Timestamp = t

	if v := r[fieldValue]; v != "" {
		if rc.Value, err = parseDecimal(v); err != nil {
			return rc, fmt.Errorf("invalid %s: %w", fieldValue, err)
		}
	}
	return rc, nil
}

func (r record) lineItem() (kvitto.LineItem, error) {
	var it kvitto.LineItem
	id := r[fieldTransactionID]
	if id == "" {
		return it, fmt.Errorf("%w %s", ErrMissingField, fieldTransactionID)
	}
	it.TransactionID = kvitto.TransactionID(id)
	it.Desc = r[fieldDesc]

	var err error
	if q := r[fieldQuantity]; q != "" {
		if it.Quantity, err = parseDecimal(q); err != nil {
			return it, fmt.Errorf("invalid %s: %w", fieldQuantity, err)
		}
	}

	p := r[fieldPrice]
	if p == "" {
		return it, fmt.Errorf("%w %s", ErrMissingField, fieldPrice)
	}
	if it.Price, err = parseDecimal(p); err != nil {
		return it, fmt.Errorf("invalid %s: %w", fieldPrice, err)
	}
	return it, nil
}

// parseDecimal parses an exported number. Swedish exports may use a decimal
// comma and spaces as thousands separator.
func parseDecimal(s string) (decimal.Decimal, error) {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\u00a0', '\u202f':
			return -1
		}
		return r
	}, s)
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	return decimal.NewFromString(s)
}

func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid %s %q", fieldTimestamp, s)
}

func toReceipts(source string, records []record) []kvitto.Receipt {
	out := make([]kvitto.Receipt, 0, len(records))
	for i, rec := range records {
		rc, err := rec.receipt()
		if err != nil {
			slog.Debug("skipping receipt", "source", source, "record", i, "error", err)
			continue
		}
		out = append(out, rc)
	}
	return out
}

func toLineItems(source string, records []record) []kvitto.LineItem {
	out := make([]kvitto.LineItem, 0, len(records))
	for i, rec := range records {
		it, err := rec.lineItem()
		if err != nil {
			slog.Debug("skipping line", "source", source, "record", i, "error", err)
			continue
		}
		out = append(out, it)
	}
	return out
}
