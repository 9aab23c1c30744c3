package kvitto

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// this file contains the dataset import/export format.
// It should remain human readable, line oriented and easy to merge by hand.

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrUnknownRecord is returned when a line has an unknown 'type'.
var ErrUnknownRecord = errors.New("unknown record type")

// record types of the JSONL format.
const (
	typeReceipt = "receipt"
	typeItem    = "item"
)

type jreceipt struct {
	Type      string          `json:"type"`
	ID        TransactionID   `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Value     decimal.Decimal `json:"value"`
}

type jitem struct {
	Type     string          `json:"type"`
	ID       TransactionID   `json:"id"`
	Desc     string          `json:"desc"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// DecodeDataset reads a dataset in the JSONL format.
//
// Each non blank line is a JSON object whose property 'type' is either
// "receipt" (properties 'id', 'timestamp', 'value') or "item" (properties
// 'id', 'desc', 'quantity', 'price'). Numbers are exact decimals.
func DecodeDataset(r io.Reader) (*Dataset, error) {
	d := new(Dataset)
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var identifier struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(line, &identifier); err != nil {
			return nil, fmt.Errorf("line %d: could not identify record %q: %w", n, string(line), err)
		}

		switch identifier.Type {
		case typeReceipt:
			var jr jreceipt
			if err := json.Unmarshal(line, &jr); err != nil {
				return nil, fmt.Errorf("line %d: cannot parse receipt: %w", n, err)
			}
			d.Receipts = append(d.Receipts, Receipt{ID: jr.ID, Timestamp: jr.Timestamp, Value: jr.Value})
		case typeItem:
			var ji jitem
			if err := json.Unmarshal(line, &ji); err != nil {
				return nil, fmt.Errorf("line %d: cannot parse item: %w", n, err)
			}
			d.Items = append(d.Items, LineItem{TransactionID: ji.ID, Desc: ji.Desc, Quantity: ji.Quantity, Price: ji.Price})
		default:
			return nil, fmt.Errorf("line %d: %w %q", n, ErrUnknownRecord, identifier.Type)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read dataset: %w", err)
	}
	return d, nil
}

// EncodeDataset writes d in the JSONL format.
//
// Each receipt is followed by its items, in their order. Items whose receipt
// is not in d are written last.
func EncodeDataset(w io.Writer, d *Dataset) error {
	byTx := make(map[TransactionID][]LineItem)
	var ids []TransactionID
	for _, it := range d.Items {
		if _, ok := byTx[it.TransactionID]; !ok {
			ids = append(ids, it.TransactionID)
		}
		byTx[it.TransactionID] = append(byTx[it.TransactionID], it)
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	writeItems := func(items []LineItem) error {
		for _, it := range items {
			ji := jitem{Type: typeItem, ID: it.TransactionID, Desc: it.Desc, Quantity: it.Quantity, Price: it.Price}
			if err := enc.Encode(ji); err != nil {
				return fmt.Errorf("cannot write item of %q: %w", it.TransactionID, err)
			}
		}
		return nil
	}

	written := make(map[TransactionID]bool)
	for _, r := range d.Receipts {
		jr := jreceipt{Type: typeReceipt, ID: r.ID, Timestamp: r.Timestamp, Value: r.Value}
		if err := enc.Encode(jr); err != nil {
			return fmt.Errorf("cannot write receipt %q: %w", r.ID, err)
		}
		if written[r.ID] {
			continue
		}
		written[r.ID] = true
		if err := writeItems(byTx[r.ID]); err != nil {
			return err
		}
	}
	for _, id := range ids {
		if written[id] {
			continue
		}
		if err := writeItems(byTx[id]); err != nil {
			return err
		}
	}
	return nil
}
