package ica

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/kvitto"
)

// recordsPath selects the records of a JSON export, wherever they are nested.
const recordsPath = "$.." + recordName

// ReadReceiptsJSON reads receipts from a JSON export.
func ReadReceiptsJSON(r io.Reader) ([]kvitto.Receipt, error) {
	records, err := readJSON(r)
	if err != nil {
		return nil, err
	}
	return toReceipts("json", records), nil
}

// ReadLineItemsJSON reads line items from a JSON export.
func ReadLineItemsJSON(r io.Reader) ([]kvitto.LineItem, error) {
	records, err := readJSON(r)
	if err != nil {
		return nil, err
	}
	return toLineItems("json", records), nil
}

// readJSON returns the objects found under every `transactions` property.
// The property may hold one object or a list of objects.
func readJSON(r io.Reader) ([]record, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var jobj any
	if err := dec.Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot parse json export: %w", err)
	}

	jval, err := jsonpath.Get(recordsPath, jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot select %q in json export: %w", recordsPath, err)
	}
	// a recursive descent always returns the list of matches.
	matches, _ := jval.([]any)

	var records []record
	var add func(v any)
	add = func(v any) {
		switch v := v.(type) {
		case map[string]any:
			records = append(records, toRecord(v))
		case []any:
			for _, e := range v {
				add(e)
			}
		}
	}
	for _, m := range matches {
		add(m)
	}
	return records, nil
}

// toRecord keeps the scalar properties of a JSON object.
func toRecord(obj map[string]any) record {
	rec := make(record, len(obj))
	for k, v := range obj {
		switch v := v.(type) {
		case string:
			rec[k] = strings.TrimSpace(v)
		case json.Number:
			rec[k] = v.String()
		case bool:
			rec[k] = strconv.FormatBool(v)
		}
	}
	return rec
}
