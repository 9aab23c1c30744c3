package ica

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/kvitto"
	"golang.org/x/net/html/charset"
)

// ReadReceipts reads receipts from a "Butik kvitto.xml" export.
func ReadReceipts(r io.Reader) ([]kvitto.Receipt, error) {
	records, err := readXML(r)
	if err != nil {
		return nil, err
	}
	return toReceipts("xml", records), nil
}

// ReadLineItems reads line items from a "Butik kvittorader.xml" export.
func ReadLineItems(r io.Reader) ([]kvitto.LineItem, error) {
	records, err := readXML(r)
	if err != nil {
		return nil, err
	}
	return toLineItems("xml", records), nil
}

// readXML returns every `transactions` element, at any depth and in document
// order, as a record. Child elements and attributes are the record fields. A
// `transactions` element nested in another one is a record of its own and not
// a field of its parent.
func readXML(r io.Reader) ([]record, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	type open struct {
		rec   record
		depth int
	}
	var (
		records []record
		stack   []open // records being read, innermost last
		depth   int
		field   string // field being read in the innermost record
		text    strings.Builder
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot parse xml export: %w", err)
		}
		switch tok := tok.(type) {
		case xml.StartElement:
			depth++
			if tok.Name.Local == recordName {
				rec := make(record, len(tok.Attr))
				for _, a := range tok.Attr {
					rec[a.Name.Local] = strings.TrimSpace(a.Value)
				}
				// Maps are references: the record is filled after being listed.
				records = append(records, rec)
				stack = append(stack, open{rec, depth})
				field = ""
				continue
			}
			if len(stack) > 0 && depth == stack[len(stack)-1].depth+1 {
				field = tok.Name.Local
				text.Reset()
			}
		case xml.CharData:
			if field != "" {
				text.Write(tok)
			}
		case xml.EndElement:
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				switch {
				case depth == top.depth:
					stack = stack[:len(stack)-1]
				case depth == top.depth+1 && field != "":
					top.rec[field] = strings.TrimSpace(text.String())
					field = ""
				}
			}
			depth--
		}
	}
	return records, nil
}
