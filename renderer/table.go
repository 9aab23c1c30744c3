package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/kvitto"
	md "github.com/nao1215/markdown"
)

// TableMarkdown renders the first n rows of t as a markdown table with one
// column per month, and a total column when total is set. Cells are formatted
// as money in currency, or as bare numbers when currency is empty. A negative
// n renders every row.
func TableMarkdown(title string, t *kvitto.Table, currency string, n int, total bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	months := t.Months()
	head := t.Head(n)
	if len(months) == 0 {
		doc.PlainText("No receipt in the period.")
		return doc.String()
	}
	doc.PlainText(fmt.Sprintf("%d of %d items, from %s to %s.", head.Len(), t.Len(), months[0], months[len(months)-1]))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft},
		Header:    []string{"Item"},
		Rows:      [][]string{},
	}
	for _, m := range months {
		table.Header = append(table.Header, m.String())
		table.Alignment = append(table.Alignment, md.AlignRight)
	}
	if total {
		table.Header = append(table.Header, "Total")
		table.Alignment = append(table.Alignment, md.AlignRight)
	}

	for item, values := range head.All() {
		row := []string{item}
		for _, v := range values {
			row = append(row, Amount(v, currency))
		}
		if total {
			sum := Amount(head.RowSum(item), currency)
			if sum != "" {
				sum = md.Bold(sum)
			}
			row = append(row, sum)
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)

	return doc.String()
}
