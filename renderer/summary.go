package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/kvitto"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the n most expensive items of s.
func SummaryMarkdown(s *kvitto.Summary, currency string, n int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Item Summary")
	doc.PlainText(fmt.Sprintf("Total spent: %s over %d months, %d items.", Money(s.Total(), currency), s.Months, s.Len()))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Item", "Spent", "Units", "Avg Price", "Avg / Month"},
		Rows:   [][]string{},
	}
	for _, is := range s.Head(n) {
		table.Rows = append(table.Rows, []string{
			is.Item,
			Money(is.Spend, currency),
			is.Units.String(),
			NullMoney(is.AvgPrice, currency),
			NullMoney(is.AvgMonthly, currency),
		})
	}
	doc.Table(table)

	return doc.String()
}
