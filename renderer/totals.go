package renderer

import (
	"bytes"
	"strconv"

	"github.com/etnz/kvitto"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// TotalsMarkdown renders the money spent per month.
func TotalsMarkdown(totals []kvitto.MonthTotal, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Monthly Totals")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Month", "Visits", "Spent", "Avg / Visit"},
		Rows:   [][]string{},
	}
	var total decimal.Decimal
	visits := 0
	for _, mt := range totals {
		total = total.Add(mt.Value)
		visits += mt.Visits
		table.Rows = append(table.Rows, []string{
			mt.Month.String(),
			strconv.Itoa(mt.Visits),
			Money(mt.Value, currency),
			Money(mt.Value.Div(decimal.NewFromInt(int64(mt.Visits))), currency),
		})
	}
	if visits > 0 {
		table.Rows = append(table.Rows, []string{
			md.Bold("Total"),
			md.Bold(strconv.Itoa(visits)),
			md.Bold(Money(total, currency)),
			md.Bold(Money(total.Div(decimal.NewFromInt(int64(visits))), currency)),
		})
	}
	doc.Table(table)

	return doc.String()
}
