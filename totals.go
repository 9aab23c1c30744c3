package kvitto

import (
	"slices"

	"github.com/etnz/kvitto/date"
	"github.com/shopspring/decimal"
)

// MonthTotal is the amount spent over all the receipts of a month.
type MonthTotal struct {
	Month  date.Month
	Value  decimal.Decimal // sum of receipt values
	Visits int             // number of receipts
}

// MonthlyTotals sums receipt values per month, in chronological order.
// Receipts without transaction id or timestamp are ignored.
func MonthlyTotals(receipts []Receipt) []MonthTotal {
	index := make(map[date.Month]int)
	var totals []MonthTotal
	for _, r := range receipts {
		if !r.usable() {
			continue
		}
		m := r.Month()
		i, ok := index[m]
		if !ok {
			i = len(totals)
			index[m] = i
			totals = append(totals, MonthTotal{Month: m})
		}
		totals[i].Value = totals[i].Value.Add(r.Value)
		totals[i].Visits++
	}
	slices.SortFunc(totals, func(a, b MonthTotal) int { return a.Month.Compare(b.Month) })
	return totals
}
