package kvitto

import (
	"slices"
	"strings"

	"github.com/etnz/kvitto/date"
)

// Analytics is the result of one aggregation pass.
type Analytics struct {
	Prices     *Table // last unit price observed in the month
	Quantities *Table // units bought in the month
	Costs      *Table // money spent in the month
	Skipped    Skipped
}

// Skipped counts the records an aggregation pass ignored.
type Skipped struct {
	Lines    int // lines without description or with a non positive quantity
	Receipts int // receipts without transaction id or timestamp
	Orphans  int // lines whose transaction id matches no receipt
}

// Total returns the number of ignored records.
func (s Skipped) Total() int { return s.Lines + s.Receipts + s.Orphans }

// Aggregate joins items to their receipt and folds them into the monthly
// price, quantity and cost tables.
//
// Rows are the sorted distinct non blank descriptions of items, columns the
// sorted distinct months of receipts. Receipts are folded in the given order
// and the items of a receipt in their given order: when an item is bought
// several times in a month, the price table holds the unit price of the last
// line folded, while quantities and costs accumulate.
//
// Lines failing [LineItem.Valid] are skipped. Malformed records are skipped
// too and counted in [Analytics.Skipped]; Aggregate never fails.
func Aggregate(receipts []Receipt, items []LineItem) *Analytics {
	var skipped Skipped

	byTx := make(map[TransactionID][]LineItem)
	labels := make(map[string]bool)
	for _, it := range items {
		if it.HasDesc() {
			labels[it.Desc] = true
		}
		byTx[it.TransactionID] = append(byTx[it.TransactionID], it)
	}

	monthSet := make(map[date.Month]bool)
	joined := make(map[TransactionID]bool)
	for _, r := range receipts {
		if !r.usable() {
			skipped.Receipts++
			continue
		}
		monthSet[r.Month()] = true
		joined[r.ID] = true
	}
	for id, lines := range byTx {
		if !joined[id] {
			skipped.Orphans += len(lines)
		}
	}

	rows := make([]string, 0, len(labels))
	for l := range labels {
		rows = append(rows, l)
	}
	slices.SortFunc(rows, strings.Compare)
	months := make([]date.Month, 0, len(monthSet))
	for m := range monthSet {
		months = append(months, m)
	}
	slices.SortFunc(months, date.Month.Compare)

	a := &Analytics{
		Prices:     NewTable(rows, months),
		Quantities: NewTable(rows, months),
		Costs:      NewTable(rows, months),
	}

	for _, r := range receipts {
		if !r.usable() {
			continue
		}
		m := r.Month()
		for _, it := range byTx[r.ID] {
			if !it.Valid() {
				skipped.Lines++
				continue
			}
			a.Prices.set(it.Desc, m, it.UnitPrice())
			a.Quantities.add(it.Desc, m, it.Quantity)
			a.Costs.add(it.Desc, m, it.Price)
		}
	}
	a.Skipped = skipped
	return a
}

// SortByDensity returns a copy of t with rows ordered by decreasing number of
// non zero cells, i.e. the items bought in the most months first. Rows with
// the same count keep their relative order.
func SortByDensity(t *Table) *Table {
	return t.SortStableFunc(func(a, b Row) int {
		return nonZero(b.Values) - nonZero(a.Values)
	})
}

// Analyze aggregates receipts and items, then ranks each table on its own by
// [SortByDensity]. The three tables may therefore list items in different
// orders.
func Analyze(receipts []Receipt, items []LineItem) *Analytics {
	a := Aggregate(receipts, items)
	a.Prices = SortByDensity(a.Prices)
	a.Quantities = SortByDensity(a.Quantities)
	a.Costs = SortByDensity(a.Costs)
	return a
}

// Summary returns the per item summary of the analytics.
func (a *Analytics) Summary() *Summary { return Summarize(a.Costs, a.Quantities) }
