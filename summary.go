package kvitto

import (
	"iter"
	"slices"

	"github.com/shopspring/decimal"
)

// ItemSummary holds the lifetime figures of one item.
type ItemSummary struct {
	Item  string
	Spend decimal.Decimal // total money spent
	Units decimal.Decimal // total units bought

	// AvgPrice is Spend / Units. It is invalid when no unit was bought.
	AvgPrice decimal.NullDecimal
	// AvgMonthly is Spend spread over every month of the dataset, including
	// the months the item was not bought. It is invalid when there is no month.
	AvgMonthly decimal.NullDecimal
}

// Summary is the list of item summaries, most expensive item first.
type Summary struct {
	Months int // number of months the averages are computed over
	rows   []ItemSummary
	index  map[string]int
}

// Summarize computes the summary of every row of costs.
//
// Units are read from the row with the same label in quantities; an item
// missing there has zero units. Rows are ordered by decreasing spend, items
// with the same spend keep the order they have in costs.
func Summarize(costs, quantities *Table) *Summary {
	s := &Summary{Months: len(costs.months)}
	months := decimal.NewFromInt(int64(s.Months))

	for i, item := range costs.items {
		is := ItemSummary{
			Item:  item,
			Spend: sum(costs.cells[i]),
			Units: quantities.RowSum(item),
		}
		if !is.Units.IsZero() {
			is.AvgPrice = decimal.NewNullDecimal(is.Spend.Div(is.Units))
		}
		if s.Months > 0 {
			is.AvgMonthly = decimal.NewNullDecimal(is.Spend.Div(months))
		}
		s.rows = append(s.rows, is)
	}
	slices.SortStableFunc(s.rows, func(a, b ItemSummary) int {
		return b.Spend.Cmp(a.Spend)
	})

	s.index = make(map[string]int, len(s.rows))
	for i, is := range s.rows {
		s.index[is.Item] = i
	}
	return s
}

// Len returns the number of items.
func (s *Summary) Len() int { return len(s.rows) }

// Get returns the summary of item.
func (s *Summary) Get(item string) (ItemSummary, bool) {
	i, ok := s.index[item]
	if !ok {
		return ItemSummary{}, false
	}
	return s.rows[i], true
}

// Rows returns the item summaries in order.
func (s *Summary) Rows() []ItemSummary { return slices.Clone(s.rows) }

// Head returns the first n item summaries, all of them if n is negative.
func (s *Summary) Head(n int) []ItemSummary {
	if n < 0 || n > len(s.rows) {
		n = len(s.rows)
	}
	return slices.Clone(s.rows[:n])
}

// All iterates over the item summaries in order.
func (s *Summary) All() iter.Seq[ItemSummary] {
	return func(yield func(ItemSummary) bool) {
		for _, is := range s.rows {
			if !yield(is) {
				return
			}
		}
	}
}

// Total returns the spend summed over every item.
func (s *Summary) Total() decimal.Decimal {
	var total decimal.Decimal
	for _, is := range s.rows {
		total = total.Add(is.Spend)
	}
	return total
}
