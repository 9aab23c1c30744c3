package kvitto

import (
	"iter"
	"slices"

	"github.com/etnz/kvitto/date"
	"github.com/shopspring/decimal"
)

// Table is a grid of decimals with one row per item and one column per month.
//
// A zero cell means "no purchase that month", which cannot be told apart
// from a purchase recorded at zero. Tables are built by [Aggregate] and are
// read-only afterward: reordering returns a new table.
type Table struct {
	items  []string
	months []date.Month
	cells  [][]decimal.Decimal // cells[row][col]
	rows   map[string]int
	cols   map[date.Month]int
}

// Row is a table row with its label.
type Row struct {
	Item   string
	Values []decimal.Decimal // one per month, in column order
}

// NewTable returns a zero filled table. Labels are used in the given order
// and must not contain duplicates.
func NewTable(items []string, months []date.Month) *Table {
	t := &Table{
		items:  slices.Clone(items),
		months: slices.Clone(months),
		cells:  make([][]decimal.Decimal, len(items)),
	}
	for i := range t.cells {
		t.cells[i] = make([]decimal.Decimal, len(months))
	}
	t.index()
	return t
}

// index rebuilds the label lookups.
func (t *Table) index() {
	t.rows = make(map[string]int, len(t.items))
	for i, item := range t.items {
		t.rows[item] = i
	}
	t.cols = make(map[date.Month]int, len(t.months))
	for j, m := range t.months {
		t.cols[m] = j
	}
}

// Items returns the row labels in row order.
func (t *Table) Items() []string { return slices.Clone(t.items) }

// Months returns the column labels in column order.
func (t *Table) Months() []date.Month { return slices.Clone(t.months) }

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.items) }

// Has reports whether item is a row of the table.
func (t *Table) Has(item string) bool {
	_, ok := t.rows[item]
	return ok
}

// Lookup returns the cell at item and month, and whether both labels exist.
func (t *Table) Lookup(item string, m date.Month) (decimal.Decimal, bool) {
	i, ok := t.rows[item]
	if !ok {
		return decimal.Decimal{}, false
	}
	j, ok := t.cols[m]
	if !ok {
		return decimal.Decimal{}, false
	}
	return t.cells[i][j], true
}

// At returns the cell at item and month, zero for unknown labels.
func (t *Table) At(item string, m date.Month) decimal.Decimal {
	v, _ := t.Lookup(item, m)
	return v
}

// Row returns a copy of the row of item.
func (t *Table) Row(item string) ([]decimal.Decimal, bool) {
	i, ok := t.rows[item]
	if !ok {
		return nil, false
	}
	return slices.Clone(t.cells[i]), true
}

// Column returns a copy of the column of m, in row order.
func (t *Table) Column(m date.Month) ([]decimal.Decimal, bool) {
	j, ok := t.cols[m]
	if !ok {
		return nil, false
	}
	col := make([]decimal.Decimal, len(t.items))
	for i := range t.cells {
		col[i] = t.cells[i][j]
	}
	return col, true
}

// RowSum returns the sum of the row of item, zero for an unknown item.
func (t *Table) RowSum(item string) decimal.Decimal {
	i, ok := t.rows[item]
	if !ok {
		return decimal.Decimal{}
	}
	return sum(t.cells[i])
}

// NonZero returns the number of non zero cells in the row of item.
func (t *Table) NonZero(item string) int {
	i, ok := t.rows[item]
	if !ok {
		return 0
	}
	return nonZero(t.cells[i])
}

// All iterates over the rows in order. Yielded slices are copies.
func (t *Table) All() iter.Seq2[string, []decimal.Decimal] {
	return func(yield func(string, []decimal.Decimal) bool) {
		for i, item := range t.items {
			if !yield(item, slices.Clone(t.cells[i])) {
				return
			}
		}
	}
}

// SortStableFunc returns a copy of t with rows ordered by cmp. Rows that
// compare equal keep their relative order.
func (t *Table) SortStableFunc(cmp func(a, b Row) int) *Table {
	perm := make([]int, len(t.items))
	for i := range perm {
		perm[i] = i
	}
	slices.SortStableFunc(perm, func(i, j int) int {
		return cmp(Row{t.items[i], t.cells[i]}, Row{t.items[j], t.cells[j]})
	})
	return t.permute(perm)
}

// Head returns a copy of t restricted to its first n rows.
// A negative n, or one larger than the table, keeps every row.
func (t *Table) Head(n int) *Table {
	if n < 0 || n > len(t.items) {
		n = len(t.items)
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	return t.permute(perm)
}

// Clone returns a deep copy of t.
func (t *Table) Clone() *Table { return t.Head(-1) }

// permute returns a new table made of the rows of t listed in perm.
func (t *Table) permute(perm []int) *Table {
	out := &Table{
		items:  make([]string, len(perm)),
		months: slices.Clone(t.months),
		cells:  make([][]decimal.Decimal, len(perm)),
	}
	for k, i := range perm {
		out.items[k] = t.items[i]
		out.cells[k] = slices.Clone(t.cells[i])
	}
	out.index()
	return out
}

// set overwrites a cell. Both labels must exist.
func (t *Table) set(item string, m date.Month, v decimal.Decimal) {
	t.cells[t.rows[item]][t.cols[m]] = v
}

// add accumulates into a cell. Both labels must exist.
func (t *Table) add(item string, m date.Month, v decimal.Decimal) {
	i, j := t.rows[item], t.cols[m]
	t.cells[i][j] = t.cells[i][j].Add(v)
}

func sum(values []decimal.Decimal) decimal.Decimal {
	var s decimal.Decimal
	for _, v := range values {
		s = s.Add(v)
	}
	return s
}

func nonZero(values []decimal.Decimal) (n int) {
	for _, v := range values {
		if !v.IsZero() {
			n++
		}
	}
	return n
}
