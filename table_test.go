package kvitto

import (
	"slices"
	"testing"

	"github.com/etnz/kvitto/date"
	"github.com/shopspring/decimal"
)

func newTestTable() *Table {
	months := []date.Month{month("2024-01"), month("2024-02")}
	t := NewTable([]string{"Bread", "Milk"}, months)
	t.set("Bread", months[1], dec("30"))
	t.add("Milk", months[0], dec("12"))
	t.add("Milk", months[0], dec("10"))
	t.add("Milk", months[1], dec("11"))
	return t
}

func TestTable_Lookup(t *testing.T) {
	tbl := newTestTable()

	testCases := []struct {
		name   string
		item   string
		month  string
		want   string
		wantOk bool
	}{
		{"Accumulated", "Milk", "2024-01", "22", true},
		{"Set", "Bread", "2024-02", "30", true},
		{"Default zero", "Bread", "2024-01", "0", true},
		{"Unknown item", "Wine", "2024-01", "0", false},
		{"Unknown month", "Milk", "2023-12", "0", false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tbl.Lookup(tc.item, month(tc.month))
			if ok != tc.wantOk {
				t.Errorf("Lookup() ok = %v, want %v", ok, tc.wantOk)
			}
			if !got.Equal(dec(tc.want)) {
				t.Errorf("Lookup() = %v, want %v", got, tc.want)
			}
			if at := tbl.At(tc.item, month(tc.month)); !at.Equal(got) {
				t.Errorf("At() = %v, want %v", at, got)
			}
		})
	}
}

func TestTable_RowsAndColumns(t *testing.T) {
	tbl := newTestTable()

	row, ok := tbl.Row("Milk")
	if !ok || len(row) != 2 || !row[1].Equal(dec("11")) {
		t.Errorf("Row(Milk) = %v, %v", row, ok)
	}
	row[1] = dec("99")
	if v := tbl.At("Milk", month("2024-02")); !v.Equal(dec("11")) {
		t.Errorf("Row() returned a view, At() = %v after write", v)
	}

	col, ok := tbl.Column(month("2024-02"))
	if !ok || !col[0].Equal(dec("30")) || !col[1].Equal(dec("11")) {
		t.Errorf("Column(2024-02) = %v, %v", col, ok)
	}
	if _, ok := tbl.Column(month("2025-01")); ok {
		t.Errorf("Column(2025-01) found")
	}

	if got := tbl.RowSum("Milk"); !got.Equal(dec("33")) {
		t.Errorf("RowSum(Milk) = %v, want 33", got)
	}
	if got := tbl.NonZero("Bread"); got != 1 {
		t.Errorf("NonZero(Bread) = %d, want 1", got)
	}
	if got := tbl.NonZero("Wine"); got != 0 {
		t.Errorf("NonZero(Wine) = %d, want 0", got)
	}
}

func TestTable_SortStableFunc(t *testing.T) {
	tbl := newTestTable()
	bySum := tbl.SortStableFunc(func(a, b Row) int {
		return sum(b.Values).Cmp(sum(a.Values))
	})
	if got, want := bySum.Items(), []string{"Milk", "Bread"}; !slices.Equal(got, want) {
		t.Errorf("SortStableFunc() = %v, want %v", got, want)
	}
	if got := bySum.At("Bread", month("2024-02")); !got.Equal(dec("30")) {
		t.Errorf("At(Bread, 2024-02) = %v after sort, want 30", got)
	}
}

func TestTable_Head(t *testing.T) {
	tbl := newTestTable()

	testCases := []struct {
		n    int
		want []string
	}{
		{-1, []string{"Bread", "Milk"}},
		{0, []string{}},
		{1, []string{"Bread"}},
		{5, []string{"Bread", "Milk"}},
	}
	for _, tc := range testCases {
		got := tbl.Head(tc.n).Items()
		if !slices.Equal(got, tc.want) {
			t.Errorf("Head(%d) = %v, want %v", tc.n, got, tc.want)
		}
	}
	if tbl.Head(1).Has("Milk") {
		t.Errorf("Head(1).Has(Milk) = true")
	}
}

func TestTable_All(t *testing.T) {
	tbl := newTestTable()
	var seen []string
	for item, values := range tbl.All() {
		seen = append(seen, item)
		values[0] = decimal.NewFromInt(-1)
		break
	}
	if !slices.Equal(seen, []string{"Bread"}) {
		t.Errorf("All() yielded %v after break, want [Bread]", seen)
	}
	if v := tbl.At("Bread", month("2024-01")); !v.IsZero() {
		t.Errorf("All() yielded a view, At() = %v after write", v)
	}
}
