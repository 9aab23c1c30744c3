package kvitto

import (
	"testing"

	"github.com/etnz/kvitto/date"
	"github.com/google/go-cmp/cmp"
)

func TestSummarize_Milk(t *testing.T) {
	a := Analyze(milk())
	s := Summarize(a.Costs, a.Quantities)

	got, ok := s.Get("Milk")
	if !ok {
		t.Fatalf("Get(Milk) not found")
	}
	if !got.Spend.Equal(dec("32")) {
		t.Errorf("Spend = %v, want 32", got.Spend)
	}
	if !got.Units.Equal(dec("3")) {
		t.Errorf("Units = %v, want 3", got.Units)
	}
	if !got.AvgPrice.Valid || !got.AvgPrice.Decimal.Round(3).Equal(dec("10.667")) {
		t.Errorf("AvgPrice = %v, want 10.667", got.AvgPrice)
	}
	if !got.AvgMonthly.Valid || !got.AvgMonthly.Decimal.Equal(dec("16")) {
		t.Errorf("AvgMonthly = %v, want 16", got.AvgMonthly)
	}
	if s.Months != 2 {
		t.Errorf("Months = %d, want 2", s.Months)
	}
}

func TestSummarize_Consistency(t *testing.T) {
	receipts := []Receipt{
		receipt("1", "2024-01-05"),
		receipt("2", "2024-02-10"),
		receipt("3", "2024-04-01"),
	}
	items := []LineItem{
		line("1", "Milk", "2", "20"),
		line("1", "Bread", "1", "33.90"),
		line("2", "Milk", "3", "37.50"),
		line("2", "Coffee", "0.5", "64.95"),
		line("3", "Coffee", "1", "129.90"),
		line("3", "Bread", "2", "59.80"),
	}
	a := Analyze(receipts, items)
	s := a.Summary()

	for is := range s.All() {
		if sum := a.Costs.RowSum(is.Item); !is.Spend.Equal(sum) {
			t.Errorf("%s: Spend = %v, want cost row sum %v", is.Item, is.Spend, sum)
		}
		if !is.AvgPrice.Valid {
			t.Errorf("%s: AvgPrice is invalid", is.Item)
			continue
		}
		if back := is.AvgPrice.Decimal.Mul(is.Units).Round(2); !back.Equal(is.Spend) {
			t.Errorf("%s: AvgPrice * Units = %v, want %v", is.Item, back, is.Spend)
		}
	}

	var order []string
	for _, is := range s.Head(-1) {
		order = append(order, is.Item)
	}
	if diff := cmp.Diff([]string{"Coffee", "Bread", "Milk"}, order); diff != "" {
		t.Errorf("Summary order mismatch (-want +got):\n%s", diff)
	}
	if got := s.Total(); !got.Equal(dec("346.05")) {
		t.Errorf("Total() = %v, want 346.05", got)
	}
}

func TestSummarize_Degenerate(t *testing.T) {
	months := []date.Month{month("2024-01"), month("2024-02")}
	costs := NewTable([]string{"Bag", "Deposit", "Milk"}, months)
	quantities := NewTable([]string{"Bag", "Milk"}, months)
	costs.set("Bag", months[0], dec("2"))
	costs.set("Deposit", months[1], dec("2"))
	costs.set("Milk", months[0], dec("12"))
	quantities.set("Milk", months[0], dec("1"))

	s := Summarize(costs, quantities)

	testCases := []struct {
		item      string
		wantUnits string
		wantValid bool
	}{
		{"Bag", "0", false},     // no units
		{"Deposit", "0", false}, // not in quantities
		{"Milk", "1", true},
	}
	for _, tc := range testCases {
		t.Run(tc.item, func(t *testing.T) {
			got, ok := s.Get(tc.item)
			if !ok {
				t.Fatalf("Get(%s) not found", tc.item)
			}
			if !got.Units.Equal(dec(tc.wantUnits)) {
				t.Errorf("Units = %v, want %v", got.Units, tc.wantUnits)
			}
			if got.AvgPrice.Valid != tc.wantValid {
				t.Errorf("AvgPrice.Valid = %v, want %v", got.AvgPrice.Valid, tc.wantValid)
			}
			if !got.AvgMonthly.Valid {
				t.Errorf("AvgMonthly is invalid")
			}
		})
	}

	// Bag and Deposit tie on spend: the cost table order is kept.
	if diff := cmp.Diff([]string{"Milk", "Bag", "Deposit"}, itemsOf(s)); diff != "" {
		t.Errorf("Summary order mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarize_NoMonth(t *testing.T) {
	costs := NewTable([]string{"Milk"}, nil)
	s := Summarize(costs, costs)
	got, _ := s.Get("Milk")
	if got.AvgMonthly.Valid {
		t.Errorf("AvgMonthly = %v, want invalid", got.AvgMonthly)
	}
}

func itemsOf(s *Summary) []string {
	var items []string
	for is := range s.All() {
		items = append(items, is.Item)
	}
	return items
}
