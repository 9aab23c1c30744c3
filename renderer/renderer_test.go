package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/kvitto"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func analytics() *kvitto.Analytics {
	day := func(s string) time.Time {
		t, _ := time.Parse(time.DateOnly, s)
		return t
	}
	receipts := []kvitto.Receipt{
		{ID: "1", Timestamp: day("2024-01-05"), Value: dec("54")},
		{ID: "2", Timestamp: day("2024-02-10"), Value: dec("1234.5")},
	}
	items := []kvitto.LineItem{
		{TransactionID: "1", Desc: "Milk", Quantity: dec("2"), Price: dec("20")},
		{TransactionID: "1", Desc: "Bread", Quantity: dec("1"), Price: dec("34")},
		{TransactionID: "2", Desc: "Milk", Quantity: dec("1"), Price: dec("12")},
		{TransactionID: "2", Desc: "Wine", Quantity: dec("3"), Price: dec("1222.5")},
	}
	return kvitto.Analyze(receipts, items)
}

func TestMoney(t *testing.T) {
	testCases := []struct {
		value string
		code  string
		want  string
	}{
		{"20", "USD", "$20.00"},
		{"1234.5", "USD", "$1,234.50"},
		{"10.6666666666666667", "USD", "$10.67"},
		{"-3.5", "USD", "-$3.50"},
	}
	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			if got := Money(dec(tc.value), tc.code); got != tc.want {
				t.Errorf("Money(%s, %s) = %q, want %q", tc.value, tc.code, got, tc.want)
			}
		})
	}
}

func TestAmount(t *testing.T) {
	if got := Amount(decimal.Zero, "USD"); got != "" {
		t.Errorf("Amount(0) = %q, want empty", got)
	}
	if got := Amount(dec("1.5"), ""); got != "1.5" {
		t.Errorf("Amount(1.5, \"\") = %q, want 1.5", got)
	}
	if got := NullMoney(decimal.NullDecimal{}, "USD"); got != "n/a" {
		t.Errorf("NullMoney(invalid) = %q, want n/a", got)
	}
}

func TestTableMarkdown(t *testing.T) {
	a := analytics()
	got := TableMarkdown("Monthly Costs", a.Costs, "USD", 2, true)

	for _, want := range []string{"# Monthly Costs", "2 of 3 items", "2024-01", "2024-02", "Milk", "$20.00", "$12.00", "**$32.00**"} {
		if !strings.Contains(got, want) {
			t.Errorf("TableMarkdown() does not contain %q:\n%s", want, got)
		}
	}
	// Milk is the densest row, the third row is cut.
	if strings.Contains(got, "Wine") && strings.Contains(got, "Bread") {
		t.Errorf("TableMarkdown(n=2) rendered three rows:\n%s", got)
	}

	quantities := TableMarkdown("Monthly Quantities", a.Quantities, "", -1, true)
	if !strings.Contains(quantities, "| Wine") || strings.Contains(quantities, "$") {
		t.Errorf("TableMarkdown() of quantities:\n%s", quantities)
	}
}

func TestTableMarkdown_NoTotal(t *testing.T) {
	a := analytics()
	got := TableMarkdown("Monthly Prices", a.Prices, "USD", -1, false)
	if strings.Contains(got, "Total") || strings.Contains(got, "**") {
		t.Errorf("TableMarkdown(total=false) has a total column:\n%s", got)
	}
	if !strings.Contains(got, "| Milk") {
		t.Errorf("TableMarkdown(total=false) does not list Milk:\n%s", got)
	}
}

func TestTableMarkdown_Empty(t *testing.T) {
	a := kvitto.Analyze(nil, nil)
	got := TableMarkdown("Monthly Prices", a.Prices, "USD", 5, false)
	if !strings.Contains(got, "No receipt") {
		t.Errorf("TableMarkdown() of an empty table:\n%s", got)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	got := SummaryMarkdown(analytics().Summary(), "USD", -1)

	for _, want := range []string{"# Item Summary", "Total spent: $1,288.50 over 2 months, 3 items", "Avg Price", "$407.50", "$611.25"} {
		if !strings.Contains(got, want) {
			t.Errorf("SummaryMarkdown() does not contain %q:\n%s", want, got)
		}
	}
	if wine, milk := strings.Index(got, "Wine"), strings.Index(got, "Milk"); wine > milk {
		t.Errorf("SummaryMarkdown() lists Milk before Wine:\n%s", got)
	}
}

func TestTotalsMarkdown(t *testing.T) {
	receipts := []kvitto.Receipt{
		{ID: "1", Timestamp: time.Date(2024, time.January, 5, 12, 0, 0, 0, time.UTC), Value: dec("54")},
		{ID: "2", Timestamp: time.Date(2024, time.January, 9, 12, 0, 0, 0, time.UTC), Value: dec("46")},
		{ID: "3", Timestamp: time.Date(2024, time.February, 10, 12, 0, 0, 0, time.UTC), Value: dec("1234.5")},
	}
	got := TotalsMarkdown(kvitto.MonthlyTotals(receipts), "USD")

	for _, want := range []string{"# Monthly Totals", "2024-01", "$100.00", "$50.00", "**$1,334.50**", "**3**"} {
		if !strings.Contains(got, want) {
			t.Errorf("TotalsMarkdown() does not contain %q:\n%s", want, got)
		}
	}
}
