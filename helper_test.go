package kvitto

import (
	"fmt"
	"time"

	"github.com/etnz/kvitto/date"
	"github.com/shopspring/decimal"
)

// dec is a helper for tests to create decimals from const.
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// month is a helper for tests to create months from const.
func month(s string) date.Month {
	m, err := date.ParseMonth(s)
	if err != nil {
		panic(err)
	}
	return m
}

// receipt is a helper for tests to create a receipt at noon of day.
func receipt(id, day string) Receipt {
	t, err := time.Parse(time.DateOnly, day)
	if err != nil {
		panic(err)
	}
	return Receipt{ID: TransactionID(id), Timestamp: t.Add(12 * time.Hour)}
}

// line is a helper for tests to create a line item.
func line(id, desc, quantity, price string) LineItem {
	return LineItem{TransactionID: TransactionID(id), Desc: desc, Quantity: dec(quantity), Price: dec(price)}
}

// milk returns the two months, one item dataset used across tests.
func milk() ([]Receipt, []LineItem) {
	receipts := []Receipt{
		receipt("1", "2024-01-05"),
		receipt("2", "2024-02-10"),
	}
	items := []LineItem{
		line("1", "Milk", "2", "20"),
		line("1", "", "1", "5"),
		line("2", "Milk", "1", "12"),
	}
	return receipts, items
}

// cells returns the non zero cells of t keyed by "item/month".
func cells(t *Table) map[string]string {
	out := make(map[string]string)
	for item, values := range t.All() {
		for j, v := range values {
			if !v.IsZero() {
				out[fmt.Sprintf("%s/%s", item, t.months[j])] = v.String()
			}
		}
	}
	return out
}
