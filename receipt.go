package kvitto

import (
	"strings"
	"time"

	"github.com/etnz/kvitto/date"
	"github.com/shopspring/decimal"
)

// TransactionID identifies a store visit. Line items reference their receipt by it.
type TransactionID string

// Receipt is one store visit.
type Receipt struct {
	ID        TransactionID
	Timestamp time.Time
	Value     decimal.Decimal // receipt total, zero when unknown
}

// Month returns the calendar month of the visit.
func (r Receipt) Month() date.Month { return date.MonthOf(r.Timestamp) }

// usable reports whether the receipt has what the join needs: an id and a timestamp.
func (r Receipt) usable() bool { return r.ID != "" && !r.Timestamp.IsZero() }

// LineItem is one purchased line of a receipt.
type LineItem struct {
	TransactionID TransactionID
	Desc          string          // empty when absent
	Quantity      decimal.Decimal // zero when absent
	Price         decimal.Decimal // line total, not the unit price
}

// HasDesc reports whether the line carries a non blank description.
func (it LineItem) HasDesc() bool { return strings.TrimSpace(it.Desc) != "" }

// HasQuantity reports whether the line quantity is strictly positive.
// Returns (negative quantities) are not purchases.
func (it LineItem) HasQuantity() bool { return it.Quantity.IsPositive() }

// Valid reports whether the line takes part in the aggregation.
func (it LineItem) Valid() bool { return it.HasDesc() && it.HasQuantity() }

// UnitPrice returns the line total divided by the quantity.
// It panics if the quantity is zero, call it on Valid lines only.
func (it LineItem) UnitPrice() decimal.Decimal { return it.Price.Div(it.Quantity) }
