package date

import (
	"fmt"
	"time"
)

// MonthFormat is the format of a Month string: year and month, "2024-03".
const MonthFormat = "2006-01"

// Month is a calendar month. The zero value is not a valid month.
//
// Months compare with == and order chronologically with Compare. The
// string form is fixed width, so sorting strings gives the same order.
type Month struct {
	y int
	m time.Month
}

// NewMonth returns the normalized month for year and month, e.g. NewMonth(2024, 13) is 2025-01.
func NewMonth(year int, month time.Month) Month {
	y, m, _ := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Date()
	return Month{y, m}
}

// MonthOf returns the calendar month of t, in t's own location.
func MonthOf(t time.Time) Month {
	return Month{t.Year(), t.Month()}
}

// ParseMonth parses "2024-03" (or "2024-3").
func ParseMonth(str string) (Month, error) {
	on, err := time.Parse("2006-1", str)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q want format %q: %w", str, MonthFormat, err)
	}
	return MonthOf(on), nil
}

// Year returns the year of the month.
func (m Month) Year() int { return m.y }

// Month returns the month of the year.
func (m Month) Month() time.Month { return m.m }

// IsZero reports whether m is the zero value.
func (m Month) IsZero() bool { return m.y == 0 && m.m == 0 }

// String returns "2024-03".
func (m Month) String() string { return fmt.Sprintf("%04d-%02d", m.y, int(m.m)) }

// Compare returns -1, 0 or +1 depending on whether m is before, equal to or after n.
func (m Month) Compare(n Month) int {
	switch {
	case m.y < n.y:
		return -1
	case m.y > n.y:
		return 1
	case m.m < n.m:
		return -1
	case m.m > n.m:
		return 1
	default:
		return 0
	}
}

// Before reports whether m is before n.
func (m Month) Before(n Month) bool { return m.Compare(n) < 0 }

// Next returns the following month.
func (m Month) Next() Month { return NewMonth(m.y, m.m+1) }

// First returns the first day of the month.
func (m Month) First() Date { return New(m.y, m.m, 1) }

// Last returns the last day of the month.
func (m Month) Last() Date { return New(m.y, m.m+1, 0) }

// MarshalText implements encoding.TextMarshaler.
func (m Month) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Month) UnmarshalText(text []byte) error {
	v, err := ParseMonth(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
