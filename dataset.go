package kvitto

import (
	"slices"

	"github.com/etnz/kvitto/date"
)

// Dataset holds the receipts and line items of one or more exports.
type Dataset struct {
	Receipts []Receipt
	Items    []LineItem
}

// Sort orders receipts chronologically. Receipts with the same timestamp keep
// their relative order. Items are left untouched: their order within a
// receipt is the fold order.
func (d *Dataset) Sort() {
	slices.SortStableFunc(d.Receipts, func(a, b Receipt) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
}

// Merge appends to d the receipts of other whose transaction id is not yet in
// d, and the items of other whose transaction id has no item in d yet.
// Receipts and items may therefore be merged in separate calls, and merging
// the same export twice is a no-op. d is sorted afterward.
func (d *Dataset) Merge(other *Dataset) (receipts, items int) {
	hasReceipt := make(map[TransactionID]bool, len(d.Receipts))
	for _, r := range d.Receipts {
		hasReceipt[r.ID] = true
	}
	hasItems := make(map[TransactionID]bool, len(d.Items))
	for _, it := range d.Items {
		hasItems[it.TransactionID] = true
	}

	for _, r := range other.Receipts {
		if hasReceipt[r.ID] {
			continue
		}
		hasReceipt[r.ID] = true
		d.Receipts = append(d.Receipts, r)
		receipts++
	}
	for _, it := range other.Items {
		if hasItems[it.TransactionID] {
			continue
		}
		d.Items = append(d.Items, it)
		items++
	}
	d.Sort()
	return receipts, items
}

// Between returns the receipts whose visit day is in r, and their items.
func (d *Dataset) Between(r date.Range) *Dataset {
	if r.IsZero() {
		return &Dataset{Receipts: slices.Clone(d.Receipts), Items: slices.Clone(d.Items)}
	}
	kept := make(map[TransactionID]bool)
	out := new(Dataset)
	for _, rc := range d.Receipts {
		if r.ContainsTime(rc.Timestamp) {
			out.Receipts = append(out.Receipts, rc)
			kept[rc.ID] = true
		}
	}
	for _, it := range d.Items {
		if kept[it.TransactionID] {
			out.Items = append(out.Items, it)
		}
	}
	return out
}

// Canonical returns a sorted copy of d where a transaction id appears on one
// receipt only (the first one in chronological order).
func (d *Dataset) Canonical() *Dataset {
	out := &Dataset{Receipts: slices.Clone(d.Receipts), Items: slices.Clone(d.Items)}
	out.Sort()
	seen := make(map[TransactionID]bool, len(out.Receipts))
	out.Receipts = slices.DeleteFunc(out.Receipts, func(r Receipt) bool {
		if seen[r.ID] {
			return true
		}
		seen[r.ID] = true
		return false
	})
	return out
}

// Analyze runs [Analyze] on the dataset.
func (d *Dataset) Analyze() *Analytics { return Analyze(d.Receipts, d.Items) }
