// Package kvitto turns itemized grocery receipts into monthly tables of
// price, quantity and cost per purchased item.
//
// The input is two flat record sets, typically read from a store's export
// files by the [github.com/etnz/kvitto/ica] package:
//   - Receipts: one per store visit, with a transaction id and a timestamp.
//   - Line items: one per purchased line, referencing a receipt by its
//     transaction id, with a description, a quantity and the line total.
//
// [Aggregate] joins line items to their receipt and folds them into three
// tables indexed by item description and calendar month:
//   - Prices: the last unit price observed in the month.
//   - Quantities: the units bought in the month.
//   - Costs: the money spent in the month.
//
// [SortByDensity] ranks the rows of a table by the number of months the item
// was bought, and [Summarize] computes per-item lifetime totals and averages.
// [Analyze] chains both the way reports use them.
//
// Everything is computed with exact decimals and without I/O; loading,
// rendering and exporting live in sibling packages and in the `kvt` command.
package kvitto
