// Package tally reduces parsed score records into per-player totals.
package tally

import "github.com/helset/gamenight/internal/domain/types"

// Totals maps a player identifier to its accumulated score. Keys are
// exact, case-sensitive player IDs as they appear in the sheet.
type Totals map[string]float64

// Sum accumulates every record's score into its player's total, in input
// order. Negative and fractional scores accumulate like any other; no
// rounding is applied.
func Sum(records []types.Record) Totals {
	totals := make(Totals, len(records))
	for _, r := range records {
		totals[r.Player] += r.Score
	}
	return totals
}
