// Package rank orders per-player totals into a standings list.
package rank

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/helset/gamenight/internal/domain/tally"
	"github.com/helset/gamenight/internal/domain/types"
)

// collator breaks ties the way a human reads the standings: natural
// alphabetic ordering under English collation rather than raw byte order.
// collate.Collator is not safe for concurrent use, so each Rank call
// builds its own.
func newCollator() *collate.Collator {
	return collate.New(language.English)
}

// Rank converts totals into a ranked list: descending by total, ties
// broken by ascending player name under locale collation. Ranks are
// 1-based and contiguous; tied totals never share a rank.
func Rank(totals tally.Totals) []types.RankedEntry {
	entries := make([]types.RankedEntry, 0, len(totals))
	for player, total := range totals {
		entries = append(entries, types.RankedEntry{Player: player, Total: total})
	}

	c := newCollator()
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Total != entries[j].Total {
			return entries[i].Total > entries[j].Total
		}
		return c.CompareString(entries[i].Player, entries[j].Player) < 0
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
