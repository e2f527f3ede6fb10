// Package report renders standings and hall-of-fame tables for the terminal.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/helset/gamenight/internal/domain/split"
	"github.com/helset/gamenight/internal/domain/types"
)

// PrintStandingsHeader prints a one-line summary for the current split.
func PrintStandingsHeader(w io.Writer, current split.Split, players int) {
	fmt.Fprintf(w, "\nSplit: %s  |  Players: %d\n\n", current, players)
}

// PrintStandings writes the ranked standings table. Aliases map raw
// player IDs to display labels; unknown IDs print as-is.
func PrintStandings(w io.Writer, entries []types.RankedEntry, aliases map[string]string) {
	table := newTable(w)
	table.Header("RANK", "PLAYER", "TOTAL")
	for _, e := range entries {
		table.Append(
			strconv.Itoa(e.Rank),
			displayName(e.Player, aliases),
			formatTotal(e.Total),
		)
	}
	table.Render()
}

// PrintHallOfFame writes one row per split. Completed splits list their
// podium; other splits show a status marker.
func PrintHallOfFame(w io.Writer, summaries []types.SplitSummary, aliases map[string]string) {
	if len(summaries) == 0 {
		fmt.Fprintln(w, "Nothing recorded yet.")
		return
	}

	table := newTable(w)
	table.Header("SPLIT", "STATUS", "WINNER", "RUNNER-UP")
	for _, s := range summaries {
		winner, runnerUp := "—", "—"
		if len(s.Players) > 0 {
			winner = podiumCell(s.Players[0], aliases)
		}
		if len(s.Players) > 1 {
			runnerUp = podiumCell(s.Players[1], aliases)
		}
		table.Append(
			split.Split{Year: s.Year, Number: s.Split}.String(),
			string(s.Status),
			winner,
			runnerUp,
		)
	}
	table.Render()
}

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignLeft},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

func displayName(player string, aliases map[string]string) string {
	if alias, ok := aliases[player]; ok {
		return alias
	}
	return player
}

func podiumCell(e types.RankedEntry, aliases map[string]string) string {
	return fmt.Sprintf("%s (%s)", displayName(e.Player, aliases), formatTotal(e.Total))
}

// formatTotal keeps whole totals short and fractional ones precise.
func formatTotal(total float64) string {
	return strconv.FormatFloat(total, 'f', -1, 64)
}
