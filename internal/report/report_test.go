package report_test

import (
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/helset/gamenight/internal/domain/split"
	"github.com/helset/gamenight/internal/domain/types"
	"github.com/helset/gamenight/internal/report"
)

func TestPrintStandings(t *testing.T) {
	Convey("Given ranked standings", t, func() {
		entries := []types.RankedEntry{
			{Rank: 1, Player: "alice", Total: 5.5},
			{Rank: 2, Player: "bob", Total: 1},
		}

		Convey("When printed with an alias table", func() {
			var buf bytes.Buffer
			report.PrintStandings(&buf, entries, map[string]string{"alice": "Alice The Great"})
			out := buf.String()

			Convey("Then aliased names replace raw IDs", func() {
				So(out, ShouldContainSubstring, "Alice The Great")
				So(out, ShouldNotContainSubstring, "alice")
			})

			Convey("Then unaliased players print as-is with their totals", func() {
				So(out, ShouldContainSubstring, "bob")
				So(out, ShouldContainSubstring, "5.5")
				So(out, ShouldContainSubstring, "RANK")
			})
		})

		Convey("When printing the header line", func() {
			var buf bytes.Buffer
			report.PrintStandingsHeader(&buf, split.Split{Year: 2025, Number: 1}, len(entries))

			Convey("Then it names the split and player count", func() {
				So(buf.String(), ShouldContainSubstring, "2025/S1")
				So(buf.String(), ShouldContainSubstring, "Players: 2")
			})
		})
	})
}

func TestPrintHallOfFame(t *testing.T) {
	Convey("Given hall of fame summaries", t, func() {
		Convey("When there is nothing to show", func() {
			var buf bytes.Buffer
			report.PrintHallOfFame(&buf, nil, nil)

			Convey("Then a fallback line is printed", func() {
				So(buf.String(), ShouldContainSubstring, "Nothing recorded yet.")
			})
		})

		Convey("When splits have mixed statuses", func() {
			summaries := []types.SplitSummary{
				{Year: 2024, Split: 1, Status: types.StatusOffSplit},
				{Year: 2024, Split: 2, Status: types.StatusCompleted, Players: []types.RankedEntry{
					{Rank: 1, Player: "bob", Total: 7},
					{Rank: 2, Player: "carol", Total: 3},
				}},
				{Year: 2025, Split: 1, Status: types.StatusInProgress},
			}

			var buf bytes.Buffer
			report.PrintHallOfFame(&buf, summaries, map[string]string{"carol": "Caz"})
			out := buf.String()

			Convey("Then each split shows its status", func() {
				So(out, ShouldContainSubstring, "off-split")
				So(out, ShouldContainSubstring, "completed")
				So(out, ShouldContainSubstring, "in-progress")
			})

			Convey("Then the podium shows aliased names and totals", func() {
				So(out, ShouldContainSubstring, "bob (7)")
				So(out, ShouldContainSubstring, "Caz (3)")
			})
		})
	})
}
