package rank_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/helset/gamenight/internal/domain/rank"
	"github.com/helset/gamenight/internal/domain/tally"
	"github.com/helset/gamenight/internal/domain/types"
)

func TestRank(t *testing.T) {
	Convey("Given per-player totals to rank", t, func() {
		Convey("When totals are empty", func() {
			So(rank.Rank(tally.Totals{}), ShouldBeEmpty)
		})

		Convey("When totals differ", func() {
			entries := rank.Rank(tally.Totals{"A": 5, "B": 1})

			Convey("Then entries sort descending by total with 1-based ranks", func() {
				So(entries, ShouldResemble, []types.RankedEntry{
					{Rank: 1, Player: "A", Total: 5},
					{Rank: 2, Player: "B", Total: 1},
				})
			})
		})

		Convey("When totals tie", func() {
			entries := rank.Rank(tally.Totals{"B": 5, "A": 5})

			Convey("Then the alphabetically earlier name wins the tie", func() {
				So(entries, ShouldResemble, []types.RankedEntry{
					{Rank: 1, Player: "A", Total: 5},
					{Rank: 2, Player: "B", Total: 5},
				})
			})
		})

		Convey("When many players tie and differ", func() {
			entries := rank.Rank(tally.Totals{"carol": 3, "bob": 7, "dave": 3, "alice": 3})

			Convey("Then ranks stay contiguous with no sharing", func() {
				So(entries, ShouldHaveLength, 4)
				So(entries[0], ShouldResemble, types.RankedEntry{Rank: 1, Player: "bob", Total: 7})
				So(entries[1].Player, ShouldEqual, "alice")
				So(entries[2].Player, ShouldEqual, "carol")
				So(entries[3].Player, ShouldEqual, "dave")
				for i, e := range entries {
					So(e.Rank, ShouldEqual, i+1)
				}
			})
		})

		Convey("When names need locale-aware ordering", func() {
			entries := rank.Rank(tally.Totals{"Østen": 2, "anna": 2, "Bob": 2})

			Convey("Then ordering follows collation, not byte order", func() {
				So(entries[0].Player, ShouldEqual, "anna")
				So(entries[1].Player, ShouldEqual, "Bob")
				So(entries[2].Player, ShouldEqual, "Østen")
			})
		})
	})
}
