package split_test

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/helset/gamenight/internal/domain/split"
)

func TestCurrent(t *testing.T) {
	Convey("Given the split calendar", t, func() {
		Convey("When the date is June 30", func() {
			s := split.Current(time.Date(2025, time.June, 30, 23, 59, 0, 0, time.UTC))

			Convey("Then it falls in split 1", func() {
				So(s, ShouldResemble, split.Split{Year: 2025, Number: 1})
			})
		})

		Convey("When the date is July 1", func() {
			s := split.Current(time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC))

			Convey("Then it falls in split 2", func() {
				So(s, ShouldResemble, split.Split{Year: 2025, Number: 2})
			})
		})

		Convey("When the date is in December", func() {
			s := split.Current(time.Date(2024, time.December, 31, 12, 0, 0, 0, time.UTC))

			Convey("Then it still falls in split 2 of that year", func() {
				So(s, ShouldResemble, split.Split{Year: 2024, Number: 2})
			})
		})
	})
}

func TestCSVNaming(t *testing.T) {
	Convey("Given a split", t, func() {
		s := split.Split{Year: 2025, Number: 1}

		Convey("Then its CSV name follows the {year}_Split{n} convention", func() {
			So(s.CSVName(), ShouldEqual, "2025_Split1.csv")
		})

		Convey("When joining to a data folder", func() {
			So(s.CSVURL("https://club.example.org/data"), ShouldEqual, "https://club.example.org/data/2025_Split1.csv")
		})

		Convey("When the folder carries trailing slashes", func() {
			So(s.CSVURL("data///"), ShouldEqual, "data/2025_Split1.csv")
		})
	})
}

func TestRange(t *testing.T) {
	Convey("Given a split enumeration", t, func() {
		Convey("When the current split is the first of a later year", func() {
			splits := split.Range(2024, split.Split{Year: 2025, Number: 1})

			Convey("Then every split up to and including the current one appears in order", func() {
				So(splits, ShouldResemble, []split.Split{
					{Year: 2024, Number: 1},
					{Year: 2024, Number: 2},
					{Year: 2025, Number: 1},
				})
			})
		})

		Convey("When the current split precedes the first year", func() {
			splits := split.Range(2026, split.Split{Year: 2025, Number: 2})

			Convey("Then the enumeration is empty", func() {
				So(splits, ShouldBeEmpty)
			})
		})

		Convey("When the first year equals the current year", func() {
			splits := split.Range(2025, split.Split{Year: 2025, Number: 2})

			Convey("Then both splits of the year appear", func() {
				So(splits, ShouldResemble, []split.Split{
					{Year: 2025, Number: 1},
					{Year: 2025, Number: 2},
				})
			})
		})
	})
}

func TestOrdering(t *testing.T) {
	Convey("Given two splits", t, func() {
		early := split.Split{Year: 2024, Number: 2}
		late := split.Split{Year: 2025, Number: 1}

		Convey("Then Before and After agree with the calendar", func() {
			So(early.Before(late), ShouldBeTrue)
			So(late.After(early), ShouldBeTrue)
			So(late.Before(early), ShouldBeFalse)
			So(early.Before(early), ShouldBeFalse)
		})

		Convey("Then String formats year and split number", func() {
			So(late.String(), ShouldEqual, "2025/S1")
		})
	})
}
