// Package split implements the half-year split calendar: which split a
// given date falls into and how a split maps to its CSV resource.
package split

import (
	"fmt"
	"strings"
	"time"
)

// July is the first month of the second split.
const secondSplitFirstMonth = time.July

// Split identifies one half-year competitive period. Number is 1 for
// January through June and 2 for July through December.
type Split struct {
	Year   int `json:"year"`
	Number int `json:"split"`
}

// Current resolves the split a reference date falls into.
func Current(ref time.Time) Split {
	n := 1
	if ref.Month() >= secondSplitFirstMonth {
		n = 2
	}
	return Split{Year: ref.Year(), Number: n}
}

// CSVName returns the split's file name, e.g. "2025_Split1.csv".
func (s Split) CSVName() string {
	return fmt.Sprintf("%d_Split%d.csv", s.Year, s.Number)
}

// CSVURL joins the split's file name to a data folder prefix. Trailing
// slashes on the folder are normalized away before joining.
func (s Split) CSVURL(dataFolder string) string {
	return strings.TrimRight(dataFolder, "/") + "/" + s.CSVName()
}

// Before reports whether s is chronologically before other.
func (s Split) Before(other Split) bool {
	if s.Year != other.Year {
		return s.Year < other.Year
	}
	return s.Number < other.Number
}

// After reports whether s is chronologically after other.
func (s Split) After(other Split) bool {
	return other.Before(s)
}

// String implements fmt.Stringer, e.g. "2025/S1".
func (s Split) String() string {
	return fmt.Sprintf("%d/S%d", s.Year, s.Number)
}

// Range enumerates every split from January of firstYear through last,
// inclusive, in chronological order. It returns an empty slice when last
// precedes the first split of firstYear.
func Range(firstYear int, last Split) []Split {
	var out []Split
	for year := firstYear; year <= last.Year; year++ {
		for n := 1; n <= 2; n++ {
			s := Split{Year: year, Number: n}
			if s.After(last) {
				continue
			}
			out = append(out, s)
		}
	}
	return out
}
