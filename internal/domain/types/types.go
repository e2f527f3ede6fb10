// Package types contains common types shared across the application.
package types

// Record is a single parsed score line: one player, one game-night score.
// Scores may be fractional or negative.
type Record struct {
	Player string  `json:"player"`
	Score  float64 `json:"score"`
}

// RankedEntry is one row of a ranked standings list. Rank is 1-based and
// contiguous; tied totals still get distinct consecutive ranks.
type RankedEntry struct {
	Rank   int     `json:"rank"`
	Player string  `json:"player"`
	Total  float64 `json:"total"`
}

// SplitStatus classifies a half-year split in the hall of fame.
type SplitStatus string

// Split classifications.
const (
	// StatusInProgress marks the split currently being played.
	StatusInProgress SplitStatus = "in-progress"
	// StatusOffSplit means no usable completed data exists for the split:
	// the CSV was absent, unreadable, or held no rankable rows. The cases
	// are deliberately indistinguishable to callers.
	StatusOffSplit SplitStatus = "off-split"
	// StatusCompleted means the split produced at least one ranked player.
	StatusCompleted SplitStatus = "completed"
)

// SplitSummary is one hall-of-fame row. Players holds the top entries by
// rank and is only populated when Status is StatusCompleted.
type SplitSummary struct {
	Year    int           `json:"year"`
	Split   int           `json:"split"`
	Status  SplitStatus   `json:"status"`
	Players []RankedEntry `json:"players,omitempty"`
}
