// Package scorecsv parses hand-authored score sheets into records.
//
// The sheets are not full CSV: fields are never quoted, the third and
// later columns hold free text that may itself contain commas, and rows
// are edited by hand. Parsing is therefore positional and best-effort:
// a row that cannot yield a player and a numeric score is dropped
// silently instead of failing the whole sheet.
package scorecsv

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/helset/gamenight/internal/domain/types"
)

// scorePattern extracts the first numeric token from the score field:
// optional leading minus, digits, optional decimal part.
var scorePattern = regexp.MustCompile(`-?\d+(\.\d+)?`)

// Stats reports how many data rows survived parsing and how many were
// dropped as malformed. Blank lines count as neither.
type Stats struct {
	Parsed  int
	Dropped int
}

// Parse converts raw sheet text into records, preserving input order.
// The first line is always treated as a header and discarded; an empty
// or header-only input yields no records. Malformed rows are skipped.
func Parse(text string) []types.Record {
	records, _ := ParseWithStats(text)
	return records
}

// ParseWithStats is Parse plus row accounting for observability.
func ParseWithStats(text string) ([]types.Record, Stats) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) <= 1 {
		return nil, Stats{}
	}

	var records []types.Record
	var stats Stats
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rec, ok := parseLine(line)
		if !ok {
			stats.Dropped++
			continue
		}
		stats.Parsed++
		records = append(records, rec)
	}
	return records, stats
}

// parseLine extracts (player, score) from one data row. The row needs at
// least two delimiters; everything after the second comma is ignored so
// free-text trailing columns can contain commas.
func parseLine(line string) (types.Record, bool) {
	first := strings.IndexByte(line, ',')
	if first < 0 {
		return types.Record{}, false
	}
	second := strings.IndexByte(line[first+1:], ',')
	if second < 0 {
		return types.Record{}, false
	}
	second += first + 1

	player := strings.TrimSpace(line[:first])
	if player == "" {
		return types.Record{}, false
	}

	scoreField := strings.TrimSpace(line[first+1 : second])
	token := scorePattern.FindString(scoreField)
	if token == "" {
		return types.Record{}, false
	}
	score, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(score) {
		return types.Record{}, false
	}

	return types.Record{Player: player, Score: score}, true
}
