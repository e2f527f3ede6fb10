// Package service provides the core scoreboard service that implements
// the dependencies required by the HTTP API and the CLI.
package service

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/helset/gamenight/internal/adapters/fetch"
	"github.com/helset/gamenight/internal/domain/rank"
	"github.com/helset/gamenight/internal/domain/scorecsv"
	"github.com/helset/gamenight/internal/domain/split"
	"github.com/helset/gamenight/internal/domain/tally"
	"github.com/helset/gamenight/internal/domain/types"
	"github.com/helset/gamenight/pkg/logger"
	"github.com/helset/gamenight/pkg/metrics"
)

// hallTopPlayers is how many ranked entries a completed split keeps in
// the hall of fame.
const hallTopPlayers = 2

// Fetch outcome labels for metrics.
const (
	fetchOutcomeOK    = "ok"
	fetchOutcomeError = "error"
)

// Service builds the current standings and the hall of fame. Everything
// is recomputed from freshly fetched sheets on every call; nothing is
// cached between calls.
type Service struct {
	fetcher     fetch.TextFetcher
	dataFolder  string
	firstYear   int
	hallWorkers int
	now         func() time.Time

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithFetcher sets the sheet fetcher.
func WithFetcher(f fetch.TextFetcher) Option {
	return func(s *Service) {
		if f != nil {
			s.fetcher = f
		}
	}
}

// WithDataFolder sets the URL prefix under which split sheets live.
func WithDataFolder(folder string) Option {
	return func(s *Service) {
		if folder != "" {
			s.dataFolder = folder
		}
	}
}

// WithFirstYear sets the inclusive lower bound for hall of fame enumeration.
func WithFirstYear(year int) Option {
	return func(s *Service) {
		if year > 0 {
			s.firstYear = year
		}
	}
}

// WithHallFetchWorkers caps concurrent sheet fetches during a hall build.
func WithHallFetchWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.hallWorkers = n
		}
	}
}

// WithClock overrides the reference clock, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		fetcher:     fetch.NewClient(),
		dataFolder:  "data",
		firstYear:   time.Now().Year(),
		hallWorkers: runtime.NumCPU(),
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	return s
}

// CurrentSplit resolves the split the service clock falls into.
func (s *Service) CurrentSplit() split.Split {
	return split.Current(s.now())
}

// Standings fetches the current split's sheet and returns its ranked
// entries. Unlike the hall of fame, a fetch failure here is surfaced to
// the caller so the presentation layer can show an explicit error.
func (s *Service) Standings(ctx context.Context) ([]types.RankedEntry, error) {
	start := time.Now()
	entries, err := s.loadSplit(ctx, s.CurrentSplit())
	if err != nil {
		return nil, err
	}
	metrics.RecordStandingsBuildLatency(float64(time.Since(start).Milliseconds()))
	return entries, nil
}

// HallOfFame classifies every split from the configured first year up to
// and including the current one. The current split is always reported
// in-progress without a fetch; past splits are fetched concurrently and
// classified independently, so one failed sheet never affects another.
// The result order always follows the split calendar, not fetch
// completion order. An empty enumeration yields an empty result.
func (s *Service) HallOfFame(ctx context.Context) []types.SplitSummary {
	start := time.Now()
	current := s.CurrentSplit()
	splits := split.Range(s.firstYear, current)
	if len(splits) == 0 {
		s.logger.Warn(ctx, "hall of fame enumeration is empty",
			logger.Int("firstYear", s.firstYear),
			logger.String("current", current.String()),
		)
		return nil
	}

	// Fan out over past splits, writing each summary to its enumeration
	// index. The slice join is the only synchronization point; no result
	// is shared between workers.
	summaries := make([]types.SplitSummary, len(splits))
	jobs := make(chan int)
	var wg sync.WaitGroup

	workers := s.hallWorkers
	if workers > len(splits) {
		workers = len(splits)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				summaries[i] = s.summarize(ctx, splits[i], current)
			}
		}()
	}
	for i := range splits {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	counts := map[types.SplitStatus]int{}
	for _, sum := range summaries {
		counts[sum.Status]++
	}
	for _, status := range []types.SplitStatus{types.StatusInProgress, types.StatusOffSplit, types.StatusCompleted} {
		metrics.UpdateHallSplits(string(status), counts[status])
	}
	metrics.RecordHallBuildLatency(float64(time.Since(start).Milliseconds()))

	return summaries
}

// summarize classifies one split. The current split is never fetched,
// even if its sheet already exists.
func (s *Service) summarize(ctx context.Context, sp, current split.Split) types.SplitSummary {
	summary := types.SplitSummary{Year: sp.Year, Split: sp.Number}

	if sp == current {
		summary.Status = types.StatusInProgress
		return summary
	}

	entries, err := s.loadSplit(ctx, sp)
	if err != nil || len(entries) == 0 {
		// Absent, unreadable, and empty sheets all classify the same way.
		summary.Status = types.StatusOffSplit
		return summary
	}

	summary.Status = types.StatusCompleted
	top := hallTopPlayers
	if len(entries) < top {
		top = len(entries)
	}
	summary.Players = entries[:top]
	return summary
}

// loadSplit runs the full pipeline for one split: fetch, parse, tally, rank.
func (s *Service) loadSplit(ctx context.Context, sp split.Split) ([]types.RankedEntry, error) {
	url := sp.CSVURL(s.dataFolder)

	start := time.Now()
	text, err := s.fetcher.FetchText(ctx, url)
	metrics.RecordSheetFetchLatency(float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.RecordSheetFetch(fetchOutcomeError)
		s.logger.Debug(ctx, "sheet fetch failed",
			logger.String("split", sp.String()),
			logger.String("url", url),
			logger.Error(err),
		)
		return nil, err
	}
	metrics.RecordSheetFetch(fetchOutcomeOK)

	records, stats := scorecsv.ParseWithStats(text)
	metrics.RecordRowsParsed(stats.Parsed)
	metrics.RecordRowsDropped(stats.Dropped)
	if stats.Dropped > 0 {
		s.logger.Debug(ctx, "dropped malformed sheet rows",
			logger.String("split", sp.String()),
			logger.Int("dropped", stats.Dropped),
		)
	}

	return rank.Rank(tally.Sum(records)), nil
}
