// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/helset/gamenight/internal/domain/split"
	"github.com/helset/gamenight/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// CurrentSplit resolves the split the service clock falls into.
	CurrentSplit() split.Split

	// Standings returns the current split's ranked entries.
	Standings(ctx context.Context) ([]types.RankedEntry, error)

	// HallOfFame returns one summary per split in calendar order.
	HallOfFame(ctx context.Context) []types.SplitSummary
}

// Server wires HTTP routes for the scoreboard API.
type Server struct {
	healthHandler    *HealthHandler
	standingsHandler *StandingsHandler
	hallHandler      *HallOfFameHandler
	splitHandler     *CurrentSplitHandler
}

// NewServer creates a new API server with all handlers. Aliases map raw
// player IDs to display labels and only affect response rendering.
func NewServer(deps Dependencies, aliases map[string]string) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		standingsHandler: NewStandingsHandler(deps, aliases),
		hallHandler:      NewHallOfFameHandler(deps, aliases),
		splitHandler:     NewCurrentSplitHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/standings", MetricsMiddleware(s.standingsHandler.HandleGetStandings, "standings"))
	mux.HandleFunc("/halloffame", MetricsMiddleware(s.hallHandler.HandleGetHallOfFame, "halloffame"))
	mux.HandleFunc("/splits/current", MetricsMiddleware(s.splitHandler.HandleGetCurrentSplit, "splits_current"))
}

// entryResponse is one standings row. DisplayName falls back to the raw
// player ID when no alias is configured.
type entryResponse struct {
	Rank        int     `json:"rank"`
	Player      string  `json:"player"`
	DisplayName string  `json:"display_name"`
	Total       float64 `json:"total"`
}

// splitSummaryResponse is one hall of fame row.
type splitSummaryResponse struct {
	Year    int               `json:"year"`
	Split   int               `json:"split"`
	Status  types.SplitStatus `json:"status"`
	Players []entryResponse   `json:"players,omitempty"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// renderEntries applies display aliases to ranked entries.
func renderEntries(entries []types.RankedEntry, aliases map[string]string) []entryResponse {
	out := make([]entryResponse, len(entries))
	for i, e := range entries {
		name := e.Player
		if alias, ok := aliases[e.Player]; ok {
			name = alias
		}
		out[i] = entryResponse{
			Rank:        e.Rank,
			Player:      e.Player,
			DisplayName: name,
			Total:       e.Total,
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
