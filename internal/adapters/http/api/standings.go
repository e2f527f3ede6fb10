// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// StandingsHandler handles current split standings requests.
type StandingsHandler struct {
	deps    Dependencies
	aliases map[string]string
}

// NewStandingsHandler creates a new standings handler.
func NewStandingsHandler(deps Dependencies, aliases map[string]string) *StandingsHandler {
	return &StandingsHandler{
		deps:    deps,
		aliases: aliases,
	}
}

// standingsResponse carries the current split alongside its ranked rows.
type standingsResponse struct {
	Year    int             `json:"year"`
	Split   int             `json:"split"`
	Entries []entryResponse `json:"entries"`
}

// HandleGetStandings handles GET /standings requests. A fetch failure is
// reported as 502 so the consumer can show an explicit error state
// instead of an empty table.
func (h *StandingsHandler) HandleGetStandings(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_standings"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	entries, err := h.deps.Standings(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, "sheet_unavailable", Wrap(op, err))
		return
	}

	current := h.deps.CurrentSplit()
	writeJSON(w, http.StatusOK, standingsResponse{
		Year:    current.Year,
		Split:   current.Number,
		Entries: renderEntries(entries, h.aliases),
	})
}
