// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// HallOfFameHandler handles hall of fame requests.
type HallOfFameHandler struct {
	deps    Dependencies
	aliases map[string]string
}

// NewHallOfFameHandler creates a new hall of fame handler.
func NewHallOfFameHandler(deps Dependencies, aliases map[string]string) *HallOfFameHandler {
	return &HallOfFameHandler{
		deps:    deps,
		aliases: aliases,
	}
}

// HandleGetHallOfFame handles GET /halloffame requests. The response is
// always 200: per-split failures surface as "off-split" rows, and an
// empty enumeration yields an empty list for the consumer's fallback.
func (h *HallOfFameHandler) HandleGetHallOfFame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	summaries := h.deps.HallOfFame(r.Context())
	out := make([]splitSummaryResponse, len(summaries))
	for i, s := range summaries {
		out[i] = splitSummaryResponse{
			Year:    s.Year,
			Split:   s.Split,
			Status:  s.Status,
			Players: renderEntries(s.Players, h.aliases),
		}
	}
	writeJSON(w, http.StatusOK, out)
}
