// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// CurrentSplitHandler reports which split is currently being played.
type CurrentSplitHandler struct {
	deps Dependencies
}

// NewCurrentSplitHandler creates a new current split handler.
func NewCurrentSplitHandler(deps Dependencies) *CurrentSplitHandler {
	return &CurrentSplitHandler{deps: deps}
}

// HandleGetCurrentSplit handles GET /splits/current requests.
func (h *CurrentSplitHandler) HandleGetCurrentSplit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.CurrentSplit())
}
