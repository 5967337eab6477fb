package handler

import (
	"net/http"

	"github.com/tripweaver/backend/internal/places"
)

// SearchLocations answers the city/airport autocomplete. Keywords shorter
// than two characters return an empty list rather than an error so the UI
// can query on every keystroke.
func (s *Server) SearchLocations(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("keyword")
	writeJSON(w, http.StatusOK, map[string]any{
		"locations": s.locations.Search(keyword),
	})
}

// Places proxies a place lookup to the external provider. Provider failures
// come back as degraded responses with empty results, never as 5xx: the trip
// form must stay usable when the provider is down.
func (s *Server) Places(w http.ResponseWriter, r *http.Request) {
	var req places.Request
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if req.Action == "" {
		badRequest(w, "action is required")
		return
	}

	writeJSON(w, http.StatusOK, s.places.Do(r.Context(), req))
}
