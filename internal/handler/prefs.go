package handler

import (
	"net/http"

	"github.com/tripweaver/backend/internal/domain"
	"github.com/tripweaver/backend/internal/middleware"
	"github.com/tripweaver/backend/internal/prefs"
)

// GetPreferences returns the caller's display preferences, falling back to
// defaults for a first-time user.
func (s *Server) GetPreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	p, err := s.prefs.Get(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// PutPreferences replaces the caller's display preferences.
func (s *Server) PutPreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	var p prefs.Preferences
	if err := decodeJSON(r, &p); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	if err := s.prefs.Set(r.Context(), userID, p); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
