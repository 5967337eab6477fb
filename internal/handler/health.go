package handler

import "net/http"

// Health reports liveness. It carries no dependency checks so load balancers
// keep routing while the database restarts.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
