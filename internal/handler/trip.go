package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tripweaver/backend/internal/domain"
	"github.com/tripweaver/backend/internal/middleware"
	"github.com/tripweaver/backend/internal/pdfgen"
)

// GeneratePlan deducts one credit and returns a freshly generated itinerary.
// The plan is not persisted; the client holds it until an explicit save.
func (s *Server) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	var details domain.TripDetails
	if err := decodeJSON(r, &details); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	plan, err := s.trips.Plan(r.Context(), userID, details)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

type toggleRequest struct {
	Plan       domain.TripPlan     `json:"plan"`
	Passengers domain.Passengers   `json:"passengers"`
	Target     domain.ToggleTarget `json:"target"`
	ItemID     string              `json:"itemId,omitempty"`
}

// TogglePlan flips one Included flag in the submitted plan and returns the
// plan with its total recomputed. The endpoint is stateless: the client owns
// the plan between generation and save.
func (s *Server) TogglePlan(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if req.Target == "" {
		badRequest(w, "target is required")
		return
	}

	plan := s.trips.Toggle(req.Plan, req.Passengers, req.Target, req.ItemID)
	writeJSON(w, http.StatusOK, plan)
}

type saveTripRequest struct {
	Details domain.TripDetails `json:"details"`
	Plan    domain.TripPlan    `json:"plan"`
}

// SaveTrip persists a generated plan under the caller's account.
func (s *Server) SaveTrip(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	var req saveTripRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	trip, err := s.trips.Save(r.Context(), userID, req.Details, req.Plan)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, trip)
}

type tripListResponse struct {
	Trips []domain.Trip `json:"trips"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

// ListTrips returns one page of the caller's saved trips, newest first.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	p := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))
	trips, total, err := s.trips.List(r.Context(), userID, p)
	if err != nil {
		writeError(w, err)
		return
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	writeJSON(w, http.StatusOK, tripListResponse{
		Trips: trips, Total: total, Page: p.Page, Limit: p.Limit,
	})
}

type tripResponse struct {
	Trip domain.Trip     `json:"trip"`
	Plan domain.TripPlan `json:"plan"`
}

// GetTrip returns one of the caller's trips with its reconstructed plan.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	userID, tripID, ok := s.tripRequest(w, r)
	if !ok {
		return
	}

	trip, plan, err := s.trips.Get(r.Context(), userID, tripID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tripResponse{Trip: trip, Plan: plan})
}

// TripPDF streams the trip's printable itinerary.
func (s *Server) TripPDF(w http.ResponseWriter, r *http.Request) {
	userID, tripID, ok := s.tripRequest(w, r)
	if !ok {
		return
	}

	trip, plan, err := s.trips.Get(r.Context(), userID, tripID)
	if err != nil {
		writeError(w, err)
		return
	}

	out, err := pdfgen.Itinerary(trip, plan, plan.TotalCost)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", "itinerary-"+tripID.String()+".pdf"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

// EmailTrip sends the itinerary to the caller's token email. Any address in
// the request body is ignored: the recipient is always the authenticated
// identity, so a stolen session cannot exfiltrate itineraries elsewhere.
func (s *Server) EmailTrip(w http.ResponseWriter, r *http.Request) {
	userID, tripID, ok := s.tripRequest(w, r)
	if !ok {
		return
	}
	email, ok := middleware.EmailFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	if err := s.mail.SendItinerary(r.Context(), userID, tripID, email); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "sent", "to": email})
}

// tripRequest extracts the caller identity and the tripID path parameter,
// writing the error response itself when either is unusable.
func (s *Server) tripRequest(w http.ResponseWriter, r *http.Request) (userID, tripID uuid.UUID, ok bool) {
	userID, ok = middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return uuid.Nil, uuid.Nil, false
	}
	tripID, err := uuid.Parse(chi.URLParam(r, "tripID"))
	if err != nil {
		writeError(w, domain.ErrNotFound)
		return uuid.Nil, uuid.Nil, false
	}
	return userID, tripID, true
}

func queryInt(r *http.Request, key string) *int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
