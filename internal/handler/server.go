// Package handler implements the HTTP layer of the TripWeaver API.
// All handlers are methods on Server; they decode requests, call the
// services behind small consumer-side interfaces, and encode responses.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tripweaver/backend/internal/domain"
	"github.com/tripweaver/backend/internal/places"
	"github.com/tripweaver/backend/internal/prefs"
)

// TripPlanner defines the trip operations the handlers depend on.
// Defining the interface here, in the consumer package, lets handler tests
// inject a mock without touching the database or service layer.
type TripPlanner interface {
	Plan(ctx context.Context, userID uuid.UUID, details domain.TripDetails) (domain.TripPlan, error)
	Toggle(plan domain.TripPlan, passengers domain.Passengers, target domain.ToggleTarget, itemID string) domain.TripPlan
	Save(ctx context.Context, userID uuid.UUID, details domain.TripDetails, plan domain.TripPlan) (domain.Trip, error)
	Get(ctx context.Context, userID, tripID uuid.UUID) (domain.Trip, domain.TripPlan, error)
	List(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error)
}

// CreditReader reads a user's credit balance.
type CreditReader interface {
	Balance(ctx context.Context, userID uuid.UUID) (int, error)
}

// LocationSearcher answers city/airport keyword searches.
type LocationSearcher interface {
	Search(keyword string) []domain.Location
}

// PlacesProxy forwards place lookups to the external provider.
type PlacesProxy interface {
	Do(ctx context.Context, req places.Request) places.Response
}

// ItineraryMailer emails a saved itinerary to its owner.
type ItineraryMailer interface {
	SendItinerary(ctx context.Context, userID, tripID uuid.UUID, email string) error
}

// WebhookProcessor verifies and applies a payment webhook payload.
type WebhookProcessor interface {
	Process(ctx context.Context, payload []byte, signature string) error
}

// Server holds every handler dependency.
type Server struct {
	trips     TripPlanner
	credits   CreditReader
	locations LocationSearcher
	places    PlacesProxy
	mail      ItineraryMailer
	webhooks  WebhookProcessor
	prefs     prefs.Store
}

func NewServer(
	trips TripPlanner,
	credits CreditReader,
	locations LocationSearcher,
	placesProxy PlacesProxy,
	mail ItineraryMailer,
	webhooks WebhookProcessor,
	prefStore prefs.Store,
) *Server {
	return &Server{
		trips:     trips,
		credits:   credits,
		locations: locations,
		places:    placesProxy,
		mail:      mail,
		webhooks:  webhooks,
		prefs:     prefStore,
	}
}

// Routes registers the API surface on r. The authenticated group carries the
// auth middleware passed in; the webhook and public lookups stay outside it.
func (s *Server) Routes(r chi.Router, auth func(http.Handler) http.Handler) {
	r.Get("/api/health", s.Health)
	r.Get("/api/locations/search", s.SearchLocations)
	r.Post("/api/places", s.Places)
	r.Post("/api/webhooks/payments", s.PaymentWebhook)

	r.Group(func(r chi.Router) {
		r.Use(auth)
		r.Post("/api/trips/generate", s.GeneratePlan)
		r.Post("/api/plans/toggle", s.TogglePlan)
		r.Post("/api/trips", s.SaveTrip)
		r.Get("/api/trips", s.ListTrips)
		r.Get("/api/trips/{tripID}", s.GetTrip)
		r.Get("/api/trips/{tripID}/pdf", s.TripPDF)
		r.Post("/api/trips/{tripID}/email", s.EmailTrip)
		r.Get("/api/credits", s.CreditBalance)
		r.Get("/api/preferences", s.GetPreferences)
		r.Put("/api/preferences", s.PutPreferences)
	})
}
