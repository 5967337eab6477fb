// Package service contains the business logic for the TripWeaver API.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls. No SQL lives here — services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/tripweaver/backend/internal/domain"
	"github.com/tripweaver/backend/internal/planner"
	"github.com/tripweaver/backend/internal/repo"
)

// TripService implements plan generation, toggling, and trip persistence.
type TripService struct {
	trips   repo.TripRepo
	credits repo.CreditRepo
	gen     *planner.Generator
	log     *slog.Logger
}

func NewTripService(trips repo.TripRepo, credits repo.CreditRepo, gen *planner.Generator, log *slog.Logger) *TripService {
	return &TripService{trips: trips, credits: credits, gen: gen, log: log}
}

// Plan deducts one credit and generates a fresh itinerary. Generation never
// runs on a zero balance; the deduction is atomic, so concurrent requests
// cannot overdraw.
//
// Dates may be absent at this stage — the generator falls back to a default
// trip length — but cities and traveler counts must be usable.
func (s *TripService) Plan(ctx context.Context, userID uuid.UUID, details domain.TripDetails) (domain.TripPlan, error) {
	if err := validatePlanRequest(details); err != nil {
		return domain.TripPlan{}, err
	}

	ok, err := s.credits.Deduct(ctx, userID)
	if err != nil {
		return domain.TripPlan{}, fmt.Errorf("service.TripService.Plan: %w", err)
	}
	if !ok {
		return domain.TripPlan{}, domain.ErrInsufficientCredits
	}

	plan := s.gen.Generate(details)
	s.log.InfoContext(ctx, "itinerary generated",
		"user_id", userID,
		"destination", details.DestinationCity,
		"total_cost", plan.TotalCost)
	return plan, nil
}

// Toggle flips one Included flag and returns the updated plan with its total
// recomputed. The input plan is not modified.
func (s *TripService) Toggle(plan domain.TripPlan, passengers domain.Passengers, target domain.ToggleTarget, itemID string) domain.TripPlan {
	out := planner.Toggle(plan, target, itemID)
	out.TotalCost = planner.TotalCost(out, passengers)
	return out
}

// Save persists a fully specified trip with its plan. The plan's cached
// total is recomputed before the write so the stored snapshot is consistent.
func (s *TripService) Save(ctx context.Context, userID uuid.UUID, details domain.TripDetails, plan domain.TripPlan) (domain.Trip, error) {
	if err := details.Validate(); err != nil {
		return domain.Trip{}, err
	}

	plan.TotalCost = planner.TotalCost(plan, details.Passengers)
	trip, err := s.trips.Create(ctx, domain.Trip{UserID: userID, Details: details}, plan)
	if err != nil {
		if trip.ID != uuid.Nil {
			// Header persisted but items did not; the trip reads back as
			// an empty preview.
			s.log.ErrorContext(ctx, "trip saved without items",
				"trip_id", trip.ID, "user_id", userID, "error", err)
		}
		return domain.Trip{}, fmt.Errorf("service.TripService.Save: %w", err)
	}
	return trip, nil
}

// Get returns one of the user's trips with its plan. The plan total comes
// from the aggregator, never from the stored snapshot.
func (s *TripService) Get(ctx context.Context, userID, tripID uuid.UUID) (domain.Trip, domain.TripPlan, error) {
	trip, plan, err := s.trips.GetByID(ctx, userID, tripID)
	if err != nil {
		return domain.Trip{}, domain.TripPlan{}, err
	}
	plan.TotalCost = planner.TotalCost(plan, trip.Details.Passengers)
	return trip, plan, nil
}

// List returns one page of the user's saved trips plus the total count.
func (s *TripService) List(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return s.trips.ListByUser(ctx, userID, p)
}

// validatePlanRequest checks the subset of TripDetails that generation
// needs. Dates are deliberately not required here.
func validatePlanRequest(d domain.TripDetails) error {
	if strings.TrimSpace(d.DepartureCity) == "" {
		return fmt.Errorf("%w: departure city is required", domain.ErrValidation)
	}
	if strings.TrimSpace(d.DestinationCity) == "" {
		return fmt.Errorf("%w: destination city is required", domain.ErrValidation)
	}
	if d.Passengers.Adults < 1 {
		return fmt.Errorf("%w: at least one adult is required", domain.ErrValidation)
	}
	if d.Passengers.Children < 0 || d.Passengers.Infants < 0 {
		return fmt.Errorf("%w: passenger counts must not be negative", domain.ErrValidation)
	}
	if d.FlightClass != "" && !d.FlightClass.Valid() {
		return fmt.Errorf("%w: unknown flight class %q", domain.ErrValidation, d.FlightClass)
	}
	if d.DepartureDate != nil && d.ReturnDate != nil && d.ReturnDate.Before(*d.DepartureDate) {
		return fmt.Errorf("%w: return date must not precede departure date", domain.ErrValidation)
	}
	return nil
}
