package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tripweaver/backend/internal/mailer"
	"github.com/tripweaver/backend/internal/planner"
	"github.com/tripweaver/backend/internal/repo"
)

// MailService emails a saved itinerary to its owner.
type MailService struct {
	trips  repo.TripRepo
	sender mailer.Sender
	log    *slog.Logger
}

func NewMailService(trips repo.TripRepo, sender mailer.Sender, log *slog.Logger) *MailService {
	return &MailService{trips: trips, sender: sender, log: log}
}

// SendItinerary renders the trip and sends it to the given address. The
// address comes from the caller's verified token identity, never from the
// request body.
func (s *MailService) SendItinerary(ctx context.Context, userID, tripID uuid.UUID, email string) error {
	trip, plan, err := s.trips.GetByID(ctx, userID, tripID)
	if err != nil {
		return err
	}

	total := planner.TotalCost(plan, trip.Details.Passengers)
	subject, body, err := mailer.RenderItinerary(trip, plan, total)
	if err != nil {
		return fmt.Errorf("service.MailService.SendItinerary: %w", err)
	}

	if err := s.sender.Send(ctx, email, subject, body); err != nil {
		return fmt.Errorf("service.MailService.SendItinerary: %w", err)
	}
	s.log.InfoContext(ctx, "itinerary emailed", "trip_id", tripID, "user_id", userID)
	return nil
}
