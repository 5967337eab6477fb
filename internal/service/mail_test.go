package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripweaver/backend/internal/domain"
	"github.com/tripweaver/backend/internal/mailer"
	"github.com/tripweaver/backend/internal/service"
)

type mockSender struct {
	send func(ctx context.Context, to, subject, htmlBody string) error
}

var _ mailer.Sender = (*mockSender)(nil)

func (m *mockSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	return m.send(ctx, to, subject, htmlBody)
}

func TestMailService_SendItinerary(t *testing.T) {
	userID := uuid.New()
	tripID := uuid.New()
	trips := &mockTripRepo{
		getByID: func(_ context.Context, uid, tid uuid.UUID) (domain.Trip, domain.TripPlan, error) {
			trip := domain.Trip{ID: tid, UserID: uid, Details: planDetails()}
			plan := domain.TripPlan{
				OutboundFlight: &domain.Flight{ID: "f1", Airline: "Air France", PricePerPerson: 356, Included: true},
			}
			return trip, plan, nil
		},
	}

	var gotTo, gotSubject, gotBody string
	sender := &mockSender{
		send: func(_ context.Context, to, subject, htmlBody string) error {
			gotTo, gotSubject, gotBody = to, subject, htmlBody
			return nil
		},
	}
	svc := service.NewMailService(trips, sender, discardLogger())

	err := svc.SendItinerary(context.Background(), userID, tripID, "traveler@example.com")

	require.NoError(t, err)
	assert.Equal(t, "traveler@example.com", gotTo)
	assert.Equal(t, "Your Tokyo itinerary", gotSubject)
	assert.Contains(t, gotBody, "Air France")
	// 356 per person for 2 travelers.
	assert.Contains(t, gotBody, "$712.00")
}

func TestMailService_SendItinerary_TripNotFound(t *testing.T) {
	trips := &mockTripRepo{
		getByID: func(context.Context, uuid.UUID, uuid.UUID) (domain.Trip, domain.TripPlan, error) {
			return domain.Trip{}, domain.TripPlan{}, domain.ErrNotFound
		},
	}
	sender := &mockSender{
		send: func(context.Context, string, string, string) error {
			t.Fatal("nothing must be sent for a missing trip")
			return nil
		},
	}
	svc := service.NewMailService(trips, sender, discardLogger())

	err := svc.SendItinerary(context.Background(), uuid.New(), uuid.New(), "traveler@example.com")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMailService_SendItinerary_SenderFailure(t *testing.T) {
	trips := &mockTripRepo{
		getByID: func(_ context.Context, uid, tid uuid.UUID) (domain.Trip, domain.TripPlan, error) {
			return domain.Trip{ID: tid, UserID: uid, Details: planDetails()}, domain.TripPlan{}, nil
		},
	}
	sendErr := errors.New("relay refused")
	sender := &mockSender{
		send: func(context.Context, string, string, string) error { return sendErr },
	}
	svc := service.NewMailService(trips, sender, discardLogger())

	err := svc.SendItinerary(context.Background(), uuid.New(), uuid.New(), "traveler@example.com")

	assert.ErrorIs(t, err, sendErr)
}
