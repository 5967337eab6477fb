package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripweaver/backend/internal/domain"
	"github.com/tripweaver/backend/internal/planner"
	"github.com/tripweaver/backend/internal/repo"
	"github.com/tripweaver/backend/internal/service"
)

type mockTripRepo struct {
	create     func(ctx context.Context, trip domain.Trip, plan domain.TripPlan) (domain.Trip, error)
	getByID    func(ctx context.Context, userID, tripID uuid.UUID) (domain.Trip, domain.TripPlan, error)
	listByUser func(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error)
}

var _ repo.TripRepo = (*mockTripRepo)(nil)

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip, plan domain.TripPlan) (domain.Trip, error) {
	return m.create(ctx, trip, plan)
}

func (m *mockTripRepo) GetByID(ctx context.Context, userID, tripID uuid.UUID) (domain.Trip, domain.TripPlan, error) {
	return m.getByID(ctx, userID, tripID)
}

func (m *mockTripRepo) ListByUser(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.listByUser(ctx, userID, p)
}

type mockCreditRepo struct {
	deduct        func(ctx context.Context, userID uuid.UUID) (bool, error)
	addCredits    func(ctx context.Context, userID uuid.UUID, amount int, productID, eventID string) (int, error)
	balance       func(ctx context.Context, userID uuid.UUID) (int, error)
	createProfile func(ctx context.Context, userID uuid.UUID, email string, credits int) error
}

var _ repo.CreditRepo = (*mockCreditRepo)(nil)

func (m *mockCreditRepo) Deduct(ctx context.Context, userID uuid.UUID) (bool, error) {
	return m.deduct(ctx, userID)
}

func (m *mockCreditRepo) AddCredits(ctx context.Context, userID uuid.UUID, amount int, productID, eventID string) (int, error) {
	return m.addCredits(ctx, userID, amount, productID, eventID)
}

func (m *mockCreditRepo) Balance(ctx context.Context, userID uuid.UUID) (int, error) {
	return m.balance(ctx, userID)
}

func (m *mockCreditRepo) CreateProfile(ctx context.Context, userID uuid.UUID, email string, credits int) error {
	return m.createProfile(ctx, userID, email, credits)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func planDetails() domain.TripDetails {
	dep := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	ret := dep.AddDate(0, 0, 3)
	return domain.TripDetails{
		DepartureCity:    "Paris",
		DestinationCity:  "Tokyo",
		DepartureDate:    &dep,
		ReturnDate:       &ret,
		Passengers:       domain.Passengers{Adults: 2},
		FlightClass:      domain.ClassEconomy,
		IncludeCarRental: true,
		IncludeHotel:     true,
	}
}

func newTripService(trips *mockTripRepo, credits *mockCreditRepo) *service.TripService {
	return service.NewTripService(trips, credits, planner.NewGenerator(), discardLogger())
}

func TestTripService_Plan(t *testing.T) {
	userID := uuid.New()
	deducted := false
	credits := &mockCreditRepo{
		deduct: func(_ context.Context, id uuid.UUID) (bool, error) {
			assert.Equal(t, userID, id)
			deducted = true
			return true, nil
		},
	}
	svc := newTripService(&mockTripRepo{}, credits)

	plan, err := svc.Plan(context.Background(), userID, planDetails())

	require.NoError(t, err)
	assert.True(t, deducted)
	require.NotNil(t, plan.OutboundFlight)
	require.NotNil(t, plan.ReturnFlight)
	assert.NotZero(t, plan.TotalCost)
}

func TestTripService_Plan_InsufficientCredits(t *testing.T) {
	credits := &mockCreditRepo{
		deduct: func(context.Context, uuid.UUID) (bool, error) { return false, nil },
	}
	svc := newTripService(&mockTripRepo{}, credits)

	_, err := svc.Plan(context.Background(), uuid.New(), planDetails())

	assert.ErrorIs(t, err, domain.ErrInsufficientCredits)
}

func TestTripService_Plan_ValidationBeforeDeduction(t *testing.T) {
	credits := &mockCreditRepo{
		deduct: func(context.Context, uuid.UUID) (bool, error) {
			t.Fatal("an invalid request must not cost a credit")
			return false, nil
		},
	}
	svc := newTripService(&mockTripRepo{}, credits)

	details := planDetails()
	details.DestinationCity = "  "
	_, err := svc.Plan(context.Background(), uuid.New(), details)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Plan_MissingDatesAllowed(t *testing.T) {
	credits := &mockCreditRepo{
		deduct: func(context.Context, uuid.UUID) (bool, error) { return true, nil },
	}
	svc := newTripService(&mockTripRepo{}, credits)

	details := planDetails()
	details.DepartureDate = nil
	details.ReturnDate = nil

	plan, err := svc.Plan(context.Background(), uuid.New(), details)

	require.NoError(t, err)
	assert.NotEmpty(t, plan.Itinerary)
}

func TestTripService_Toggle_RecomputesTotal(t *testing.T) {
	svc := newTripService(&mockTripRepo{}, &mockCreditRepo{})
	passengers := domain.Passengers{Adults: 2}

	plan := domain.TripPlan{
		OutboundFlight: &domain.Flight{ID: "f1", PricePerPerson: 100, Included: true},
		ReturnFlight:   &domain.Flight{ID: "f2", PricePerPerson: 120, Included: true},
		TotalCost:      440,
	}

	got := svc.Toggle(plan, passengers, domain.ToggleReturnFlight, "f2")

	assert.False(t, got.ReturnFlight.Included)
	assert.Equal(t, 200.0, got.TotalCost)
	assert.True(t, plan.ReturnFlight.Included, "input plan must not be modified")
}

func TestTripService_Save(t *testing.T) {
	userID := uuid.New()
	var savedPlan domain.TripPlan
	trips := &mockTripRepo{
		create: func(_ context.Context, trip domain.Trip, plan domain.TripPlan) (domain.Trip, error) {
			assert.Equal(t, userID, trip.UserID)
			savedPlan = plan
			trip.ID = uuid.New()
			trip.Status = domain.StatusPlanned
			return trip, nil
		},
	}
	svc := newTripService(trips, &mockCreditRepo{})

	plan := domain.TripPlan{
		OutboundFlight: &domain.Flight{ID: "f1", PricePerPerson: 100, Included: true},
		TotalCost:      99999, // stale cache, must be recomputed before the write
	}

	trip, err := svc.Save(context.Background(), userID, planDetails(), plan)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPlanned, trip.Status)
	assert.Equal(t, 200.0, savedPlan.TotalCost)
}

func TestTripService_Save_RequiresDates(t *testing.T) {
	trips := &mockTripRepo{
		create: func(context.Context, domain.Trip, domain.TripPlan) (domain.Trip, error) {
			t.Fatal("an invalid trip must not reach the repo")
			return domain.Trip{}, nil
		},
	}
	svc := newTripService(trips, &mockCreditRepo{})

	details := planDetails()
	details.ReturnDate = nil
	_, err := svc.Save(context.Background(), uuid.New(), details, domain.TripPlan{})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Get_RecomputesTotal(t *testing.T) {
	userID := uuid.New()
	tripID := uuid.New()
	trips := &mockTripRepo{
		getByID: func(_ context.Context, uid, tid uuid.UUID) (domain.Trip, domain.TripPlan, error) {
			assert.Equal(t, userID, uid)
			assert.Equal(t, tripID, tid)
			trip := domain.Trip{ID: tripID, UserID: userID, Details: planDetails()}
			plan := domain.TripPlan{
				OutboundFlight: &domain.Flight{ID: "f1", PricePerPerson: 100, Included: true},
				ReturnFlight:   &domain.Flight{ID: "f2", PricePerPerson: 120, Included: false},
			}
			return trip, plan, nil
		},
	}
	svc := newTripService(trips, &mockCreditRepo{})

	_, plan, err := svc.Get(context.Background(), userID, tripID)

	require.NoError(t, err)
	// 2 travelers, only the outbound flight included.
	assert.Equal(t, 200.0, plan.TotalCost)
}

func TestTripService_Get_NotFound(t *testing.T) {
	trips := &mockTripRepo{
		getByID: func(context.Context, uuid.UUID, uuid.UUID) (domain.Trip, domain.TripPlan, error) {
			return domain.Trip{}, domain.TripPlan{}, domain.ErrNotFound
		},
	}
	svc := newTripService(trips, &mockCreditRepo{})

	_, _, err := svc.Get(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripService_List(t *testing.T) {
	userID := uuid.New()
	trips := &mockTripRepo{
		listByUser: func(_ context.Context, uid uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error) {
			assert.Equal(t, userID, uid)
			assert.Equal(t, 2, p.Page)
			return []domain.Trip{{UserID: uid}}, 11, nil
		},
	}
	svc := newTripService(trips, &mockCreditRepo{})

	page := 2
	got, total, err := svc.List(context.Background(), userID, domain.NewPaginationParams(&page, nil))

	require.NoError(t, err)
	assert.EqualValues(t, 11, total)
	assert.Len(t, got, 1)
}
