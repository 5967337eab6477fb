package mailer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripweaver/backend/internal/domain"
	"github.com/tripweaver/backend/internal/mailer"
)

func emailFixture() (domain.Trip, domain.TripPlan) {
	dep := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	ret := dep.AddDate(0, 0, 2)
	cost := 30.0

	trip := domain.Trip{
		Details: domain.TripDetails{
			DepartureCity:   "Paris",
			DestinationCity: "Tokyo",
			DepartureDate:   &dep,
			ReturnDate:      &ret,
		},
	}
	plan := domain.TripPlan{
		OutboundFlight: &domain.Flight{
			ID: "f1", Airline: "Air France", FlightNumber: "AF 123",
			DepartureTime: "2026-09-10 08:45", ArrivalTime: "2026-09-10 16:30",
			Duration: "7h 45m", Included: true,
		},
		ReturnFlight: &domain.Flight{
			ID: "f2", Airline: "Air France", FlightNumber: "AF 124",
			DepartureTime: "2026-09-12 10:15", ArrivalTime: "2026-09-12 18:05",
			Duration: "7h 50m", Included: true,
		},
		CarRental: &domain.CarRental{
			ID: "c1", Company: "Hertz", VehicleName: "Toyota RAV4",
			PickupTime: "2026-09-10 17:30", Included: true,
		},
		Hotel: &domain.Hotel{
			ID: "h1", Name: "Park Hotel Tokyo", Address: "Minato, Tokyo",
			DistanceFromAirport: "18 km from airport", Included: true,
		},
		Itinerary: []domain.DayItinerary{
			{Day: 1, Date: "2026-09-10", Items: []domain.ItineraryItem{
				{ID: "a1", Time: "19:00", Title: "Welcome dinner", Description: "Local cuisine", Cost: &cost, Included: true},
			}},
			{Day: 2, Date: "2026-09-11", Items: []domain.ItineraryItem{
				{ID: "a2", Time: "10:00", Title: "City tour", Description: "Guided walk", Cost: &cost, Included: true},
			}},
		},
	}
	return trip, plan
}

func TestRenderItinerary_FullPlan(t *testing.T) {
	trip, plan := emailFixture()

	subject, body, err := mailer.RenderItinerary(trip, plan, 1234.50)

	require.NoError(t, err)
	assert.Equal(t, "Your Tokyo itinerary", subject)
	assert.Contains(t, body, "Your trip to Tokyo")
	assert.Contains(t, body, "AF 123")
	assert.Contains(t, body, "AF 124")
	assert.Contains(t, body, "Hertz")
	assert.Contains(t, body, "Park Hotel Tokyo")
	assert.Contains(t, body, "Welcome dinner")
	assert.Contains(t, body, "City tour")
	assert.Contains(t, body, "$1234.50")
	assert.Contains(t, body, "Sep 10, 2026")
}

func TestRenderItinerary_OmitsExcludedSections(t *testing.T) {
	trip, plan := emailFixture()
	plan.CarRental.Included = false
	plan.Hotel = nil
	plan.Itinerary[1].Items[0].Included = false

	_, body, err := mailer.RenderItinerary(trip, plan, 500)

	require.NoError(t, err)
	assert.NotContains(t, body, "Car rental")
	assert.NotContains(t, body, "Hertz")
	assert.NotContains(t, body, "Hotel")
	assert.Contains(t, body, "Day 1")
	// A day whose every item is excluded drops out entirely.
	assert.NotContains(t, body, "Day 2")
	assert.NotContains(t, body, "City tour")
}

func TestRenderItinerary_MissingDates(t *testing.T) {
	trip, plan := emailFixture()
	trip.Details.DepartureDate = nil
	trip.Details.ReturnDate = nil

	_, body, err := mailer.RenderItinerary(trip, plan, 500)

	require.NoError(t, err)
	assert.NotContains(t, body, "Jan")
	assert.Contains(t, body, "Paris")
}

func TestRenderItinerary_EscapesUserText(t *testing.T) {
	trip, plan := emailFixture()
	trip.Details.DestinationCity = "<script>alert(1)</script>"

	_, body, err := mailer.RenderItinerary(trip, plan, 500)

	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
}
