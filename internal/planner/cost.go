package planner

import "github.com/tripweaver/backend/internal/domain"

// TotalCost derives the trip total from the plan's current Included flags.
// It is the single source of truth for the displayed price: the cached
// plan.TotalCost must never be trusted after a toggle.
//
// Per-person amounts (flights, activity costs) scale by the full traveler
// count — adults, children, and infants alike. Car and hotel totals are flat.
// Pure: never mutates the plan, idempotent for the same input.
func TotalCost(plan domain.TripPlan, passengers domain.Passengers) float64 {
	travelers := float64(passengers.Total())
	var total float64

	for _, f := range [...]*domain.Flight{plan.OutboundFlight, plan.ReturnFlight} {
		if f != nil && f.Included {
			total += f.PricePerPerson * travelers
		}
	}
	if c := plan.CarRental; c != nil && c.Included {
		total += c.TotalPrice
	}
	if h := plan.Hotel; h != nil && h.Included {
		total += h.TotalPrice
	}
	for _, day := range plan.Itinerary {
		for _, item := range day.Items {
			if item.Included && item.Cost != nil {
				total += *item.Cost * travelers
			}
		}
	}
	return total
}
