package planner

import "github.com/tripweaver/backend/internal/domain"

// Toggle returns a copy of the plan with exactly one Included flag flipped.
//
// For the singleton targets (outboundFlight, returnFlight, carRental, hotel)
// the itemID is accepted but the match is implicit: the singleton, if present,
// is flipped. For the itinerary target the itemID must match an item across
// all days; the first match wins. Unknown targets or unmatched IDs are no-ops
// returning the input unchanged.
//
// The input plan is never mutated; the affected slot is copied on write.
// Flipping has no cascading effects — excluding a flight leaves the hotel,
// car, and every other item untouched.
func Toggle(plan domain.TripPlan, target domain.ToggleTarget, itemID string) domain.TripPlan {
	switch target {
	case domain.ToggleOutboundFlight:
		if plan.OutboundFlight != nil {
			f := *plan.OutboundFlight
			f.Included = !f.Included
			plan.OutboundFlight = &f
		}
	case domain.ToggleReturnFlight:
		if plan.ReturnFlight != nil {
			f := *plan.ReturnFlight
			f.Included = !f.Included
			plan.ReturnFlight = &f
		}
	case domain.ToggleCarRental:
		if plan.CarRental != nil {
			c := *plan.CarRental
			c.Included = !c.Included
			plan.CarRental = &c
		}
	case domain.ToggleHotel:
		if plan.Hotel != nil {
			h := *plan.Hotel
			h.Included = !h.Included
			plan.Hotel = &h
		}
	case domain.ToggleItinerary:
		plan.Itinerary = toggleItem(plan.Itinerary, itemID)
	}
	return plan
}

// toggleItem flips the first item whose ID matches, cloning only the day and
// item slices along the path so the caller's plan stays intact. Without a
// match the original slice is returned as is.
func toggleItem(days []domain.DayItinerary, itemID string) []domain.DayItinerary {
	for di, day := range days {
		for ii, item := range day.Items {
			if item.ID != itemID {
				continue
			}
			out := make([]domain.DayItinerary, len(days))
			copy(out, days)
			items := make([]domain.ItineraryItem, len(day.Items))
			copy(items, day.Items)
			items[ii].Included = !items[ii].Included
			out[di].Items = items
			return out
		}
	}
	return days
}
