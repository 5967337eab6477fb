package repo

import (
	"github.com/tripweaver/backend/internal/domain"
)

// Provider-data payload kinds. The payload restores everything the
// relational trip_items columns drop: flight direction, airline, vehicle,
// amenities, activity timing.
const (
	payloadFlight   = "flight"
	payloadCar      = "car"
	payloadHotel    = "hotel"
	payloadActivity = "activity"

	directionOutbound = "outbound"
	directionReturn   = "return"
)

// itemPayload is the provider_data JSON envelope. Exactly one of the typed
// fields is set, selected by Kind.
type itemPayload struct {
	Kind      string                `json:"kind"`
	Direction string                `json:"direction,omitempty"`
	DayDate   string                `json:"dayDate,omitempty"`
	Flight    *domain.Flight        `json:"flight,omitempty"`
	Car       *domain.CarRental     `json:"car,omitempty"`
	Hotel     *domain.Hotel         `json:"hotel,omitempty"`
	Activity  *domain.ItineraryItem `json:"activity,omitempty"`
}

// planItem is one flattened trip_items row ready for insertion.
type planItem struct {
	id          string
	itemType    string
	name        string
	description string
	cost        *float64
	included    bool
	day         *int
	order       *int
	payload     itemPayload
}

// flattenPlan turns a TripPlan into its row set: flights ×2 if present,
// car ×1, hotel ×1, then every itinerary activity tagged with its day and
// in-day order. Singleton rows carry NULL day/order.
func flattenPlan(plan domain.TripPlan) []planItem {
	var out []planItem

	if f := plan.OutboundFlight; f != nil {
		out = append(out, flightItem(f, directionOutbound))
	}
	if f := plan.ReturnFlight; f != nil {
		out = append(out, flightItem(f, directionReturn))
	}
	if c := plan.CarRental; c != nil {
		car := *c
		price := c.TotalPrice
		out = append(out, planItem{
			id:          c.ID,
			itemType:    "car_rental",
			name:        c.Company + " " + c.VehicleName,
			description: c.VehicleType,
			cost:        &price,
			included:    c.Included,
			payload:     itemPayload{Kind: payloadCar, Car: &car},
		})
	}
	if h := plan.Hotel; h != nil {
		hotel := *h
		price := h.TotalPrice
		out = append(out, planItem{
			id:          h.ID,
			itemType:    "hotel",
			name:        h.Name,
			description: h.Address,
			cost:        &price,
			included:    h.Included,
			payload:     itemPayload{Kind: payloadHotel, Hotel: &hotel},
		})
	}

	for _, day := range plan.Itinerary {
		for i, item := range day.Items {
			activity := item
			dayNum, order := day.Day, i
			out = append(out, planItem{
				id:          item.ID,
				itemType:    string(item.Type),
				name:        item.Title,
				description: item.Description,
				cost:        item.Cost,
				included:    item.Included,
				day:         &dayNum,
				order:       &order,
				payload:     itemPayload{Kind: payloadActivity, DayDate: day.Date, Activity: &activity},
			})
		}
	}
	return out
}

func flightItem(f *domain.Flight, direction string) planItem {
	flight := *f
	price := f.PricePerPerson
	return planItem{
		id:          f.ID,
		itemType:    "flight",
		name:        f.Airline + " " + f.FlightNumber,
		description: f.OriginCode + " → " + f.DestinationCode,
		cost:        &price,
		included:    f.Included,
		payload:     itemPayload{Kind: payloadFlight, Direction: direction, Flight: &flight},
	}
}
