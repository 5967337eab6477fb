// Package planner holds the itinerary generator, the cost aggregator, and the
// inclusion toggle. Everything here is pure computation over domain types —
// no I/O, no clocks, no global randomness. The generator stands in for a
// future supply-side search integration and must keep the exact output shape
// so downstream code never special-cases mock vs real data.
package planner

import (
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tripweaver/backend/internal/domain"
)

// Base prices for the fabricated round trip, in whole currency units.
// Economy per-person fares; cabin class scales them.
const (
	outboundBaseFare = 356
	returnBaseFare   = 378
	carPricePerDay   = 65
	hotelPerNight    = 250
	mealCost         = 35
	transferCost     = 25
)

// classMultiplier scales the economy base fare per cabin class.
func classMultiplier(c domain.FlightClass) float64 {
	switch c {
	case domain.ClassBusiness:
		return 2.5
	case domain.ClassFirst:
		return 4
	default:
		return 1
	}
}

// Generator fabricates a TripPlan from validated trip details.
// Output is deterministic for given inputs except for item identifiers,
// which come from NewID. Inject a counter there to assert exact output.
type Generator struct {
	NewID func() string
}

// NewGenerator returns a Generator using random UUIDs for item IDs.
func NewGenerator() *Generator {
	return &Generator{NewID: uuid.NewString}
}

// Generate fabricates the full plan: one outbound and one return flight,
// a car rental iff requested, a hotel iff requested, and one day plan per
// trip day with 2-4 items each. Every item starts Included.
//
// Missing dates are tolerated by producing empty date strings and a default
// seven-night duration; callers should treat absent dates as a precondition
// violation for production use.
func (g *Generator) Generate(d domain.TripDetails) domain.TripPlan {
	origin := placeOf(d.DepartureCity, d.DepartureLocation)
	dest := placeOf(d.DestinationCity, d.DestinationLocation)

	class := d.FlightClass
	if class == "" {
		class = domain.ClassEconomy
	}
	mult := classMultiplier(class)

	plan := domain.TripPlan{
		OutboundFlight: g.flight(origin, dest, d.DepartureDate, class, roundFare(outboundBaseFare*mult), false),
		ReturnFlight:   g.flight(dest, origin, d.ReturnDate, class, roundFare(returnBaseFare*mult), true),
	}

	if d.IncludeCarRental {
		plan.CarRental = g.carRental(dest, d)
	}
	if d.IncludeHotel {
		plan.Hotel = g.hotel(dest, d)
	}
	plan.Itinerary = g.days(dest, d)
	plan.TotalCost = TotalCost(plan, d.Passengers)
	return plan
}

// place is the resolved name+code pair for one end of the trip.
type place struct {
	name string
	code string
}

// placeOf prefers the normalized location; free text is the fallback, with a
// synthetic code derived from the first letters of the city name.
func placeOf(city string, loc *domain.Location) place {
	if loc != nil {
		return place{name: loc.Name, code: loc.IATACode}
	}
	city = strings.TrimSpace(city)
	code := strings.ToUpper(city)
	code = strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r
		}
		return -1
	}, code)
	if len(code) > 3 {
		code = code[:3]
	}
	return place{name: city, code: code}
}

func (g *Generator) flight(from, to place, date *time.Time, class domain.FlightClass, fare float64, isReturn bool) *domain.Flight {
	route := from.code + "-" + to.code
	airline := airlines[pick(route, len(airlines))]

	dep, arr, dur := "08:45", "16:30", "7h 45m"
	if isReturn {
		dep, arr, dur = "10:15", "18:05", "7h 50m"
	}

	return &domain.Flight{
		ID:              g.NewID(),
		Airline:         airline.name,
		FlightNumber:    fmt.Sprintf("%s %d", airline.code, 100+pick(route, 800)),
		OriginName:      from.name,
		OriginCode:      from.code,
		DestinationName: to.name,
		DestinationCode: to.code,
		DepartureTime:   stamp(date, dep),
		ArrivalTime:     stamp(date, arr),
		Duration:        dur,
		Class:           class,
		PricePerPerson:  fare,
		Included:        true,
	}
}

func (g *Generator) carRental(dest place, d domain.TripDetails) *domain.CarRental {
	company := carCompanies[pick(dest.code, len(carCompanies))]
	vehicle := carVehicles[pick(dest.name, len(carVehicles))]
	days := d.Days()

	return &domain.CarRental{
		ID:              g.NewID(),
		Company:         company,
		VehicleType:     vehicle.class,
		VehicleName:     vehicle.model,
		PickupLocation:  dest.name + " Airport",
		PickupTime:      stamp(d.DepartureDate, "17:30"),
		DropoffLocation: dest.name + " Airport",
		DropoffTime:     stamp(d.ReturnDate, "08:00"),
		PricePerDay:     carPricePerDay,
		TotalPrice:      float64(carPricePerDay * days),
		Included:        true,
	}
}

func (g *Generator) hotel(dest place, d domain.TripDetails) *domain.Hotel {
	nights := d.Nights()
	h := hotelFor(dest)

	return &domain.Hotel{
		ID:                  g.NewID(),
		Name:                h.name,
		Rating:              h.rating,
		Address:             h.address,
		DistanceFromAirport: h.distance,
		PricePerNight:       hotelPerNight,
		TotalPrice:          float64(hotelPerNight * nights),
		Amenities:           []string{"Free WiFi", "Breakfast included", "Fitness center", "24h front desk"},
		Included:            true,
	}
}

// days builds the day-by-day schedule. Day 1 carries the arrival flight item
// and hotel check-in; middle days rotate through the attraction pool; the
// final day is the transfer back. Every day stays within 2-4 items.
func (g *Generator) days(dest place, d domain.TripDetails) []domain.DayItinerary {
	total := d.Days()
	out := make([]domain.DayItinerary, 0, total)

	for day := 1; day <= total; day++ {
		di := domain.DayItinerary{
			Day:  day,
			Date: dayDate(d.DepartureDate, day),
		}

		switch {
		case day == 1:
			di.Items = append(di.Items,
				g.item("08:45", "Flight to "+dest.name, "Departure from "+d.DepartureCity, domain.ItemFlight, nil),
				g.item("18:30", "Hotel check-in", "Settle in and drop off luggage", domain.ItemHotel, nil),
				g.item("20:00", "Welcome dinner", "Local cuisine near the hotel", domain.ItemMeal, cost(mealCost)),
			)
		case day == total:
			di.Items = append(di.Items,
				g.item("09:00", "Breakfast and packing", "Last stroll around the neighborhood", domain.ItemMeal, cost(mealCost)),
				g.item("11:30", "Airport transfer", "Private transfer to the airport", domain.ItemTransport, cost(transferCost)),
			)
		default:
			a := attractions[(day-2)%len(attractions)]
			di.Items = append(di.Items,
				g.item("10:00", a.title+" in "+dest.name, a.description, domain.ItemAttraction, cost(a.cost)),
				g.item("13:30", "Lunch break", "Recommended local restaurant", domain.ItemMeal, cost(mealCost)),
				g.item("16:00", "Afternoon at leisure", "Free time to explore on your own", domain.ItemRest, nil),
			)
			if day%2 == 0 {
				b := attractions[(day-1)%len(attractions)]
				di.Items = append(di.Items,
					g.item("19:00", b.title, b.description, domain.ItemAttraction, cost(b.cost)),
				)
			}
		}

		out = append(out, di)
	}
	return out
}

func (g *Generator) item(at, title, desc string, typ domain.ItemType, cost *float64) domain.ItineraryItem {
	return domain.ItineraryItem{
		ID:          g.NewID(),
		Time:        at,
		Title:       title,
		Description: desc,
		Type:        typ,
		Cost:        cost,
		Included:    true,
	}
}

// stamp joins an optional date with a time-of-day string.
// A nil date yields the bare time, the tolerated placeholder form.
func stamp(date *time.Time, clock string) string {
	if date == nil {
		return clock
	}
	return date.Format("2006-01-02") + " " + clock
}

// dayDate returns the calendar date of the 1-based trip day, or "" without dates.
func dayDate(departure *time.Time, day int) string {
	if departure == nil {
		return ""
	}
	return departure.AddDate(0, 0, day-1).Format("2006-01-02")
}

func cost(v float64) *float64 { return &v }

// roundFare snaps a scaled fare to a whole currency unit.
func roundFare(v float64) float64 {
	return float64(int(v + 0.5))
}

// pick maps a seed string onto [0, n) deterministically.
func pick(seed string, n int) int {
	if n <= 0 {
		return 0
	}
	h := fnv.New32a()
	h.Write([]byte(seed))
	return int(h.Sum32() % uint32(n))
}
