package domain

import (
	"fmt"
	"strings"
	"time"
)

// FlightClass is the cabin class requested for both flights of a trip.
type FlightClass string

const (
	ClassEconomy  FlightClass = "economy"
	ClassBusiness FlightClass = "business"
	ClassFirst    FlightClass = "first"
)

// Valid reports whether c is one of the three supported cabin classes.
func (c FlightClass) Valid() bool {
	switch c {
	case ClassEconomy, ClassBusiness, ClassFirst:
		return true
	}
	return false
}

// Passengers holds the traveler counts for a trip.
// Children and infants are billed at the full adult-equivalent rate by the
// cost aggregator — observed behavior, preserved deliberately.
type Passengers struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

// Total returns the traveler count used for per-person pricing.
func (p Passengers) Total() int {
	return p.Adults + p.Children + p.Infants
}

// TripDetails is the validated form input that drives itinerary generation.
// The normalized Locations are best-effort and may remain nil; the free-text
// city fields and both dates are required for a submittable TripDetails.
type TripDetails struct {
	DepartureCity       string      `json:"departureCity"`
	DestinationCity     string      `json:"destinationCity"`
	DepartureLocation   *Location   `json:"departureLocation,omitempty"`
	DestinationLocation *Location   `json:"destinationLocation,omitempty"`
	DepartureDate       *time.Time  `json:"departureDate,omitempty"`
	ReturnDate          *time.Time  `json:"returnDate,omitempty"`
	Passengers          Passengers  `json:"passengers"`
	FlightClass         FlightClass `json:"flightClass"`
	IncludeCarRental    bool        `json:"includeCarRental"`
	IncludeHotel        bool        `json:"includeHotel"`
}

// defaultNights is assumed when either date is missing. The generator
// tolerates absent dates; callers should validate before production use.
const defaultNights = 7

// Validate checks the submittability invariant: non-empty city text, both
// dates present, return not before departure, at least one adult, and a
// recognized cabin class. Errors wrap ErrValidation.
func (d TripDetails) Validate() error {
	if strings.TrimSpace(d.DepartureCity) == "" {
		return fmt.Errorf("%w: departure city is required", ErrValidation)
	}
	if strings.TrimSpace(d.DestinationCity) == "" {
		return fmt.Errorf("%w: destination city is required", ErrValidation)
	}
	if d.DepartureDate == nil || d.ReturnDate == nil {
		return fmt.Errorf("%w: departure and return dates are required", ErrValidation)
	}
	if d.ReturnDate.Before(*d.DepartureDate) {
		return fmt.Errorf("%w: return date must not precede departure date", ErrValidation)
	}
	if d.Passengers.Adults < 1 {
		return fmt.Errorf("%w: at least one adult is required", ErrValidation)
	}
	if d.Passengers.Children < 0 || d.Passengers.Infants < 0 {
		return fmt.Errorf("%w: passenger counts must not be negative", ErrValidation)
	}
	if d.FlightClass != "" && !d.FlightClass.Valid() {
		return fmt.Errorf("%w: unknown flight class %q", ErrValidation, d.FlightClass)
	}
	return nil
}

// Nights returns the number of hotel nights between the two dates,
// falling back to defaultNights when either date is missing.
// Same-day round trips count as one night so a hotel stay is never free.
func (d TripDetails) Nights() int {
	if d.DepartureDate == nil || d.ReturnDate == nil {
		return defaultNights
	}
	n := int(d.ReturnDate.Sub(*d.DepartureDate).Hours() / 24)
	if n < 1 {
		return 1
	}
	return n
}

// Days returns the number of trip days covered by the day-by-day itinerary.
// Departure and return days both count, so a trip of N nights spans N+1 days.
func (d TripDetails) Days() int {
	return d.Nights() + 1
}
