package domain

// ItemType categorizes a single itinerary activity.
type ItemType string

const (
	ItemFlight     ItemType = "flight"
	ItemTransport  ItemType = "transport"
	ItemHotel      ItemType = "hotel"
	ItemMeal       ItemType = "meal"
	ItemAttraction ItemType = "attraction"
	ItemRest       ItemType = "rest"
)

// Flight is one leg of the round trip. Two instances exist per plan
// (outbound and return), each independently toggleable.
type Flight struct {
	ID              string      `json:"id"`
	Airline         string      `json:"airline"`
	FlightNumber    string      `json:"flightNumber"`
	OriginName      string      `json:"originName"`
	OriginCode      string      `json:"originCode"`
	DestinationName string      `json:"destinationName"`
	DestinationCode string      `json:"destinationCode"`
	DepartureTime   string      `json:"departureTime"`
	ArrivalTime     string      `json:"arrivalTime"`
	Duration        string      `json:"duration"`
	Class           FlightClass `json:"class"`
	PricePerPerson  float64     `json:"pricePerPerson"`
	Included        bool        `json:"included"`
}

// CarRental is the optional rental car. At most one per plan.
type CarRental struct {
	ID              string  `json:"id"`
	Company         string  `json:"company"`
	VehicleType     string  `json:"vehicleType"`
	VehicleName     string  `json:"vehicleName"`
	PickupLocation  string  `json:"pickupLocation"`
	PickupTime      string  `json:"pickupTime"`
	DropoffLocation string  `json:"dropoffLocation"`
	DropoffTime     string  `json:"dropoffTime"`
	PricePerDay     float64 `json:"pricePerDay"`
	TotalPrice      float64 `json:"totalPrice"`
	Included        bool    `json:"included"`
}

// Hotel is the optional accommodation. At most one per plan.
type Hotel struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Rating              float64  `json:"rating"`
	Address             string   `json:"address"`
	DistanceFromAirport string   `json:"distanceFromAirport"`
	PricePerNight       float64  `json:"pricePerNight"`
	TotalPrice          float64  `json:"totalPrice"`
	Amenities           []string `json:"amenities"`
	Included            bool     `json:"included"`
}

// ItineraryItem is a single scheduled activity within a day.
// Cost is per person and nil for free items (e.g. rest blocks).
type ItineraryItem struct {
	ID          string   `json:"id"`
	Time        string   `json:"time"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        ItemType `json:"type"`
	Cost        *float64 `json:"cost,omitempty"`
	Included    bool     `json:"included"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	BookingURL  string   `json:"bookingUrl,omitempty"`
}

// DayItinerary groups the ordered activities of one trip day. Day is 1-based.
type DayItinerary struct {
	Day   int             `json:"day"`
	Date  string          `json:"date"`
	Items []ItineraryItem `json:"items"`
}

// TripPlan is the full generated itinerary. It is created once by the
// generator and thereafter only mutated by flipping Included flags.
//
// TotalCost is a cached display value, not authoritative: the cost aggregator
// recomputes the real total from current Included flags on every change.
type TripPlan struct {
	OutboundFlight *Flight        `json:"outboundFlight,omitempty"`
	ReturnFlight   *Flight        `json:"returnFlight,omitempty"`
	CarRental      *CarRental     `json:"carRental,omitempty"`
	Hotel          *Hotel         `json:"hotel,omitempty"`
	Itinerary      []DayItinerary `json:"itinerary"`
	TotalCost      float64        `json:"totalCost"`
}

// ToggleTarget names the slot of a plan whose Included flag is to be flipped.
type ToggleTarget string

const (
	ToggleOutboundFlight ToggleTarget = "outboundFlight"
	ToggleReturnFlight   ToggleTarget = "returnFlight"
	ToggleCarRental      ToggleTarget = "carRental"
	ToggleHotel          ToggleTarget = "hotel"
	ToggleItinerary      ToggleTarget = "itinerary"
)
