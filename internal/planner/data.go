package planner

// Canned supply-side data backing the generator. The tables are intentionally
// small; unknown destinations fall through to generic records so generation
// never fails on input it has not seen.

type airlineEntry struct {
	code string
	name string
}

var airlines = []airlineEntry{
	{"AF", "Air France"},
	{"BA", "British Airways"},
	{"LH", "Lufthansa"},
	{"EK", "Emirates"},
	{"SQ", "Singapore Airlines"},
	{"JL", "Japan Airlines"},
	{"DL", "Delta Air Lines"},
	{"TK", "Turkish Airlines"},
}

var carCompanies = []string{
	"Hertz",
	"Avis",
	"Enterprise",
	"Sixt",
	"Budget",
}

type carVehicle struct {
	class string
	model string
}

var carVehicles = []carVehicle{
	{"Compact", "Volkswagen Golf"},
	{"Compact SUV", "Toyota RAV4"},
	{"Sedan", "Honda Accord"},
	{"Economy", "Renault Clio"},
}

type hotelEntry struct {
	name     string
	rating   float64
	address  string
	distance string
}

// hotelsByCode carries a handful of recognizable hotels for common
// destinations; hotelFor falls back to a generic city-center record.
var hotelsByCode = map[string]hotelEntry{
	"TYO": {"Park Hotel Tokyo", 4.6, "1-7-1 Higashi-Shimbashi, Minato, Tokyo", "18 km from airport"},
	"HND": {"Park Hotel Tokyo", 4.6, "1-7-1 Higashi-Shimbashi, Minato, Tokyo", "18 km from airport"},
	"NRT": {"Park Hotel Tokyo", 4.6, "1-7-1 Higashi-Shimbashi, Minato, Tokyo", "60 km from airport"},
	"PAR": {"Pullman Paris Tour Eiffel", 4.5, "18 Avenue de Suffren, 75015 Paris", "25 km from airport"},
	"CDG": {"Pullman Paris Tour Eiffel", 4.5, "18 Avenue de Suffren, 75015 Paris", "25 km from airport"},
	"LON": {"The Hoxton Shoreditch", 4.5, "81 Great Eastern St, London", "22 km from airport"},
	"LHR": {"The Hoxton Shoreditch", 4.5, "81 Great Eastern St, London", "22 km from airport"},
	"NYC": {"Arlo Midtown", 4.4, "351 W 38th St, New York", "17 km from airport"},
	"JFK": {"Arlo Midtown", 4.4, "351 W 38th St, New York", "21 km from airport"},
	"DXB": {"Rove Downtown", 4.3, "312 Al Sa'ada Street, Dubai", "12 km from airport"},
	"IST": {"The Marmara Taksim", 4.4, "Taksim Square, Istanbul", "45 km from airport"},
	"BER": {"Michelberger Hotel", 4.5, "Warschauer Str. 39, Berlin", "25 km from airport"},
	"ROM": {"Hotel Artemide", 4.6, "Via Nazionale 22, Rome", "32 km from airport"},
	"BCN": {"Hotel Jazz", 4.4, "Carrer de Pelai 3, Barcelona", "15 km from airport"},
	"SIN": {"Hotel Boss", 4.2, "500 Jalan Sultan, Singapore", "20 km from airport"},
	"BKK": {"Chatrium Riverside", 4.6, "28 Charoenkrung Soi 70, Bangkok", "30 km from airport"},
}

func hotelFor(dest place) hotelEntry {
	if h, ok := hotelsByCode[dest.code]; ok {
		if h.distance == "" {
			h.distance = "15 km from airport"
		}
		return h
	}
	return hotelEntry{
		name:     "Grand " + dest.name + " Hotel",
		rating:   4.4,
		address:  "City Center, " + dest.name,
		distance: "15 km from airport",
	}
}

type attractionEntry struct {
	title       string
	description string
	cost        float64
}

// attractions is the rotating pool for middle trip days. Costs are per person.
var attractions = []attractionEntry{
	{"Old town walking tour", "Guided walk through the historic quarter", 18},
	{"City museum visit", "Permanent collection plus the current exhibition", 22},
	{"Harbor boat cruise", "One-hour sightseeing cruise with audio guide", 32},
	{"Food market tasting", "Street-food crawl through the central market", 28},
	{"Observation deck", "Panoramic views from the highest point in town", 25},
	{"Botanical gardens", "Morning among the greenhouses and ponds", 12},
	{"Cooking class", "Hands-on class with a local chef, lunch included", 45},
}
