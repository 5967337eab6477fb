package directory

import "github.com/tripweaver/backend/internal/domain"

func f(v float64) *float64 { return &v }

// locations is the canned directory table. City records use the metropolitan
// IATA code; airport records repeat the city code in CityCode. The same city
// code can therefore appear on several records — identity is (IATACode,
// SubType), never the code alone.
var locations = []domain.Location{
	{Name: "Paris", IATACode: "PAR", SubType: domain.SubTypeCity, CityName: "Paris", CountryCode: "FR", CountryName: "France", Lat: f(48.8566), Lon: f(2.3522)},
	{Name: "Paris Charles de Gaulle", IATACode: "CDG", SubType: domain.SubTypeAirport, CityName: "Paris", CountryCode: "FR", CountryName: "France", Lat: f(49.0097), Lon: f(2.5479), CityCode: "PAR"},
	{Name: "Paris Orly", IATACode: "ORY", SubType: domain.SubTypeAirport, CityName: "Paris", CountryCode: "FR", CountryName: "France", Lat: f(48.7262), Lon: f(2.3652), CityCode: "PAR"},

	{Name: "Tokyo", IATACode: "TYO", SubType: domain.SubTypeCity, CityName: "Tokyo", CountryCode: "JP", CountryName: "Japan", Lat: f(35.6762), Lon: f(139.6503)},
	{Name: "Tokyo Haneda", IATACode: "HND", SubType: domain.SubTypeAirport, CityName: "Tokyo", CountryCode: "JP", CountryName: "Japan", Lat: f(35.5494), Lon: f(139.7798), CityCode: "TYO"},
	{Name: "Tokyo Narita", IATACode: "NRT", SubType: domain.SubTypeAirport, CityName: "Tokyo", CountryCode: "JP", CountryName: "Japan", Lat: f(35.7720), Lon: f(140.3929), CityCode: "TYO"},

	{Name: "London", IATACode: "LON", SubType: domain.SubTypeCity, CityName: "London", CountryCode: "GB", CountryName: "United Kingdom", Lat: f(51.5074), Lon: f(-0.1278)},
	{Name: "London Heathrow", IATACode: "LHR", SubType: domain.SubTypeAirport, CityName: "London", CountryCode: "GB", CountryName: "United Kingdom", Lat: f(51.4700), Lon: f(-0.4543), CityCode: "LON"},
	{Name: "London Gatwick", IATACode: "LGW", SubType: domain.SubTypeAirport, CityName: "London", CountryCode: "GB", CountryName: "United Kingdom", Lat: f(51.1537), Lon: f(-0.1821), CityCode: "LON"},

	{Name: "New York", IATACode: "NYC", SubType: domain.SubTypeCity, CityName: "New York", CountryCode: "US", CountryName: "United States", Lat: f(40.7128), Lon: f(-74.0060)},
	{Name: "New York John F. Kennedy", IATACode: "JFK", SubType: domain.SubTypeAirport, CityName: "New York", CountryCode: "US", CountryName: "United States", Lat: f(40.6413), Lon: f(-73.7781), CityCode: "NYC"},
	{Name: "Newark Liberty", IATACode: "EWR", SubType: domain.SubTypeAirport, CityName: "New York", CountryCode: "US", CountryName: "United States", Lat: f(40.6895), Lon: f(-74.1745), CityCode: "NYC"},

	{Name: "Dubai", IATACode: "DXB", SubType: domain.SubTypeCity, CityName: "Dubai", CountryCode: "AE", CountryName: "United Arab Emirates", Lat: f(25.2048), Lon: f(55.2708)},
	{Name: "Dubai International", IATACode: "DXB", SubType: domain.SubTypeAirport, CityName: "Dubai", CountryCode: "AE", CountryName: "United Arab Emirates", Lat: f(25.2532), Lon: f(55.3657), CityCode: "DXB"},

	{Name: "Istanbul", IATACode: "IST", SubType: domain.SubTypeCity, CityName: "Istanbul", CountryCode: "TR", CountryName: "Türkiye", Lat: f(41.0082), Lon: f(28.9784)},
	{Name: "Istanbul Airport", IATACode: "IST", SubType: domain.SubTypeAirport, CityName: "Istanbul", CountryCode: "TR", CountryName: "Türkiye", Lat: f(41.2753), Lon: f(28.7519), CityCode: "IST"},

	{Name: "Berlin", IATACode: "BER", SubType: domain.SubTypeCity, CityName: "Berlin", CountryCode: "DE", CountryName: "Germany", Lat: f(52.5200), Lon: f(13.4050)},
	{Name: "Berlin Brandenburg", IATACode: "BER", SubType: domain.SubTypeAirport, CityName: "Berlin", CountryCode: "DE", CountryName: "Germany", Lat: f(52.3667), Lon: f(13.5033), CityCode: "BER"},

	{Name: "Rome", IATACode: "ROM", SubType: domain.SubTypeCity, CityName: "Rome", CountryCode: "IT", CountryName: "Italy", Lat: f(41.9028), Lon: f(12.4964)},
	{Name: "Rome Fiumicino", IATACode: "FCO", SubType: domain.SubTypeAirport, CityName: "Rome", CountryCode: "IT", CountryName: "Italy", Lat: f(41.8003), Lon: f(12.2389), CityCode: "ROM"},

	{Name: "Barcelona", IATACode: "BCN", SubType: domain.SubTypeCity, CityName: "Barcelona", CountryCode: "ES", CountryName: "Spain", Lat: f(41.3874), Lon: f(2.1686)},
	{Name: "Barcelona El Prat", IATACode: "BCN", SubType: domain.SubTypeAirport, CityName: "Barcelona", CountryCode: "ES", CountryName: "Spain", Lat: f(41.2974), Lon: f(2.0833), CityCode: "BCN"},

	{Name: "Singapore", IATACode: "SIN", SubType: domain.SubTypeCity, CityName: "Singapore", CountryCode: "SG", CountryName: "Singapore", Lat: f(1.3521), Lon: f(103.8198)},
	{Name: "Singapore Changi", IATACode: "SIN", SubType: domain.SubTypeAirport, CityName: "Singapore", CountryCode: "SG", CountryName: "Singapore", Lat: f(1.3644), Lon: f(103.9915), CityCode: "SIN"},

	{Name: "Bangkok", IATACode: "BKK", SubType: domain.SubTypeCity, CityName: "Bangkok", CountryCode: "TH", CountryName: "Thailand", Lat: f(13.7563), Lon: f(100.5018)},
	{Name: "Bangkok Suvarnabhumi", IATACode: "BKK", SubType: domain.SubTypeAirport, CityName: "Bangkok", CountryCode: "TH", CountryName: "Thailand", Lat: f(13.6900), Lon: f(100.7501), CityCode: "BKK"},

	{Name: "Sydney", IATACode: "SYD", SubType: domain.SubTypeCity, CityName: "Sydney", CountryCode: "AU", CountryName: "Australia", Lat: f(-33.8688), Lon: f(151.2093)},
	{Name: "Sydney Kingsford Smith", IATACode: "SYD", SubType: domain.SubTypeAirport, CityName: "Sydney", CountryCode: "AU", CountryName: "Australia", Lat: f(-33.9399), Lon: f(151.1753), CityCode: "SYD"},
}
