// Package domain contains the core data types for the trip-planner backend.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (planner, repo, service, handler).
package domain

// LocationSubType distinguishes city records from airport records.
// Multiple airports can share a city's primary IATA code, so identity is
// the (IATACode, SubType) pair, not the code alone.
type LocationSubType string

const (
	SubTypeCity    LocationSubType = "CITY"
	SubTypeAirport LocationSubType = "AIRPORT"
)

// Location is a normalized place record resolved from free-text city input.
// Values are immutable once returned by the directory.
type Location struct {
	Name        string          `json:"name"`
	IATACode    string          `json:"iataCode"`
	SubType     LocationSubType `json:"subType"`
	CityName    string          `json:"cityName"`
	CountryCode string          `json:"countryCode,omitempty"`
	CountryName string          `json:"countryName,omitempty"`
	Lat         *float64        `json:"lat,omitempty"`
	Lon         *float64        `json:"lon,omitempty"`
	CityCode    string          `json:"cityCode,omitempty"`
}
