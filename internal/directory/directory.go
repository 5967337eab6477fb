// Package directory provides the static lookup that resolves free-text city
// input to normalized Location records. It stands in for a live city-search
// provider and is consumed by intake validation.
package directory

import (
	"strings"
	"unicode/utf8"

	"github.com/tripweaver/backend/internal/domain"
)

// minKeywordLen is the shortest keyword worth matching. Shorter input always
// yields an empty result set, mirroring the city-search API contract.
const minKeywordLen = 2

// Directory serves location lookups over the canned table in data.go.
type Directory struct {
	locations []domain.Location
}

// New returns a Directory over the built-in location table.
func New() *Directory {
	return &Directory{locations: locations}
}

// Search returns all locations matching the keyword, case-insensitively,
// against the place name, the city name, and the IATA code. Keywords shorter
// than two runes return an empty non-nil slice.
//
// Returned records are copies; callers cannot corrupt the table.
func (d *Directory) Search(keyword string) []domain.Location {
	out := []domain.Location{}

	keyword = strings.TrimSpace(keyword)
	if utf8.RuneCountInString(keyword) < minKeywordLen {
		return out
	}
	needle := strings.ToLower(keyword)

	for _, loc := range d.locations {
		if strings.Contains(strings.ToLower(loc.Name), needle) ||
			strings.Contains(strings.ToLower(loc.CityName), needle) ||
			strings.EqualFold(loc.IATACode, keyword) {
			out = append(out, loc)
		}
	}
	return out
}
