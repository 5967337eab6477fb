package domain

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus tracks whether a persisted trip carries its line items.
// A header row without items is a deliberate "preview" state (shown as a
// teaser requiring upgrade), not corrupt data.
type TripStatus string

const (
	// StatusPreview marks a trip header persisted without line items —
	// either intentionally or because the item insert failed after the
	// header insert succeeded.
	StatusPreview TripStatus = "preview"

	// StatusPlanned marks a trip whose line items were all persisted.
	StatusPlanned TripStatus = "planned"
)

// Trip is the persisted form of a planned trip: the header row plus the
// details it was generated from. Line items live in trip_items and are
// reassembled into a TripPlan on read-back.
type Trip struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"userId"`
	Details   TripDetails `json:"details"`
	Status    TripStatus  `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}
