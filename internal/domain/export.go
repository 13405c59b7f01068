package domain

import (
	"time"

	"github.com/google/uuid"
)

// ExportRow is one line of a trip's itinerary export. It is a flat view:
// one row per activity, with the trip fields repeated on every row. A trip
// with no activities yields a single row whose activity fields are zero.
type ExportRow struct {
	TripID         uuid.UUID
	Destination    string
	StartsAt       time.Time
	EndsAt         time.Time
	EmailsToInvite []string

	ActivityTitle string
	// OccursAt is nil on the single row of a trip without activities.
	OccursAt *time.Time
}
