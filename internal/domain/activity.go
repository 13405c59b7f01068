package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a titled event scheduled at a point in time during a trip.
type Activity struct {
	ID        uuid.UUID `json:"id"`
	TripID    uuid.UUID `json:"trip_id"`
	OccursAt  time.Time `json:"occurs_at"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}
