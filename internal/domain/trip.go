// Package domain contains the core data types for the trip planner.
// It is imported by every other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is the top-level aggregate: where the group is going, when, and who
// has been invited. Activities belong to a trip.
//
// StartsAt and EndsAt are calendar days stored as UTC midnight.
type Trip struct {
	ID             uuid.UUID `json:"id"`
	Destination    string    `json:"destination"`
	StartsAt       time.Time `json:"starts_at"`
	EndsAt         time.Time `json:"ends_at"`
	EmailsToInvite []string  `json:"emails_to_invite"`
	OwnerName      string    `json:"owner_name"`
	OwnerEmail     string    `json:"owner_email"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
