// Package service contains the business logic for the trip planner.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No storage code lives here; services depend on repo interfaces only.
package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/daterange"
	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
	"github.com/pkordes/trip-planner/internal/validate"
)

// Owner identifies who creates trips on this device.
type Owner struct {
	Name  string
	Email string
}

// NewTrip is the input to TripService.Create.
type NewTrip struct {
	Destination    string
	Dates          daterange.Selection
	EmailsToInvite []string
}

// TripChanges is the input to TripService.Update. Invitees are not editable
// from the update form, so they are left as stored.
type TripChanges struct {
	Destination string
	Dates       daterange.Selection
}

// TripService implements business logic for Trip operations.
type TripService struct {
	repo  repo.TripRepo
	owner Owner
}

// NewTripService constructs a TripService backed by the provided TripRepo.
// Every trip it creates is stamped with owner.
func NewTripService(r repo.TripRepo, owner Owner) *TripService {
	return &TripService{repo: r, owner: owner}
}

// Create validates the trip details and guest list, then persists the trip.
// Returns domain.ErrValidation if the destination is missing or too short,
// the date range is incomplete, or any guest email is malformed or repeated.
func (s *TripService) Create(ctx context.Context, in NewTrip) (domain.Trip, error) {
	dates, err := validateDetails(in.Destination, in.Dates)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	emails, err := normalizeGuests(in.EmailsToInvite)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}

	trip := domain.Trip{
		Destination:    strings.TrimSpace(in.Destination),
		StartsAt:       *dates.Start,
		EndsAt:         *dates.End,
		EmailsToInvite: emails,
		OwnerName:      s.owner.Name,
		OwnerEmail:     s.owner.Email,
	}

	created, err := s.repo.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return created, nil
}

// GetByID returns a single trip by id.
// Returns domain.ErrNotFound if no trip with that id exists.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// List returns all trips. Always returns a non-nil slice.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// ListPaged returns one page of trips and the total count.
func (s *TripService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	trips, total, err := s.repo.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TripService.ListPaged: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, total, nil
}

// Update changes a trip's destination and dates and writes them back.
// Returns domain.ErrValidation for invalid input and domain.ErrNotFound if
// the trip does not exist.
func (s *TripService) Update(ctx context.Context, id uuid.UUID, in TripChanges) (domain.Trip, error) {
	dates, err := validateDetails(in.Destination, in.Dates)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}

	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	trip.Destination = strings.TrimSpace(in.Destination)
	trip.StartsAt = *dates.Start
	trip.EndsAt = *dates.End

	updated, err := s.repo.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a trip by id.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// summaryDestinationLen is how much of the destination fits in the trip header.
const summaryDestinationLen = 14

// Summary renders the one-line trip header, e.g.
// "Florianópolis, from 05 to 10 of Mar.". Long destinations are cut to
// fit and suffixed with "...". The month is the start date's.
func Summary(t domain.Trip) string {
	dest := t.Destination
	if utf8.RuneCountInString(dest) > summaryDestinationLen {
		dest = string([]rune(dest)[:summaryDestinationLen]) + "..."
	}
	return fmt.Sprintf("%s, from %s to %s of %s.",
		dest, t.StartsAt.Format("02"), t.EndsAt.Format("02"), t.StartsAt.Format("Jan"))
}

// validateDetails enforces the trip-details rules shared by Create and Update
// and returns the dates as day-normalized, ordered bounds.
//   - Destination must be non-empty and at least validate.MinDestinationLen characters.
//   - Both ends of the date range must be selected.
func validateDetails(destination string, dates daterange.Selection) (daterange.Selection, error) {
	if strings.TrimSpace(destination) == "" || !dates.Complete() {
		return daterange.Selection{}, fmt.Errorf("%w: destination and a start and end date are required", domain.ErrValidation)
	}
	if !validate.Destination(destination) {
		return daterange.Selection{}, fmt.Errorf("%w: destination must be at least %d characters", domain.ErrValidation, validate.MinDestinationLen)
	}
	return daterange.New(dates.Start, dates.End), nil
}

// normalizeGuests validates every guest address and returns them normalized.
func normalizeGuests(emails []string) ([]string, error) {
	out := make([]string, 0, len(emails))
	seen := make(map[string]bool, len(emails))
	for _, e := range emails {
		if !validate.Email(e) {
			return nil, fmt.Errorf("%w: invalid email %q", domain.ErrValidation, e)
		}
		n := validate.NormalizeEmail(e)
		if seen[n] {
			return nil, fmt.Errorf("%w: email %q already invited", domain.ErrValidation, n)
		}
		seen[n] = true
		out = append(out, n)
	}
	return out, nil
}
