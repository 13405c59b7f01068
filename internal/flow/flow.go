// Package flow models the planner's multi-step forms as explicit state
// machines, independent of any rendering. Each flow exposes its current
// state as a small enum and only accepts the inputs that make sense in that
// state; anything else fails with ErrInvalidTransition and leaves the flow
// unchanged.
//
// Input problems a user can fix (a short destination, a malformed email)
// wrap domain.ErrValidation instead.
package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/daterange"
	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/service"
	"github.com/pkordes/trip-planner/internal/validate"
)

// ErrInvalidTransition is returned when an input is not accepted in the
// flow's current state.
var ErrInvalidTransition = errors.New("invalid transition")

// TripCreator creates trips. *service.TripService satisfies it.
type TripCreator interface {
	Create(ctx context.Context, in service.NewTrip) (domain.Trip, error)
}

// TripUpdater writes trip changes back. *service.TripService satisfies it.
type TripUpdater interface {
	Update(ctx context.Context, id uuid.UUID, in service.TripChanges) (domain.Trip, error)
}

// TripRememberer records the current trip. *service.SessionService satisfies it.
type TripRememberer interface {
	Remember(ctx context.Context, id uuid.UUID) error
}

// ActivityCreator creates activities. *service.ActivityService satisfies it.
type ActivityCreator interface {
	Create(ctx context.Context, in service.NewActivity) (domain.Activity, error)
}

func invalid(op string, state fmt.Stringer) error {
	return fmt.Errorf("flow.%s: %w in state %s", op, ErrInvalidTransition, state)
}

// checkDetails applies the trip-details rules before leaving a form, so the
// user is prompted without a round trip to the service.
func checkDetails(destination string, dates daterange.Selection) error {
	if destination == "" || !dates.Complete() {
		return fmt.Errorf("%w: fill in the destination and the trip dates to continue", domain.ErrValidation)
	}
	if !validate.Destination(destination) {
		return fmt.Errorf("%w: destination must be at least %d characters", domain.ErrValidation, validate.MinDestinationLen)
	}
	return nil
}
