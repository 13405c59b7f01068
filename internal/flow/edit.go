package flow

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/daterange"
	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/service"
)

// EditState is where the update-trip flow is.
type EditState int

const (
	// EditClosed means the form is not shown. Nothing typed survives it.
	EditClosed EditState = iota
	// EditForm shows destination and dates for editing.
	EditForm
	// EditCalendar is the date picker stacked on the form.
	EditCalendar
)

func (s EditState) String() string {
	switch s {
	case EditClosed:
		return "closed"
	case EditForm:
		return "form"
	case EditCalendar:
		return "calendar"
	}
	return fmt.Sprintf("EditState(%d)", int(s))
}

// Edit is the update-trip flow on an existing trip's screen. The calendar
// is stacked on the form: dismissing it returns to the form, not the screen.
type Edit struct {
	tripID      uuid.UUID
	saved       string
	state       EditState
	destination string
	dates       daterange.Selection
	now         func() time.Time
}

// NewEdit prepares an update flow for trip. Each time the form opens the
// destination is prefilled with the trip's and the dates start empty.
func NewEdit(trip domain.Trip) *Edit {
	return &Edit{tripID: trip.ID, saved: trip.Destination, destination: trip.Destination, now: time.Now}
}

// WithClock replaces the clock that decides which calendar days are past.
func (e *Edit) WithClock(now func() time.Time) *Edit {
	e.now = now
	return e
}

func (e *Edit) State() EditState           { return e.state }
func (e *Edit) Destination() string        { return e.destination }
func (e *Edit) Dates() daterange.Selection { return e.dates }

// Open shows the update form.
func (e *Edit) Open() error {
	if e.state != EditClosed {
		return invalid("Edit.Open", e.state)
	}
	e.destination = e.saved
	e.dates = daterange.Selection{}
	e.state = EditForm
	return nil
}

// SetDestination edits the destination field.
func (e *Edit) SetDestination(name string) error {
	if e.state != EditForm {
		return invalid("Edit.SetDestination", e.state)
	}
	e.destination = name
	return nil
}

// OpenCalendar stacks the date picker over the form.
func (e *Edit) OpenCalendar() error {
	if e.state != EditForm {
		return invalid("Edit.OpenCalendar", e.state)
	}
	e.state = EditCalendar
	return nil
}

// TapDate feeds one calendar tap into the date selection. Days before today
// are rejected with domain.ErrValidation.
func (e *Edit) TapDate(day time.Time) error {
	if e.state != EditCalendar {
		return invalid("Edit.TapDate", e.state)
	}
	if daterange.Day(day).Before(daterange.Day(e.now())) {
		return fmt.Errorf("flow.Edit.TapDate: %w: trips cannot start or end in the past", domain.ErrValidation)
	}
	e.dates = daterange.Select(e.dates, day)
	return nil
}

// Close steps back one level: calendar to form, form to closed. Closing
// the form discards the unsaved destination and dates.
func (e *Edit) Close() error {
	switch e.state {
	case EditCalendar:
		e.state = EditForm
	case EditForm:
		e.state = EditClosed
		e.destination = e.saved
		e.dates = daterange.Selection{}
	default:
		return invalid("Edit.Close", e.state)
	}
	return nil
}

// Submit validates the form and writes the changes back through trips.
// On success the flow closes and clears its dates; on failure it stays on
// the form with the input intact.
func (e *Edit) Submit(ctx context.Context, trips TripUpdater) (domain.Trip, error) {
	if e.state != EditForm {
		return domain.Trip{}, invalid("Edit.Submit", e.state)
	}
	if err := checkDetails(strings.TrimSpace(e.destination), e.dates); err != nil {
		return domain.Trip{}, fmt.Errorf("flow.Edit.Submit: %w", err)
	}

	updated, err := trips.Update(ctx, e.tripID, service.TripChanges{
		Destination: e.destination,
		Dates:       e.dates,
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("flow.Edit.Submit: %w", err)
	}
	e.state = EditClosed
	e.saved = updated.Destination
	e.destination = updated.Destination
	e.dates = daterange.Selection{}
	return updated, nil
}
