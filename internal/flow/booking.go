package flow

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/pkordes/trip-planner/internal/daterange"
	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/service"
	"github.com/pkordes/trip-planner/internal/validate"
)

// Step is the booking form's current page.
type Step int

const (
	// StepTripDetails collects destination and dates.
	StepTripDetails Step = iota + 1
	// StepGuests collects invitee emails; details are read-only here.
	StepGuests
	// StepConfirmed means the trip was created. The flow accepts nothing
	// further except Reset.
	StepConfirmed
)

func (s Step) String() string {
	switch s {
	case StepTripDetails:
		return "trip_details"
	case StepGuests:
		return "guests"
	case StepConfirmed:
		return "confirmed"
	}
	return fmt.Sprintf("Step(%d)", int(s))
}

// BookingModal is the overlay open on top of the booking form.
type BookingModal int

const (
	// BookingNoModal means only the form itself is showing.
	BookingNoModal BookingModal = iota
	// BookingCalendar is the trip date picker.
	BookingCalendar
	// BookingGuests is the guest list editor.
	BookingGuests
)

func (m BookingModal) String() string {
	switch m {
	case BookingNoModal:
		return "none"
	case BookingCalendar:
		return "calendar"
	case BookingGuests:
		return "guests"
	}
	return fmt.Sprintf("BookingModal(%d)", int(m))
}

type bookingState struct {
	step  Step
	modal BookingModal
}

func (s bookingState) String() string { return s.step.String() + "/" + s.modal.String() }

// Booking is the create-a-trip flow: details, then guests, then confirm.
type Booking struct {
	state       bookingState
	destination string
	dates       daterange.Selection
	guests      []string
	trip        domain.Trip
	now         func() time.Time
}

// NewBooking starts a fresh booking on the details step with nothing selected.
func NewBooking() *Booking {
	return &Booking{state: bookingState{step: StepTripDetails}, now: time.Now}
}

// WithClock replaces the clock that decides which calendar days are past.
func (b *Booking) WithClock(now func() time.Time) *Booking {
	b.now = now
	return b
}

func (b *Booking) Step() Step                 { return b.state.step }
func (b *Booking) Modal() BookingModal        { return b.state.modal }
func (b *Booking) Destination() string        { return b.destination }
func (b *Booking) Dates() daterange.Selection { return b.dates }
func (b *Booking) Guests() []string           { return slices.Clone(b.guests) }

// Trip is the created trip once the flow reaches StepConfirmed.
func (b *Booking) Trip() domain.Trip { return b.trip }

// GuestsLabel summarizes the guest list for the closed form field.
func (b *Booking) GuestsLabel() string {
	if len(b.guests) == 0 {
		return ""
	}
	return fmt.Sprintf("%d guest(s) invited", len(b.guests))
}

// SetDestination edits the destination. Only allowed on the details step.
func (b *Booking) SetDestination(name string) error {
	if b.state != (bookingState{step: StepTripDetails}) {
		return invalid("Booking.SetDestination", b.state)
	}
	b.destination = name
	return nil
}

// OpenCalendar shows the date picker. Only allowed on the details step.
func (b *Booking) OpenCalendar() error {
	if b.state != (bookingState{step: StepTripDetails}) {
		return invalid("Booking.OpenCalendar", b.state)
	}
	b.state.modal = BookingCalendar
	return nil
}

// TapDate feeds one calendar tap into the date selection. Days before today
// are rejected with domain.ErrValidation and leave the selection unchanged.
func (b *Booking) TapDate(day time.Time) error {
	if b.state.modal != BookingCalendar {
		return invalid("Booking.TapDate", b.state)
	}
	if daterange.Day(day).Before(daterange.Day(b.now())) {
		return fmt.Errorf("flow.Booking.TapDate: %w: trips cannot start or end in the past", domain.ErrValidation)
	}
	b.dates = daterange.Select(b.dates, day)
	return nil
}

// OpenGuests shows the guest list editor. Only allowed on the guests step.
func (b *Booking) OpenGuests() error {
	if b.state != (bookingState{step: StepGuests}) {
		return invalid("Booking.OpenGuests", b.state)
	}
	b.state.modal = BookingGuests
	return nil
}

// CloseModal dismisses whatever overlay is open. Closing with none open is a no-op.
func (b *Booking) CloseModal() error {
	switch b.state.modal {
	case BookingNoModal:
		return nil
	case BookingCalendar, BookingGuests:
		b.state.modal = BookingNoModal
		return nil
	}
	return invalid("Booking.CloseModal", b.state)
}

// Invite adds a guest. The address is normalized; malformed or repeated
// addresses are rejected with domain.ErrValidation.
func (b *Booking) Invite(email string) error {
	if b.state.modal != BookingGuests {
		return invalid("Booking.Invite", b.state)
	}
	if !validate.Email(email) {
		return fmt.Errorf("flow.Booking.Invite: %w: invalid email", domain.ErrValidation)
	}
	n := validate.NormalizeEmail(email)
	if slices.Contains(b.guests, n) {
		return fmt.Errorf("flow.Booking.Invite: %w: email already invited", domain.ErrValidation)
	}
	b.guests = append(b.guests, n)
	return nil
}

// RemoveGuest drops a guest from the list. Unknown addresses are ignored.
func (b *Booking) RemoveGuest(email string) error {
	if b.state.modal != BookingGuests {
		return invalid("Booking.RemoveGuest", b.state)
	}
	n := validate.NormalizeEmail(email)
	b.guests = slices.DeleteFunc(b.guests, func(g string) bool { return g == n })
	return nil
}

// Next moves from the details step to the guests step once the details are
// complete.
func (b *Booking) Next() error {
	if b.state != (bookingState{step: StepTripDetails}) {
		return invalid("Booking.Next", b.state)
	}
	if err := checkDetails(strings.TrimSpace(b.destination), b.dates); err != nil {
		return fmt.Errorf("flow.Booking.Next: %w", err)
	}
	b.state.step = StepGuests
	return nil
}

// Back returns from the guests step to edit destination and dates.
func (b *Booking) Back() error {
	if b.state != (bookingState{step: StepGuests}) {
		return invalid("Booking.Back", b.state)
	}
	b.state.step = StepTripDetails
	return nil
}

// Confirm creates the trip and remembers it as the current trip.
//
// If creation fails the flow stays on the guests step. If only remembering
// fails, the trip still exists: the flow moves to StepConfirmed and the
// returned error wraps domain.ErrPersistence alongside the created trip.
func (b *Booking) Confirm(ctx context.Context, trips TripCreator, session TripRememberer) (domain.Trip, error) {
	if b.state != (bookingState{step: StepGuests}) {
		return domain.Trip{}, invalid("Booking.Confirm", b.state)
	}

	trip, err := trips.Create(ctx, service.NewTrip{
		Destination:    b.destination,
		Dates:          b.dates,
		EmailsToInvite: b.guests,
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("flow.Booking.Confirm: %w", err)
	}

	b.trip = trip
	b.state = bookingState{step: StepConfirmed}

	if err := session.Remember(ctx, trip.ID); err != nil {
		return trip, fmt.Errorf("flow.Booking.Confirm: trip saved but not remembered: %w", err)
	}
	return trip, nil
}

// Reset discards everything and starts over on the details step. The clock
// is kept.
func (b *Booking) Reset() {
	*b = Booking{state: bookingState{step: StepTripDetails}, now: b.now}
}
