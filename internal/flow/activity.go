package flow

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkordes/trip-planner/internal/daterange"
	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/service"
)

// ActivityState is where the new-activity flow is.
type ActivityState int

const (
	// ActivityClosed means no draft is being edited.
	ActivityClosed ActivityState = iota
	// ActivityForm shows title, date and hour.
	ActivityForm
	// ActivityCalendar is the day picker, limited to the trip's dates.
	ActivityCalendar
)

func (s ActivityState) String() string {
	switch s {
	case ActivityClosed:
		return "closed"
	case ActivityForm:
		return "form"
	case ActivityCalendar:
		return "calendar"
	}
	return fmt.Sprintf("ActivityState(%d)", int(s))
}

// ActivityDraft is the new-activity flow for one trip. The date picker only
// offers days inside the trip.
type ActivityDraft struct {
	trip  domain.Trip
	state ActivityState
	title string
	date  time.Time
	hour  *int
}

// NewActivityDraft prepares a closed new-activity flow for trip.
func NewActivityDraft(trip domain.Trip) *ActivityDraft {
	return &ActivityDraft{trip: trip}
}

func (d *ActivityDraft) State() ActivityState { return d.state }
func (d *ActivityDraft) Title() string        { return d.title }

// Date is the picked day, or the zero time when none is picked.
func (d *ActivityDraft) Date() time.Time { return d.date }

// Hour is the entered hour, or nil when blank.
func (d *ActivityDraft) Hour() *int { return d.hour }

// DateLabel renders the picked day as "06 of March", or "" when unset.
func (d *ActivityDraft) DateLabel() string {
	if d.date.IsZero() {
		return ""
	}
	return d.date.Format("02") + " of " + d.date.Month().String()
}

// Open shows the new-activity form.
func (d *ActivityDraft) Open() error {
	if d.state != ActivityClosed {
		return invalid("ActivityDraft.Open", d.state)
	}
	d.state = ActivityForm
	return nil
}

// SetTitle edits the title field.
func (d *ActivityDraft) SetTitle(title string) error {
	if d.state != ActivityForm {
		return invalid("ActivityDraft.SetTitle", d.state)
	}
	d.title = title
	return nil
}

// SetHour parses the two-digit hour field. Dots and commas typed by numeric
// keypads are dropped; an empty field clears the hour.
func (d *ActivityDraft) SetHour(text string) error {
	if d.state != ActivityForm {
		return invalid("ActivityDraft.SetHour", d.state)
	}
	text = strings.NewReplacer(".", "", ",", "").Replace(strings.TrimSpace(text))
	if text == "" {
		d.hour = nil
		return nil
	}
	h, err := strconv.Atoi(text)
	if err != nil || len(text) > 2 {
		return fmt.Errorf("flow.ActivityDraft.SetHour: %w: hour must be a number from 0 to 23", domain.ErrValidation)
	}
	d.hour = &h
	return nil
}

// OpenCalendar stacks the date picker over the form.
func (d *ActivityDraft) OpenCalendar() error {
	if d.state != ActivityForm {
		return invalid("ActivityDraft.OpenCalendar", d.state)
	}
	d.state = ActivityCalendar
	return nil
}

// PickDate selects the activity day. Days outside the trip are rejected.
func (d *ActivityDraft) PickDate(day time.Time) error {
	if d.state != ActivityCalendar {
		return invalid("ActivityDraft.PickDate", d.state)
	}
	if !daterange.New(&d.trip.StartsAt, &d.trip.EndsAt).Contains(day) {
		return fmt.Errorf("flow.ActivityDraft.PickDate: %w: day is outside the trip", domain.ErrValidation)
	}
	d.date = daterange.Day(day)
	return nil
}

// ConfirmDate returns from the date picker to the form, keeping the pick.
func (d *ActivityDraft) ConfirmDate() error {
	if d.state != ActivityCalendar {
		return invalid("ActivityDraft.ConfirmDate", d.state)
	}
	d.state = ActivityForm
	return nil
}

// Cancel dismisses the current overlay. Dismissing the date picker closes
// the whole flow and forgets the picked day; dismissing the form closes it
// and keeps what was typed.
func (d *ActivityDraft) Cancel() error {
	switch d.state {
	case ActivityCalendar:
		d.date = time.Time{}
		d.state = ActivityClosed
	case ActivityForm:
		d.state = ActivityClosed
	default:
		return invalid("ActivityDraft.Cancel", d.state)
	}
	return nil
}

// Save creates the activity. On success every field is cleared and the flow
// closes; on failure the form stays open with its input.
func (d *ActivityDraft) Save(ctx context.Context, activities ActivityCreator) (domain.Activity, error) {
	if d.state != ActivityForm {
		return domain.Activity{}, invalid("ActivityDraft.Save", d.state)
	}
	if strings.TrimSpace(d.title) == "" || d.date.IsZero() || d.hour == nil {
		return domain.Activity{}, fmt.Errorf("flow.ActivityDraft.Save: %w: fill in every field", domain.ErrValidation)
	}

	created, err := activities.Create(ctx, service.NewActivity{
		TripID: d.trip.ID,
		Date:   d.date,
		Hour:   d.hour,
		Title:  d.title,
	})
	if err != nil {
		return domain.Activity{}, fmt.Errorf("flow.ActivityDraft.Save: %w", err)
	}

	*d = ActivityDraft{trip: d.trip}
	return created, nil
}
