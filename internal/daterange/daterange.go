// Package daterange turns a sequence of calendar taps into a trip date range.
//
// A Selection moves through three states as days are tapped: empty, open
// (start only) and closed (start and end). The first tap opens a range, the
// second closes it, and a third starts over. The earlier day is always Start,
// whatever order the days were tapped in.
//
// Everything here is a pure function of its inputs. Nothing returns an error.
package daterange

import (
	"fmt"
	"time"
)

// DayLayout is the calendar widget's date key format.
const DayLayout = "2006-01-02"

// State is the tap-count state of a Selection.
type State int

const (
	// StateEmpty means no day has been tapped yet.
	StateEmpty State = iota
	// StateOpen means a start day is set and the range awaits its end.
	StateOpen
	// StateClosed means both start and end are set.
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Selection is the start/end pair owned by the selector.
// Both dates are normalized to UTC midnight. When both are set Start <= End;
// a hand-built value with the two reversed is read as if they were swapped.
// The zero value is the empty selection.
type Selection struct {
	Start *time.Time
	End   *time.Time
}

// Day truncates t to its calendar day in t's own location and returns it as
// UTC midnight, so that "2025-03-05 23:00 -03:00" stays the 5th.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD calendar key.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("daterange.ParseDay: %w", err)
	}
	return t, nil
}

// Key formats a day as the calendar's map key.
func Key(t time.Time) string {
	return Day(t).Format(DayLayout)
}

// New builds a Selection from optional start and end, reordering them if
// needed so the invariant holds. An end without a start becomes the start.
func New(start, end *time.Time) Selection {
	var sel Selection
	if start != nil {
		sel = Select(sel, *start)
	}
	if end != nil {
		sel = Select(sel, *end)
	}
	return sel
}

// State reports which of the three tap states s is in.
func (s Selection) State() State {
	switch {
	case s.Start == nil:
		return StateEmpty
	case s.End == nil:
		return StateOpen
	default:
		return StateClosed
	}
}

// Complete reports whether both ends of the range are set.
func (s Selection) Complete() bool {
	return s.State() == StateClosed
}

// Select applies one tap to cur and returns the next selection.
//
//   - empty:  the tap becomes Start.
//   - open:   a tap before Start swaps in as Start and the old Start becomes
//     End; any other tap (including Start itself) becomes End.
//   - closed: the previous range is discarded and the tap becomes Start.
func Select(cur Selection, tapped time.Time) Selection {
	day := Day(tapped)

	if cur.State() != StateOpen {
		return Selection{Start: &day}
	}

	start := Day(*cur.Start)
	if day.Before(start) {
		return Selection{Start: &day, End: &start}
	}
	return Selection{Start: &start, End: &day}
}

// Days returns the inclusive number of calendar days covered by s:
// 0 when empty, 1 when only Start is set.
func (s Selection) Days() int {
	switch s.State() {
	case StateEmpty:
		return 0
	case StateOpen:
		return 1
	}
	start, end := s.bounds()
	return int(end.Sub(start).Hours()/24) + 1
}

// Contains reports whether day falls inside the selected range.
// An open selection contains only its start day.
func (s Selection) Contains(day time.Time) bool {
	d := Day(day)
	switch s.State() {
	case StateEmpty:
		return false
	case StateOpen:
		return d.Equal(Day(*s.Start))
	}
	start, end := s.bounds()
	return !d.Before(start) && !d.After(end)
}

// Label renders a closed range as "05 to 10 of March". The month is always
// the start's month, even when the range crosses into the next one.
// Open and empty selections render as "".
func (s Selection) Label() string {
	if !s.Complete() {
		return ""
	}
	start, end := s.bounds()
	return fmt.Sprintf("%s to %s of %s", start.Format("02"), end.Format("02"), start.Month())
}

// bounds returns the first and last selected day in order. An open
// selection's bounds are both its start.
func (s Selection) bounds() (time.Time, time.Time) {
	start := Day(*s.Start)
	if s.End == nil {
		return start, start
	}
	end := Day(*s.End)
	if end.Before(start) {
		return end, start
	}
	return start, end
}
