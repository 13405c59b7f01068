package daterange

import (
	"encoding/json"
	"fmt"
	"time"
)

// Mark is how the calendar should paint a single day of the selection.
type Mark int

const (
	// MarkSingle is a lone selected day: an open range, or a one-day range.
	MarkSingle Mark = iota + 1
	// MarkStart is the left edge of a multi-day range.
	MarkStart
	// MarkEnd is the right edge of a multi-day range.
	MarkEnd
	// MarkInRange fills a day strictly between Start and End.
	MarkInRange
)

var markNames = map[Mark]string{
	MarkSingle:  "single",
	MarkStart:   "start",
	MarkEnd:     "end",
	MarkInRange: "in_range",
}

func (m Mark) String() string {
	if name, ok := markNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mark(%d)", int(m))
}

// MarshalJSON encodes the mark by name.
func (m Mark) MarshalJSON() ([]byte, error) {
	name, ok := markNames[m]
	if !ok {
		return nil, fmt.Errorf("daterange.Mark: unknown mark %d", int(m))
	}
	return json.Marshal(name)
}

// UnmarshalJSON decodes a mark from its name.
func (m *Mark) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	for k, v := range markNames {
		if v == name {
			*m = k
			return nil
		}
	}
	return fmt.Errorf("daterange.Mark: unknown mark %q", name)
}

// MarkedDates maps a YYYY-MM-DD key to the mark for that day.
type MarkedDates map[string]Mark

// Marked derives the calendar marking for s. The result is always non-nil
// and has exactly s.Days() entries.
func (s Selection) Marked() MarkedDates {
	out := make(MarkedDates, s.Days())

	switch s.State() {
	case StateEmpty:
		return out
	case StateOpen:
		out[Key(*s.Start)] = MarkSingle
		return out
	}

	start, end := s.bounds()
	if start.Equal(end) {
		out[Key(start)] = MarkSingle
		return out
	}

	out[Key(start)] = MarkStart
	for d := start.AddDate(0, 0, 1); d.Before(end); d = d.AddDate(0, 0, 1) {
		out[Key(d)] = MarkInRange
	}
	out[Key(end)] = MarkEnd
	return out
}

// Each calls fn for every day of the selection in chronological order.
func (s Selection) Each(fn func(day time.Time)) {
	if s.State() == StateEmpty {
		return
	}
	start, end := s.bounds()
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}
