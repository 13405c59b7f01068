package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/daterange"
	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
)

// NewActivity is the input to ActivityService.Create. Date is the calendar
// day picked for the activity and Hour the hour of that day (0-23). A zero
// Date or nil Hour means the field was left blank.
type NewActivity struct {
	TripID uuid.UUID
	Date   time.Time
	Hour   *int
	Title  string
}

// AgendaItem is one activity as shown in a day's list.
type AgendaItem struct {
	ID       uuid.UUID
	Title    string
	OccursAt time.Time
	// Time is the activity's time of day, e.g. "09:00h".
	Time string
	// Past reports whether the activity has already happened.
	Past bool
}

// AgendaDay is one section of the trip's activity list.
type AgendaDay struct {
	Date      time.Time
	DayNumber int
	DayName   string
	Items     []AgendaItem
}

// ActivityService implements business logic for Activity operations.
// It holds the trips repo because every activity must fall inside its
// trip's date range.
type ActivityService struct {
	trips      repo.TripRepo
	activities repo.ActivityRepo
}

// NewActivityService constructs an ActivityService backed by the provided repos.
func NewActivityService(trips repo.TripRepo, activities repo.ActivityRepo) *ActivityService {
	return &ActivityService{trips: trips, activities: activities}
}

// Create validates the activity, checks it falls within the parent trip,
// then persists it.
// Returns domain.ErrNotFound if the trip does not exist and
// domain.ErrValidation if a field is blank, the hour is out of range, or the
// day is outside the trip.
func (s *ActivityService) Create(ctx context.Context, in NewActivity) (domain.Activity, error) {
	if strings.TrimSpace(in.Title) == "" || in.Date.IsZero() || in.Hour == nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w: title, date and hour are required", domain.ErrValidation)
	}
	if *in.Hour < 0 || *in.Hour > 23 {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w: hour must be between 0 and 23", domain.ErrValidation)
	}

	trip, err := s.trips.GetByID(ctx, in.TripID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	if !tripDates(trip).Contains(in.Date) {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w: date must be between %s and %s",
			domain.ErrValidation, daterange.Key(trip.StartsAt), daterange.Key(trip.EndsAt))
	}

	activity := domain.Activity{
		TripID:   trip.ID,
		OccursAt: daterange.Day(in.Date).Add(time.Duration(*in.Hour) * time.Hour),
		Title:    strings.TrimSpace(in.Title),
	}
	created, err := s.activities.Create(ctx, activity)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return created, nil
}

// GetByID returns a single activity.
func (s *ActivityService) GetByID(ctx context.Context, id uuid.UUID) (domain.Activity, error) {
	a, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.GetByID: %w", err)
	}
	return a, nil
}

// ListByTripID returns a trip's activities in chronological order.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *ActivityService) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByTripID: %w", err)
	}
	list, err := s.activities.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByTripID: %w", err)
	}
	if list == nil {
		return []domain.Activity{}, nil
	}
	return list, nil
}

// Delete removes an activity.
func (s *ActivityService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.activities.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ActivityService.Delete: %w", err)
	}
	return nil
}

// Agenda groups a trip's activities into one section per day. Every day of
// the trip gets a section, even an empty one. Activities are flagged Past
// relative to now.
func (s *ActivityService) Agenda(ctx context.Context, tripID uuid.UUID, now time.Time) ([]AgendaDay, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.Agenda: %w", err)
	}
	list, err := s.activities.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.Agenda: %w", err)
	}
	return buildAgenda(tripDates(trip), list, now), nil
}

func buildAgenda(dates daterange.Selection, list []domain.Activity, now time.Time) []AgendaDay {
	byDay := make(map[string]*AgendaDay)
	var order []string

	section := func(day time.Time) *AgendaDay {
		key := daterange.Key(day)
		if d, ok := byDay[key]; ok {
			return d
		}
		d := daterange.Day(day)
		byDay[key] = &AgendaDay{
			Date:      d,
			DayNumber: d.Day(),
			DayName:   d.Weekday().String(),
			Items:     []AgendaItem{},
		}
		order = append(order, key)
		return byDay[key]
	}

	dates.Each(func(day time.Time) { section(day) })

	for _, a := range list {
		d := section(a.OccursAt)
		d.Items = append(d.Items, AgendaItem{
			ID:       a.ID,
			Title:    a.Title,
			OccursAt: a.OccursAt,
			Time:     a.OccursAt.Format("15:04") + "h",
			Past:     a.OccursAt.Before(now),
		})
	}

	// YYYY-MM-DD keys sort chronologically.
	slices.Sort(order)
	out := make([]AgendaDay, len(order))
	for i, key := range order {
		d := byDay[key]
		slices.SortStableFunc(d.Items, func(a, b AgendaItem) int { return a.OccursAt.Compare(b.OccursAt) })
		out[i] = *d
	}
	return out
}

func tripDates(t domain.Trip) daterange.Selection {
	return daterange.New(&t.StartsAt, &t.EndsAt)
}
