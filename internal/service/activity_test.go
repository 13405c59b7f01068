package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
	"github.com/pkordes/trip-planner/internal/service"
)

func hour(h int) *int { return &h }

// newActivityFixture wires an ActivityService over in-memory repos holding
// one trip from 2025-03-05 to 2025-03-07.
func newActivityFixture(t *testing.T) (*service.ActivityService, domain.Trip) {
	t.Helper()
	trips := repo.NewMemoryTripRepo()
	trip, err := trips.Create(context.Background(), domain.Trip{
		Destination: "Florianópolis",
		StartsAt:    time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		EndsAt:      time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return service.NewActivityService(trips, repo.NewMemoryActivityRepo()), trip
}

func TestActivityService_Create(t *testing.T) {
	svc, trip := newActivityFixture(t)

	got, err := svc.Create(context.Background(), service.NewActivity{
		TripID: trip.ID,
		Date:   time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC),
		Hour:   hour(14),
		Title:  "  Lagoa da Conceição ",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.UUID{}, got.ID)
	assert.Equal(t, trip.ID, got.TripID)
	assert.Equal(t, "Lagoa da Conceição", got.Title)
	assert.Equal(t, time.Date(2025, 3, 6, 14, 0, 0, 0, time.UTC), got.OccursAt)
}

func TestActivityService_Create_Validation(t *testing.T) {
	svc, trip := newActivityFixture(t)
	inRange := time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC)

	cases := map[string]service.NewActivity{
		"missing title":  {TripID: trip.ID, Date: inRange, Hour: hour(9)},
		"missing date":   {TripID: trip.ID, Hour: hour(9), Title: "Beach"},
		"missing hour":   {TripID: trip.ID, Date: inRange, Title: "Beach"},
		"hour too large": {TripID: trip.ID, Date: inRange, Hour: hour(24), Title: "Beach"},
		"negative hour":  {TripID: trip.ID, Date: inRange, Hour: hour(-1), Title: "Beach"},
		"before trip":    {TripID: trip.ID, Date: inRange.AddDate(0, 0, -2), Hour: hour(9), Title: "Beach"},
		"after trip":     {TripID: trip.ID, Date: inRange.AddDate(0, 0, 2), Hour: hour(9), Title: "Beach"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestActivityService_Create_BoundaryDays(t *testing.T) {
	svc, trip := newActivityFixture(t)

	for _, d := range []time.Time{trip.StartsAt, trip.EndsAt} {
		_, err := svc.Create(context.Background(), service.NewActivity{
			TripID: trip.ID, Date: d, Hour: hour(23), Title: "Edge",
		})
		assert.NoError(t, err)
	}
}

func TestActivityService_Create_UnknownTrip(t *testing.T) {
	svc, _ := newActivityFixture(t)

	_, err := svc.Create(context.Background(), service.NewActivity{
		TripID: uuid.New(),
		Date:   time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC),
		Hour:   hour(9),
		Title:  "Beach",
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestActivityService_ListAndDelete(t *testing.T) {
	svc, trip := newActivityFixture(t)
	ctx := context.Background()

	empty, err := svc.ListByTripID(ctx, trip.ID)
	require.NoError(t, err)
	assert.NotNil(t, empty)

	a, err := svc.Create(ctx, service.NewActivity{
		TripID: trip.ID, Date: trip.StartsAt, Hour: hour(8), Title: "Breakfast",
	})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Breakfast", got.Title)

	require.NoError(t, svc.Delete(ctx, a.ID))
	_, err = svc.GetByID(ctx, a.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.ListByTripID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestActivityService_Agenda(t *testing.T) {
	svc, trip := newActivityFixture(t)
	ctx := context.Background()

	for _, in := range []service.NewActivity{
		{TripID: trip.ID, Date: trip.StartsAt.AddDate(0, 0, 1), Hour: hour(20), Title: "Dinner"},
		{TripID: trip.ID, Date: trip.StartsAt.AddDate(0, 0, 1), Hour: hour(9), Title: "Beach"},
		{TripID: trip.ID, Date: trip.StartsAt, Hour: hour(15), Title: "Check-in"},
	} {
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}

	now := time.Date(2025, 3, 6, 12, 0, 0, 0, time.UTC)
	days, err := svc.Agenda(ctx, trip.ID, now)

	require.NoError(t, err)
	require.Len(t, days, 3, "one section per trip day")

	assert.Equal(t, 5, days[0].DayNumber)
	assert.Equal(t, "Wednesday", days[0].DayName)
	require.Len(t, days[0].Items, 1)
	assert.True(t, days[0].Items[0].Past)

	require.Len(t, days[1].Items, 2)
	assert.Equal(t, "Beach", days[1].Items[0].Title)
	assert.Equal(t, "09:00h", days[1].Items[0].Time)
	assert.True(t, days[1].Items[0].Past)
	assert.Equal(t, "Dinner", days[1].Items[1].Title)
	assert.False(t, days[1].Items[1].Past)

	assert.Equal(t, 7, days[2].DayNumber)
	assert.NotNil(t, days[2].Items)
	assert.Empty(t, days[2].Items)
}

func TestActivityService_Agenda_UnknownTrip(t *testing.T) {
	svc, _ := newActivityFixture(t)

	_, err := svc.Agenda(context.Background(), uuid.New(), time.Now())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
