package repo

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
)

// memoryTripRepo is the in-memory trips table. Lookups are linear scans,
// which is all a single user's handful of trips needs.
type memoryTripRepo struct {
	mu    sync.RWMutex
	trips []domain.Trip
	now   func() time.Time
	// onDelete runs with the deleted trip's id while the trip lock is held.
	onDelete func(tripID uuid.UUID)
}

// NewMemoryTripRepo returns an empty in-memory TripRepo, optionally seeded.
func NewMemoryTripRepo(seed ...domain.Trip) TripRepo {
	return &memoryTripRepo{trips: slices.Clone(seed), now: time.Now}
}

// NewMemoryStore returns an empty trips table and activities table linked
// the way the Postgres schema links them: deleting a trip deletes its
// activities.
func NewMemoryStore() (TripRepo, ActivityRepo) {
	activities := &memoryActivityRepo{now: time.Now}
	trips := &memoryTripRepo{now: time.Now, onDelete: activities.deleteByTripID}
	return trips, activities
}

func (r *memoryTripRepo) Create(_ context.Context, trip domain.Trip) (domain.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	trip.ID = uuid.New()
	trip.EmailsToInvite = slices.Clone(nonNil(trip.EmailsToInvite))
	trip.CreatedAt = now
	trip.UpdatedAt = now
	r.trips = append(r.trips, trip)
	return cloneTrip(trip), nil
}

func (r *memoryTripRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.Trip{}, fmt.Errorf("repo.memoryTripRepo.GetByID: %w", domain.ErrNotFound)
	}
	return cloneTrip(r.trips[i]), nil
}

func (r *memoryTripRepo) List(_ context.Context) ([]domain.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sorted(), nil
}

func (r *memoryTripRepo) ListPaged(_ context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.sorted()
	total := int64(len(all))
	lo := min(p.Offset(), len(all))
	hi := lo + min(max(p.Limit, 0), len(all)-lo)
	return all[lo:hi], total, nil
}

func (r *memoryTripRepo) Update(_ context.Context, trip domain.Trip) (domain.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(trip.ID)
	if i < 0 {
		return domain.Trip{}, fmt.Errorf("repo.memoryTripRepo.Update: %w", domain.ErrNotFound)
	}

	cur := r.trips[i]
	cur.Destination = trip.Destination
	cur.StartsAt = trip.StartsAt
	cur.EndsAt = trip.EndsAt
	cur.EmailsToInvite = slices.Clone(nonNil(trip.EmailsToInvite))
	cur.UpdatedAt = r.now().UTC()
	r.trips[i] = cur
	return cloneTrip(cur), nil
}

func (r *memoryTripRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("repo.memoryTripRepo.Delete: %w", domain.ErrNotFound)
	}
	r.trips = slices.Delete(r.trips, i, i+1)
	if r.onDelete != nil {
		r.onDelete(id)
	}
	return nil
}

func (r *memoryTripRepo) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(r.trips, func(t domain.Trip) bool { return t.ID == id })
}

// sorted returns copies ordered like the Postgres repo: starts_at DESC.
func (r *memoryTripRepo) sorted() []domain.Trip {
	out := make([]domain.Trip, len(r.trips))
	for i, t := range r.trips {
		out[i] = cloneTrip(t)
	}
	slices.SortStableFunc(out, func(a, b domain.Trip) int {
		return b.StartsAt.Compare(a.StartsAt)
	})
	return out
}

// cloneTrip copies the invitee slice so callers cannot mutate the table.
func cloneTrip(t domain.Trip) domain.Trip {
	t.EmailsToInvite = slices.Clone(t.EmailsToInvite)
	return t
}

// memoryActivityRepo is the in-memory activities table.
type memoryActivityRepo struct {
	mu         sync.RWMutex
	activities []domain.Activity
	now        func() time.Time
}

// NewMemoryActivityRepo returns an empty in-memory ActivityRepo, optionally seeded.
func NewMemoryActivityRepo(seed ...domain.Activity) ActivityRepo {
	return &memoryActivityRepo{activities: slices.Clone(seed), now: time.Now}
}

func (r *memoryActivityRepo) Create(_ context.Context, a domain.Activity) (domain.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a.ID = uuid.New()
	a.CreatedAt = r.now().UTC()
	r.activities = append(r.activities, a)
	return a, nil
}

func (r *memoryActivityRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := slices.IndexFunc(r.activities, func(a domain.Activity) bool { return a.ID == id })
	if i < 0 {
		return domain.Activity{}, fmt.Errorf("repo.memoryActivityRepo.GetByID: %w", domain.ErrNotFound)
	}
	return r.activities[i], nil
}

func (r *memoryActivityRepo) ListByTripID(_ context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Activity
	for _, a := range r.activities {
		if a.TripID == tripID {
			out = append(out, a)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.Activity) int {
		return a.OccursAt.Compare(b.OccursAt)
	})
	return out, nil
}

func (r *memoryActivityRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := slices.IndexFunc(r.activities, func(a domain.Activity) bool { return a.ID == id })
	if i < 0 {
		return fmt.Errorf("repo.memoryActivityRepo.Delete: %w", domain.ErrNotFound)
	}
	r.activities = slices.Delete(r.activities, i, i+1)
	return nil
}

func (r *memoryActivityRepo) deleteByTripID(tripID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.activities = slices.DeleteFunc(r.activities, func(a domain.Activity) bool { return a.TripID == tripID })
}
