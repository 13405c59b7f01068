package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
	"github.com/pkordes/trip-planner/internal/session"
)

// SessionService remembers the current trip across restarts.
// Persistence is best effort: read failures are treated as "no trip" and
// write failures are reported to the caller without undoing anything.
type SessionService struct {
	store session.CurrentTripStore
	trips repo.TripRepo
	log   *slog.Logger
}

// NewSessionService constructs a SessionService.
func NewSessionService(store session.CurrentTripStore, trips repo.TripRepo, log *slog.Logger) *SessionService {
	return &SessionService{store: store, trips: trips, log: log}
}

// Remember stores id as the current trip.
// Returns an error wrapping domain.ErrPersistence if the write fails.
func (s *SessionService) Remember(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Save(ctx, id); err != nil {
		return fmt.Errorf("service.SessionService.Remember: %w", err)
	}
	return nil
}

// Resume returns the remembered trip. ok is false when nothing is stored,
// when the store cannot be read, or when the stored value is unusable.
// A stored value that is not an id, or an id that no longer resolves, is
// cleared. Only unexpected repo errors are returned.
func (s *SessionService) Resume(ctx context.Context) (trip domain.Trip, ok bool, err error) {
	id, found, err := s.store.Get(ctx)
	if errors.Is(err, session.ErrCorrupt) {
		s.log.WarnContext(ctx, "discarding unreadable current trip", "error", err)
		s.clearStale(ctx, uuid.Nil)
		return domain.Trip{}, false, nil
	}
	if err != nil {
		s.log.WarnContext(ctx, "reading current trip failed", "error", err)
		return domain.Trip{}, false, nil
	}
	if !found {
		return domain.Trip{}, false, nil
	}

	trip, err = s.trips.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		s.clearStale(ctx, id)
		return domain.Trip{}, false, nil
	}
	if err != nil {
		return domain.Trip{}, false, fmt.Errorf("service.SessionService.Resume: %w", err)
	}
	return trip, true, nil
}

func (s *SessionService) clearStale(ctx context.Context, id uuid.UUID) {
	if err := s.store.Clear(ctx); err != nil {
		s.log.WarnContext(ctx, "clearing stale current trip failed", "trip_id", id, "error", err)
	}
}

// Forget clears the current trip.
func (s *SessionService) Forget(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("service.SessionService.Forget: %w", err)
	}
	return nil
}
