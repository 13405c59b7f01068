package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
)

// ExportService flattens a trip and its activities into export rows.
type ExportService struct {
	trips      repo.TripRepo
	activities repo.ActivityRepo
}

// NewExportService constructs an ExportService backed by the provided repos.
func NewExportService(trips repo.TripRepo, activities repo.ActivityRepo) *ExportService {
	return &ExportService{trips: trips, activities: activities}
}

// Export returns one row per activity of the trip, in chronological order.
// A trip with no activities yields one row with empty activity fields.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *ExportService) Export(ctx context.Context, tripID uuid.UUID) ([]domain.ExportRow, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}
	list, err := s.activities.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	base := domain.ExportRow{
		TripID:         trip.ID,
		Destination:    trip.Destination,
		StartsAt:       trip.StartsAt,
		EndsAt:         trip.EndsAt,
		EmailsToInvite: trip.EmailsToInvite,
	}
	if len(list) == 0 {
		return []domain.ExportRow{base}, nil
	}

	rows := make([]domain.ExportRow, len(list))
	for i, a := range list {
		row := base
		row.ActivityTitle = a.Title
		at := a.OccursAt
		row.OccursAt = &at
		rows[i] = row
	}
	return rows, nil
}
