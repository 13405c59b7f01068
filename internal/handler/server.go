// Package handler implements the HTTP handlers for the trip planner API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, trip.go, etc.) but share the same Server struct so they
// can reach its dependencies.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/service"
)

// TripServicer defines the business operations the trip handlers depend on.
// Declared here, in the consumer package, so handler tests can inject a mock
// without touching storage or the service layer.
type TripServicer interface {
	Create(ctx context.Context, in service.NewTrip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	Update(ctx context.Context, id uuid.UUID, in service.TripChanges) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ActivityServicer defines the business operations the activity handlers depend on.
type ActivityServicer interface {
	Create(ctx context.Context, in service.NewActivity) (domain.Activity, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Activity, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Agenda(ctx context.Context, tripID uuid.UUID, now time.Time) ([]service.AgendaDay, error)
}

// SessionServicer defines the current-trip operations the session handlers depend on.
type SessionServicer interface {
	Remember(ctx context.Context, id uuid.UUID) error
	Resume(ctx context.Context) (domain.Trip, bool, error)
	Forget(ctx context.Context) error
}

// ExportServicer defines the itinerary export the export handler depends on.
type ExportServicer interface {
	Export(ctx context.Context, tripID uuid.UUID) ([]domain.ExportRow, error)
}

// Server holds the dependencies shared by every handler.
type Server struct {
	trips      TripServicer
	activities ActivityServicer
	sessions   SessionServicer
	export     ExportServicer
	now        func() time.Time
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, activities ActivityServicer, sessions SessionServicer, export ExportServicer) *Server {
	return &Server{
		trips:      trips,
		activities: activities,
		sessions:   sessions,
		export:     export,
		now:        time.Now,
	}
}

// WithClock replaces the clock used to decide which activities are past.
func (s *Server) WithClock(now func() time.Time) *Server {
	s.now = now
	return s
}

// Routes registers every endpoint on a fresh chi router. Middleware is the
// caller's concern; main.go mounts this under its own middleware stack.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", s.CreateTrip)
		r.Get("/", s.ListTrips)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.UpdateTrip)
			r.Delete("/", s.DeleteTrip)
			r.Post("/activities", s.CreateActivity)
			r.Get("/activities", s.GetAgenda)
			r.Get("/export", s.GetExport)
		})
	})

	r.Route("/activities/{id}", func(r chi.Router) {
		r.Get("/", s.GetActivity)
		r.Delete("/", s.DeleteActivity)
	})

	r.Post("/date-selection", s.SelectDate)

	r.Route("/session/trip", func(r chi.Router) {
		r.Get("/", s.ResumeTrip)
		r.Put("/", s.RememberTrip)
		r.Delete("/", s.ForgetTrip)
	})

	return r
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil)
}
