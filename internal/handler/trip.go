package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/trip-planner/internal/daterange"
	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/service"
)

// TripRequest is the body of POST /trips and PUT /trips/{id}.
// EmailsToInvite is ignored on update.
type TripRequest struct {
	Destination    string              `json:"destination"`
	StartsAt       *openapi_types.Date `json:"starts_at,omitempty"`
	EndsAt         *openapi_types.Date `json:"ends_at,omitempty"`
	EmailsToInvite []string            `json:"emails_to_invite,omitempty"`
}

// Trip is the wire form of domain.Trip.
type Trip struct {
	ID             uuid.UUID          `json:"id"`
	Destination    string             `json:"destination"`
	StartsAt       openapi_types.Date `json:"starts_at"`
	EndsAt         openapi_types.Date `json:"ends_at"`
	EmailsToInvite []string           `json:"emails_to_invite"`
	OwnerName      string             `json:"owner_name"`
	OwnerEmail     string             `json:"owner_email"`
	Summary        string             `json:"summary"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// Pagination describes one page of a list response.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// TripList is the body of GET /trips.
type TripList struct {
	Data       []Trip     `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var body TripRequest
	if !decodeBody(w, r, &body) {
		return
	}

	created, err := s.trips.Create(r.Context(), service.NewTrip{
		Destination:    body.Destination,
		Dates:          selectionFrom(body.StartsAt, body.EndsAt),
		EmailsToInvite: body.EmailsToInvite,
	})
	if err != nil {
		writeError(w, r, err, "trip")
		return
	}

	writeJSON(w, http.StatusCreated, tripToResponse(created))
}

// ListTrips handles GET /trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	page, ok := queryInt(w, r, "page")
	if !ok {
		return
	}
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}

	params := domain.NewPaginationParams(page, limit)
	trips, total, err := s.trips.ListPaged(r.Context(), params)
	if err != nil {
		writeError(w, r, err, "trip")
		return
	}

	data := make([]Trip, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t)
	}
	writeJSON(w, http.StatusOK, TripList{
		Data: data,
		Pagination: Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	})
}

// GetTrip handles GET /trips/{id}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "trip")
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// UpdateTrip handles PUT /trips/{id}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var body TripRequest
	if !decodeBody(w, r, &body) {
		return
	}

	updated, err := s.trips.Update(r.Context(), id, service.TripChanges{
		Destination: body.Destination,
		Dates:       selectionFrom(body.StartsAt, body.EndsAt),
	})
	if err != nil {
		writeError(w, r, err, "trip")
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(updated))
}

// DeleteTrip handles DELETE /trips/{id}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := s.trips.Delete(r.Context(), id); err != nil {
		writeError(w, r, err, "trip")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

// selectionFrom builds a date selection from optional wire dates. The two
// dates go through the selector, so a reversed pair is reordered.
func selectionFrom(start, end *openapi_types.Date) daterange.Selection {
	return daterange.New(dateTime(start), dateTime(end))
}

func dateTime(d *openapi_types.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

// tripToResponse converts a domain.Trip into its wire form.
func tripToResponse(t domain.Trip) Trip {
	emails := t.EmailsToInvite
	if emails == nil {
		emails = []string{}
	}
	return Trip{
		ID:             t.ID,
		Destination:    t.Destination,
		StartsAt:       openapi_types.Date{Time: t.StartsAt},
		EndsAt:         openapi_types.Date{Time: t.EndsAt},
		EmailsToInvite: emails,
		OwnerName:      t.OwnerName,
		OwnerEmail:     t.OwnerEmail,
		Summary:        service.Summary(t),
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

// queryInt reads an optional integer query parameter. It writes a 400 and
// returns false when the value is present but not a number.
func queryInt(w http.ResponseWriter, r *http.Request, name string) (*int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: ErrorDetail{
			Code:    "bad_request",
			Message: name + " must be an integer",
		}})
		return nil, false
	}
	return &n, true
}
