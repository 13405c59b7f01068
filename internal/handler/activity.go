package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/service"
)

// ActivityRequest is the body of POST /trips/{id}/activities.
type ActivityRequest struct {
	Title string              `json:"title"`
	Date  *openapi_types.Date `json:"date,omitempty"`
	Hour  *int                `json:"hour,omitempty"`
}

// Activity is the wire form of domain.Activity.
type Activity struct {
	ID        uuid.UUID `json:"id"`
	TripID    uuid.UUID `json:"trip_id"`
	Title     string    `json:"title"`
	OccursAt  time.Time `json:"occurs_at"`
	CreatedAt time.Time `json:"created_at"`
}

// AgendaItem is one activity inside an agenda day.
type AgendaItem struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	OccursAt time.Time `json:"occurs_at"`
	Time     string    `json:"time"`
	Past     bool      `json:"past"`
}

// AgendaDay is one section of GET /trips/{id}/activities.
type AgendaDay struct {
	Date      openapi_types.Date `json:"date"`
	DayNumber int                `json:"day_number"`
	DayName   string             `json:"day_name"`
	Items     []AgendaItem       `json:"items"`
}

// CreateActivity handles POST /trips/{id}/activities.
func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathID(w, r)
	if !ok {
		return
	}
	var body ActivityRequest
	if !decodeBody(w, r, &body) {
		return
	}

	in := service.NewActivity{TripID: tripID, Hour: body.Hour, Title: body.Title}
	if body.Date != nil {
		in.Date = body.Date.Time
	}
	created, err := s.activities.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, err, "trip")
		return
	}

	writeJSON(w, http.StatusCreated, activityToResponse(created))
}

// GetAgenda handles GET /trips/{id}/activities. Every day of the trip is
// listed, including days with no activities.
func (s *Server) GetAgenda(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathID(w, r)
	if !ok {
		return
	}

	days, err := s.activities.Agenda(r.Context(), tripID, s.now())
	if err != nil {
		writeError(w, r, err, "trip")
		return
	}

	resp := make([]AgendaDay, len(days))
	for i, d := range days {
		items := make([]AgendaItem, len(d.Items))
		for j, it := range d.Items {
			items[j] = AgendaItem{ID: it.ID, Title: it.Title, OccursAt: it.OccursAt, Time: it.Time, Past: it.Past}
		}
		resp[i] = AgendaDay{
			Date:      openapi_types.Date{Time: d.Date},
			DayNumber: d.DayNumber,
			DayName:   d.DayName,
			Items:     items,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetActivity handles GET /activities/{id}.
func (s *Server) GetActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	a, err := s.activities.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "activity")
		return
	}

	writeJSON(w, http.StatusOK, activityToResponse(a))
}

// DeleteActivity handles DELETE /activities/{id}.
func (s *Server) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := s.activities.Delete(r.Context(), id); err != nil {
		writeError(w, r, err, "activity")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func activityToResponse(a domain.Activity) Activity {
	return Activity{
		ID:        a.ID,
		TripID:    a.TripID,
		Title:     a.Title,
		OccursAt:  a.OccursAt,
		CreatedAt: a.CreatedAt,
	}
}
