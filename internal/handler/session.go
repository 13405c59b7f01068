package handler

import (
	"net/http"

	"github.com/google/uuid"
)

// RememberRequest is the body of PUT /session/trip.
type RememberRequest struct {
	TripID uuid.UUID `json:"trip_id"`
}

// ResumeTrip handles GET /session/trip. It returns the remembered trip, or
// 204 when there is none.
func (s *Server) ResumeTrip(w http.ResponseWriter, r *http.Request) {
	trip, ok, err := s.sessions.Resume(r.Context())
	if err != nil {
		writeError(w, r, err, "trip")
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// RememberTrip handles PUT /session/trip. The trip must exist.
func (s *Server) RememberTrip(w http.ResponseWriter, r *http.Request) {
	var body RememberRequest
	if !decodeBody(w, r, &body) {
		return
	}
	if body.TripID == uuid.Nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("trip_id is required"))
		return
	}

	if _, err := s.trips.GetByID(r.Context(), body.TripID); err != nil {
		writeError(w, r, err, "trip")
		return
	}
	if err := s.sessions.Remember(r.Context(), body.TripID); err != nil {
		writeError(w, r, err, "trip")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ForgetTrip handles DELETE /session/trip.
func (s *Server) ForgetTrip(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Forget(r.Context()); err != nil {
		writeError(w, r, err, "trip")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
