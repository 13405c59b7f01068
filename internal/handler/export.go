package handler

import (
	"encoding/csv"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/trip-planner/internal/domain"
)

// csvHeaders defines the column names written as the first row of a CSV export.
var csvHeaders = []string{
	"trip_id", "destination", "starts_at", "ends_at", "emails_to_invite",
	"activity_title", "occurs_at",
}

// ExportRow is the JSON form of one itinerary line.
type ExportRow struct {
	TripID         uuid.UUID          `json:"trip_id"`
	Destination    string             `json:"destination"`
	StartsAt       openapi_types.Date `json:"starts_at"`
	EndsAt         openapi_types.Date `json:"ends_at"`
	EmailsToInvite []string           `json:"emails_to_invite"`
	ActivityTitle  *string            `json:"activity_title,omitempty"`
	OccursAt       *time.Time         `json:"occurs_at,omitempty"`
}

// GetExport handles GET /trips/{id}/export.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathID(w, r)
	if !ok {
		return
	}

	format := r.URL.Query().Get("format")
	if format != "" && format != "json" && format != "csv" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: ErrorDetail{
			Code:    "bad_request",
			Message: "format must be json or csv",
		}})
		return
	}

	rows, err := s.export.Export(r.Context(), tripID)
	if err != nil {
		writeError(w, r, err, "trip")
		return
	}

	if format == "csv" {
		writeCSV(w, rows)
		return
	}

	out := make([]ExportRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, exportRowToResponse(row))
	}
	writeJSON(w, http.StatusOK, out)
}

// writeCSV encodes rows as CSV. Invitees within a row are pipe-separated
// ("|") to keep each activity on a single CSV line.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="itinerary.csv"`)
	w.WriteHeader(http.StatusOK)

	cw := csv.NewWriter(w)
	_ = cw.Write(csvHeaders)
	for _, row := range rows {
		_ = cw.Write(exportRowToCSVRecord(row))
	}
	cw.Flush()
}

func exportRowToResponse(r domain.ExportRow) ExportRow {
	row := ExportRow{
		TripID:         r.TripID,
		Destination:    r.Destination,
		StartsAt:       openapi_types.Date{Time: r.StartsAt},
		EndsAt:         openapi_types.Date{Time: r.EndsAt},
		EmailsToInvite: r.EmailsToInvite,
		OccursAt:       r.OccursAt,
	}
	if row.EmailsToInvite == nil {
		row.EmailsToInvite = []string{}
	}
	if r.ActivityTitle != "" {
		row.ActivityTitle = &r.ActivityTitle
	}
	return row
}

func exportRowToCSVRecord(r domain.ExportRow) []string {
	occursAt := ""
	if r.OccursAt != nil {
		occursAt = r.OccursAt.UTC().Format(time.RFC3339)
	}
	return []string{
		r.TripID.String(),
		r.Destination,
		r.StartsAt.Format(time.DateOnly),
		r.EndsAt.Format(time.DateOnly),
		strings.Join(r.EmailsToInvite, "|"),
		r.ActivityTitle,
		occursAt,
	}
}
