package handler

import (
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/trip-planner/internal/daterange"
)

// DateSelectionRequest is the body of POST /date-selection: the current
// selection plus the day the user tapped.
type DateSelectionRequest struct {
	Start  *openapi_types.Date `json:"start,omitempty"`
	End    *openapi_types.Date `json:"end,omitempty"`
	Tapped *openapi_types.Date `json:"tapped"`
}

// DateSelection is the selection after the tap, ready to paint.
type DateSelection struct {
	Start       *openapi_types.Date   `json:"start,omitempty"`
	End         *openapi_types.Date   `json:"end,omitempty"`
	State       string                `json:"state"`
	Label       string                `json:"label"`
	MarkedDates daterange.MarkedDates `json:"marked_dates"`
}

// SelectDate handles POST /date-selection. It is stateless: clients send
// back the previous response's start and end with each tap.
func (s *Server) SelectDate(w http.ResponseWriter, r *http.Request) {
	var body DateSelectionRequest
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Tapped == nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("tapped is required"))
		return
	}

	next := daterange.Select(selectionFrom(body.Start, body.End), body.Tapped.Time)
	writeJSON(w, http.StatusOK, selectionToResponse(next))
}

func selectionToResponse(sel daterange.Selection) DateSelection {
	resp := DateSelection{
		State:       sel.State().String(),
		Label:       sel.Label(),
		MarkedDates: sel.Marked(),
	}
	if sel.Start != nil {
		resp.Start = &openapi_types.Date{Time: *sel.Start}
	}
	if sel.End != nil {
		resp.End = &openapi_types.Date{Time: *sel.End}
	}
	return resp
}
