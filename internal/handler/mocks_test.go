package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/handler"
	"github.com/pkordes/trip-planner/internal/service"
)

// mockTripServicer is a test double for handler.TripServicer.
// Set only the method fields your test needs.
type mockTripServicer struct {
	create    func(ctx context.Context, in service.NewTrip) (domain.Trip, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	listPaged func(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	update    func(ctx context.Context, id uuid.UUID, in service.TripChanges) (domain.Trip, error)
	delete    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripServicer) Create(ctx context.Context, in service.NewTrip) (domain.Trip, error) {
	return m.create(ctx, in)
}
func (m *mockTripServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripServicer) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockTripServicer) Update(ctx context.Context, id uuid.UUID, in service.TripChanges) (domain.Trip, error) {
	return m.update(ctx, id, in)
}
func (m *mockTripServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

// mockActivityServicer is a test double for handler.ActivityServicer.
type mockActivityServicer struct {
	create  func(ctx context.Context, in service.NewActivity) (domain.Activity, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Activity, error)
	delete  func(ctx context.Context, id uuid.UUID) error
	agenda  func(ctx context.Context, tripID uuid.UUID, now time.Time) ([]service.AgendaDay, error)
}

func (m *mockActivityServicer) Create(ctx context.Context, in service.NewActivity) (domain.Activity, error) {
	return m.create(ctx, in)
}
func (m *mockActivityServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Activity, error) {
	return m.getByID(ctx, id)
}
func (m *mockActivityServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}
func (m *mockActivityServicer) Agenda(ctx context.Context, tripID uuid.UUID, now time.Time) ([]service.AgendaDay, error) {
	return m.agenda(ctx, tripID, now)
}

// mockSessionServicer is a test double for handler.SessionServicer.
type mockSessionServicer struct {
	remember func(ctx context.Context, id uuid.UUID) error
	resume   func(ctx context.Context) (domain.Trip, bool, error)
	forget   func(ctx context.Context) error
}

func (m *mockSessionServicer) Remember(ctx context.Context, id uuid.UUID) error {
	return m.remember(ctx, id)
}
func (m *mockSessionServicer) Resume(ctx context.Context) (domain.Trip, bool, error) {
	return m.resume(ctx)
}
func (m *mockSessionServicer) Forget(ctx context.Context) error { return m.forget(ctx) }

// compile-time checks: the mocks must satisfy the handler interfaces.
var (
	_ handler.TripServicer     = (*mockTripServicer)(nil)
	_ handler.ActivityServicer = (*mockActivityServicer)(nil)
	_ handler.SessionServicer  = (*mockSessionServicer)(nil)
)

// ---- helpers ---------------------------------------------------------------

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func tripFixture() domain.Trip {
	return domain.Trip{
		ID:             uuid.New(),
		Destination:    "Florianópolis",
		StartsAt:       day("2025-03-05"),
		EndsAt:         day("2025-03-10"),
		EmailsToInvite: []string{"ana@example.com"},
		OwnerName:      "Trip Owner",
		OwnerEmail:     "owner@example.com",
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// serve runs one request through the full router.
func serve(srv *handler.Server, method, target string, body *bytes.Buffer) *httptest.ResponseRecorder {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, body)
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorDetail {
	t.Helper()
	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Error
}
