package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	bookingserrors "hotelbooking/internal/bookings/errors"
	apperrors "hotelbooking/pkg/errors"
	"hotelbooking/pkg/logger"
	"hotelbooking/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type mockBookingService struct {
	bookFunc      func(ctx context.Context, req *model.BookingRequest) (string, error)
	availableFunc func(ctx context.Context, q *model.AvailabilityQuery) ([]model.Room, error)
	lookupFunc    func(ctx context.Context, reference string) (*model.BookingDetail, error)
}

func (m *mockBookingService) Book(ctx context.Context, req *model.BookingRequest) (string, error) {
	if m.bookFunc != nil {
		return m.bookFunc(ctx, req)
	}
	return "0123456789abcdef0123456789abcdef", nil
}

func (m *mockBookingService) Available(ctx context.Context, q *model.AvailabilityQuery) ([]model.Room, error) {
	if m.availableFunc != nil {
		return m.availableFunc(ctx, q)
	}
	return []model.Room{}, nil
}

func (m *mockBookingService) GetByReference(ctx context.Context, reference string) (*model.BookingDetail, error) {
	if m.lookupFunc != nil {
		return m.lookupFunc(ctx, reference)
	}
	return nil, apperrors.NotFoundWithID("Booking", reference)
}

func serve(svc *mockBookingService, method, target, body string) *httptest.ResponseRecorder {
	router := httprouter.New()
	NewBookingHandler(svc, logger.Discard()).RegisterRoutes(router)

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestCreate(t *testing.T) {
	var received *model.BookingRequest
	svc := &mockBookingService{
		bookFunc: func(ctx context.Context, req *model.BookingRequest) (string, error) {
			received = req
			return "0123456789abcdef0123456789abcdef", nil
		},
	}

	rec := serve(svc, http.MethodPost, "/api/v1/bookings", `{"hotel_id":1,"from":"2026-01-01","to":"2026-01-03T12:00:00+02:00","people":2}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	data, _ := decodeBody(t, rec)["data"].(map[string]any)
	if data["booking_reference"] != "0123456789abcdef0123456789abcdef" {
		t.Errorf("unexpected body %v", data)
	}

	if received.HotelID != 1 || received.People != 2 {
		t.Errorf("unexpected request %+v", received)
	}
	if !received.From.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected from %v", received.From)
	}
	if !received.To.Equal(time.Date(2026, 1, 3, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected to %v", received.To)
	}
}

func TestCreate_InvalidBodies(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"hotel_id":`},
		{"unknown field", `{"hotel_id":1,"from":"2026-01-01","to":"2026-01-02","people":1,"room":3}`},
		{"missing from", `{"hotel_id":1,"to":"2026-01-02","people":1}`},
		{"bad date", `{"hotel_id":1,"from":"01/02/2026","to":"2026-01-02","people":1}`},
		{"two objects", `{"hotel_id":1,"from":"2026-01-01","to":"2026-01-02","people":1}{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			svc := &mockBookingService{
				bookFunc: func(ctx context.Context, req *model.BookingRequest) (string, error) {
					called = true
					return "", nil
				},
			}

			rec := serve(svc, http.MethodPost, "/api/v1/bookings", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
			if called {
				t.Errorf("service must not be called for an invalid body")
			}
		})
	}
}

func TestCreate_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"hotel not found", apperrors.NotFoundWithID("Hotel", "9").WithCause(bookingserrors.ErrHotelNotFound), http.StatusNotFound, apperrors.CodeNotFound},
		{"invalid range", apperrors.InvalidInput("'from' must be strictly before 'to'").WithCause(bookingserrors.ErrInvalidRange), http.StatusBadRequest, apperrors.CodeInvalidInput},
		{"no suitable room", apperrors.Exhausted("No suitable room"), http.StatusUnprocessableEntity, apperrors.CodeExhausted},
		{"room unavailable", apperrors.Conflict("Room already booked for selected dates"), http.StatusConflict, apperrors.CodeConflict},
		{"internal", apperrors.Internal("Failed to create booking", nil), http.StatusInternalServerError, apperrors.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockBookingService{
				bookFunc: func(ctx context.Context, req *model.BookingRequest) (string, error) {
					return "", tt.err
				},
			}

			rec := serve(svc, http.MethodPost, "/api/v1/bookings", `{"hotel_id":9,"from":"2026-01-01","to":"2026-01-02","people":1}`)
			if rec.Code != tt.status {
				t.Errorf("expected %d, got %d", tt.status, rec.Code)
			}
			body := decodeBody(t, rec)
			if body["code"] != tt.code {
				t.Errorf("expected code %s, got %v", tt.code, body["code"])
			}
			if body["error"] == "" {
				t.Errorf("expected an error message")
			}
		})
	}
}

func TestGetByReference(t *testing.T) {
	svc := &mockBookingService{
		lookupFunc: func(ctx context.Context, reference string) (*model.BookingDetail, error) {
			if reference != "0123456789abcdef0123456789abcdef" {
				return nil, apperrors.NotFoundWithID("Booking", reference)
			}
			return &model.BookingDetail{
				Reference:    reference,
				HotelID:      1,
				HotelName:    "River View Retreat",
				RoomID:       3,
				RoomType:     model.RoomTypeDouble,
				RoomCapacity: 2,
				People:       2,
			}, nil
		},
	}

	rec := serve(svc, http.MethodGet, "/api/v1/bookings/reference/0123456789abcdef0123456789abcdef", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data, _ := decodeBody(t, rec)["data"].(map[string]any)
	if data["hotel_name"] != "River View Retreat" || data["room_type"] != "Double" {
		t.Errorf("unexpected detail %v", data)
	}

	rec = serve(svc, http.MethodGet, "/api/v1/bookings/reference/ffff", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestAvailability(t *testing.T) {
	var received *model.AvailabilityQuery
	svc := &mockBookingService{
		availableFunc: func(ctx context.Context, q *model.AvailabilityQuery) ([]model.Room, error) {
			received = q
			return []model.Room{{ID: 5, HotelID: 1, Type: model.RoomTypeDeluxe, Capacity: 4}}, nil
		},
	}

	rec := serve(svc, http.MethodGet, "/api/v1/availability?hotel_name=River+View+Retreat&from=2026-01-01&to=2026-01-05T10:00:00&people=3", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if received.HotelName != "River View Retreat" || received.HotelID != 0 || received.People != 3 {
		t.Errorf("unexpected query %+v", received)
	}
	if !received.To.Equal(time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected to %v", received.To)
	}

	rooms, _ := decodeBody(t, rec)["data"].([]any)
	if len(rooms) != 1 {
		t.Errorf("expected 1 room, got %v", rooms)
	}
}

func TestAvailability_BadParameters(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"non numeric hotel id", "?hotel_id=abc&from=2026-01-01&to=2026-01-02&people=1"},
		{"non numeric people", "?hotel_id=1&from=2026-01-01&to=2026-01-02&people=two"},
		{"missing from", "?hotel_id=1&to=2026-01-02&people=1"},
		{"bad to", "?hotel_id=1&from=2026-01-01&to=tomorrow&people=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&mockBookingService{}, http.MethodGet, "/api/v1/availability"+tt.query, "")
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
		})
	}
}
