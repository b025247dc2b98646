package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotelbooking/pkg/model"
)

func TestBookingClient_Book(t *testing.T) {
	var got model.BookingForm
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/bookings" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected JSON content type, got %q", ct)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"booking_reference":"0123456789abcdef0123456789abcdef"}}`))
	}))
	defer srv.Close()

	c := NewBookingClient(srv.URL)
	ref, err := c.Book(context.Background(), model.BookingForm{HotelID: 1, From: "2026-06-01", To: "2026-06-03", People: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref != "0123456789abcdef0123456789abcdef" {
		t.Errorf("unexpected reference %q", ref)
	}
	if got.HotelID != 1 || got.People != 2 || got.From != "2026-06-01" {
		t.Errorf("request body not forwarded: %+v", got)
	}
}

func TestBookingClient_BookWithoutReference(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"reference":"abc"}}`))
	}))
	defer srv.Close()

	ref, err := NewBookingClient(srv.URL).Book(context.Background(), model.BookingForm{HotelID: 1})
	if !errors.Is(err, ErrMissingReference) {
		t.Fatalf("expected ErrMissingReference, got ref=%q err=%v", ref, err)
	}
	if ref != "" {
		t.Errorf("no reference may be returned on error, got %q", ref)
	}
}

func TestBookingClient_BookConflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"Room already booked for selected dates","code":"CONFLICT"}`))
	}))
	defer srv.Close()

	_, err := NewBookingClient(srv.URL).Book(context.Background(), model.BookingForm{HotelID: 1})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusConflict || apiErr.Code != "CONFLICT" {
		t.Errorf("unexpected api error %+v", apiErr)
	}
	if apiErr.Message != "Room already booked for selected dates" {
		t.Errorf("unexpected message %q", apiErr.Message)
	}
}

func TestBookingClient_Availability(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("hotel_name") != "River View Retreat" || q.Get("people") != "2" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		if q.Has("hotel_id") {
			t.Errorf("hotel_id must be omitted when zero")
		}
		_, _ = w.Write([]byte(`{"data":[{"id":3,"hotel_id":1,"room_type":"Double","capacity":2}]}`))
	}))
	defer srv.Close()

	rooms, err := NewBookingClient(srv.URL).Availability(context.Background(), model.AvailabilityForm{
		HotelName: "River View Retreat", From: "2026-06-01", To: "2026-06-02", People: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rooms) != 1 || rooms[0].ID != 3 || rooms[0].Type != model.RoomTypeDouble {
		t.Errorf("unexpected rooms %+v", rooms)
	}
}

func TestBookingClient_SearchHotelsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	hotels, err := NewBookingClient(srv.URL).SearchHotels(context.Background(), "nowhere")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hotels) != 0 {
		t.Errorf("expected no hotels, got %d", len(hotels))
	}
}

func TestBookingClient_GetByReferenceNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/bookings/reference/abc" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Booking not found","code":"NOT_FOUND"}`))
	}))
	defer srv.Close()

	_, err := NewBookingClient(srv.URL).GetByReference(context.Background(), "abc")

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusNotFound {
		t.Fatalf("expected 404 APIError, got %v", err)
	}
}
