package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "hotelbooking/pkg/errors"
	"hotelbooking/pkg/logger"
	"hotelbooking/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type mockHotelService struct {
	searchFunc func(ctx context.Context, name string) ([]model.HotelSummary, error)
	getFunc    func(ctx context.Context, id int64) (*model.Hotel, error)
}

func (m *mockHotelService) Search(ctx context.Context, name string) ([]model.HotelSummary, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, name)
	}
	return []model.HotelSummary{}, nil
}

func (m *mockHotelService) GetByID(ctx context.Context, id int64) (*model.Hotel, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, apperrors.NotFound("Hotel")
}

func newRouter(svc *mockHotelService) *httprouter.Router {
	router := httprouter.New()
	NewHotelHandler(svc, logger.Discard()).RegisterRoutes(router)
	return router
}

func TestSearch(t *testing.T) {
	var received string
	svc := &mockHotelService{
		searchFunc: func(ctx context.Context, name string) ([]model.HotelSummary, error) {
			received = name
			return []model.HotelSummary{{ID: 1, Name: "River View Retreat"}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/hotels/search?name=river", nil)
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if received != "river" {
		t.Errorf("expected service to receive 'river', got %q", received)
	}

	var body struct {
		Data []model.HotelSummary `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(body.Data) != 1 || body.Data[0].Name != "River View Retreat" {
		t.Errorf("unexpected data: %+v", body.Data)
	}
}

func TestSearch_EmptyResultIsArray(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/hotels/search?name=castle", nil)
	rec := httptest.NewRecorder()
	newRouter(&mockHotelService{}).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != "{\"data\":[]}\n" {
		t.Errorf("expected empty array, got %s", got)
	}
}

func TestSearch_ServiceError(t *testing.T) {
	svc := &mockHotelService{
		searchFunc: func(ctx context.Context, name string) ([]model.HotelSummary, error) {
			return nil, apperrors.InvalidInput("Search query cannot be empty")
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/hotels/search", nil)
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["code"] != apperrors.CodeInvalidInput {
		t.Errorf("expected code %s, got %v", apperrors.CodeInvalidInput, body["code"])
	}
	if body["error"] != "Search query cannot be empty" {
		t.Errorf("unexpected error message %v", body["error"])
	}
}

func TestGetByID(t *testing.T) {
	svc := &mockHotelService{
		getFunc: func(ctx context.Context, id int64) (*model.Hotel, error) {
			return &model.Hotel{ID: id, Name: "River View Retreat", Rooms: []model.Room{
				{ID: 1, HotelID: id, Type: model.RoomTypeSingle, Capacity: 1},
			}}, nil
		},
	}

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"valid id", "/api/v1/hotels/id/1", http.StatusOK},
		{"non numeric id", "/api/v1/hotels/id/abc", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(rec, req)

			if rec.Code != tt.status {
				t.Errorf("expected %d, got %d: %s", tt.status, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestGetByID_NotFound(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/hotels/id/9", nil)
	rec := httptest.NewRecorder()
	newRouter(&mockHotelService{}).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
