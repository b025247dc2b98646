package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apperrors "hotelbooking/pkg/errors"
)

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{"date only", "2026-06-01", time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), false},
		{"local date-time", "2026-06-01T14:30:00", time.Date(2026, 6, 1, 14, 30, 0, 0, time.UTC), false},
		{"minutes only", "2026-06-01T14:30", time.Date(2026, 6, 1, 14, 30, 0, 0, time.UTC), false},
		{"rfc3339 utc", "2026-06-01T14:30:00Z", time.Date(2026, 6, 1, 14, 30, 0, 0, time.UTC), false},
		{"rfc3339 offset", "2026-06-01T14:30:00+02:00", time.Date(2026, 6, 1, 12, 30, 0, 0, time.UTC), false},
		{"padded", "  2026-06-01 ", time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), false},
		{"empty", "", time.Time{}, true},
		{"garbage", "next tuesday", time.Time{}, true},
		{"us format", "06/01/2026", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateTime("from", tt.value)
			if tt.wantErr {
				if !apperrors.HasCode(err, apperrors.CodeInvalidInput) {
					t.Fatalf("expected INVALID_INPUT, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) || got.Location() != time.UTC {
				t.Errorf("ParseDateTime() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQueryInt64(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?hotel_id=7&people=x", nil)

	if v, err := QueryInt64(r, "hotel_id"); err != nil || v != 7 {
		t.Errorf("expected 7, got %d (%v)", v, err)
	}
	if v, err := QueryInt64(r, "missing"); err != nil || v != 0 {
		t.Errorf("missing parameter should be 0, got %d (%v)", v, err)
	}
	if _, err := QueryInt(r, "people"); !apperrors.HasCode(err, apperrors.CodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT for non-numeric value, got %v", err)
	}
}

func TestDecodeJSON(t *testing.T) {
	type body struct {
		HotelID int64 `json:"hotel_id"`
	}

	tests := []struct {
		name     string
		raw      string
		wantCode string
	}{
		{"valid", `{"hotel_id":1}`, ""},
		{"empty", ``, apperrors.CodeInvalidInput},
		{"unknown field", `{"hotel":1}`, apperrors.CodeInvalidInput},
		{"trailing object", `{"hotel_id":1}{"hotel_id":2}`, apperrors.CodeInvalidInput},
		{"malformed", `{"hotel_id":`, apperrors.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.raw))
			var dst body
			err := DecodeJSON(r, &dst)
			if tt.wantCode == "" {
				if err != nil || dst.HotelID != 1 {
					t.Fatalf("unexpected result %+v, %v", dst, err)
				}
				return
			}
			if !apperrors.HasCode(err, tt.wantCode) {
				t.Errorf("expected %s, got %v", tt.wantCode, err)
			}
		})
	}
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, apperrors.Conflict("Room already booked for selected dates"))

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"code":"CONFLICT"`) {
		t.Errorf("unexpected body %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	WriteError(w, errors.New("mongo: connection reset"))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "connection reset") {
		t.Errorf("internal details must not leak: %s", w.Body.String())
	}
}

func TestWriteSuccess_EmptyList(t *testing.T) {
	w := httptest.NewRecorder()
	WriteSuccess(w, []int{})

	if strings.TrimSpace(w.Body.String()) != `{"data":[]}` {
		t.Errorf("empty lists must still be wrapped, got %s", w.Body.String())
	}
}
