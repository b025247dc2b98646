package mysql

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"hotelbooking/pkg/model"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

func TestIsDuplicateKey(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"duplicate entry", &mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry"}, true},
		{"wrapped duplicate", fmt.Errorf("insert: %w", &mysqldriver.MySQLError{Number: 1062}), true},
		{"gorm translated", gorm.ErrDuplicatedKey, true},
		{"deadlock", &mysqldriver.MySQLError{Number: 1213}, false},
		{"plain", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDuplicateKey(tt.err); got != tt.want {
				t.Errorf("IsDuplicateKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsRetryable(t *testing.T) {
	if !isRetryable(&mysqldriver.MySQLError{Number: 1213}) {
		t.Errorf("deadlock should be retryable")
	}
	if !isRetryable(fmt.Errorf("tx: %w", &mysqldriver.MySQLError{Number: 1205})) {
		t.Errorf("lock wait timeout should be retryable")
	}
	if isRetryable(&mysqldriver.MySQLError{Number: 1062}) {
		t.Errorf("duplicate entry must not be retried")
	}
}

func TestBookingRecordRoundTrip(t *testing.T) {
	from := time.Date(2026, 6, 1, 14, 0, 0, 0, time.FixedZone("CEST", 2*60*60))
	b := &model.Booking{
		Reference: "0123456789abcdef0123456789abcdef",
		HotelID:   1,
		RoomID:    3,
		From:      from,
		To:        from.Add(48 * time.Hour),
		People:    2,
		CreatedAt: from,
	}

	rec := NewBookingRecord(b)
	if rec.StartsAt.Location() != time.UTC {
		t.Errorf("records must be stored in UTC")
	}

	rec.ID = 42
	got := rec.ToModel()
	if got.ID != "42" || got.Reference != b.Reference || !got.From.Equal(b.From) || got.People != 2 {
		t.Errorf("unexpected model %+v", got)
	}
}

func TestHotelRecordToModel(t *testing.T) {
	rec := &HotelRecord{
		ID:   1,
		Name: "River View Retreat",
		Rooms: []RoomRecord{
			{ID: 1, HotelID: 1, RoomType: "Single", Capacity: 1},
			{ID: 5, HotelID: 1, RoomType: "Deluxe", Capacity: 4},
		},
	}

	h := rec.ToModel()
	if len(h.Rooms) != 2 || h.Rooms[1].Type != model.RoomTypeDeluxe || h.Rooms[1].Capacity != 4 {
		t.Errorf("unexpected hotel %+v", h)
	}
}
