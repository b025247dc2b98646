package mysql

import (
	"time"

	"hotelbooking/pkg/model"
)

// HotelRecord is the GORM mapping of a hotel row. Rooms are removed with their hotel.
type HotelRecord struct {
	ID    int64        `gorm:"primaryKey;autoIncrement"`
	Name  string       `gorm:"size:200;not null;index"`
	Rooms []RoomRecord `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE"`
}

func (HotelRecord) TableName() string { return "hotels" }

type RoomRecord struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	HotelID  int64  `gorm:"not null;index"`
	RoomType string `gorm:"size:16;not null"`
	Capacity int    `gorm:"not null"`
}

func (RoomRecord) TableName() string { return "rooms" }

type BookingRecord struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Reference string    `gorm:"size:32;not null;uniqueIndex"`
	HotelID   int64     `gorm:"not null;index"`
	RoomID    int64     `gorm:"not null;index:idx_bookings_room_range,priority:1"`
	StartsAt  time.Time `gorm:"not null;precision:6;index:idx_bookings_room_range,priority:2"`
	EndsAt    time.Time `gorm:"not null;precision:6;index:idx_bookings_room_range,priority:3"`
	People    int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null;precision:6"`

	Room RoomRecord `gorm:"foreignKey:RoomID;constraint:OnDelete:RESTRICT"`
}

func (BookingRecord) TableName() string { return "bookings" }

// Records lists every table in creation order.
func Records() []any {
	return []any{&HotelRecord{}, &RoomRecord{}, &BookingRecord{}}
}

func (r *HotelRecord) ToModel() *model.Hotel {
	h := &model.Hotel{ID: r.ID, Name: r.Name}
	for i := range r.Rooms {
		h.Rooms = append(h.Rooms, r.Rooms[i].ToModel())
	}
	return h
}

func (r *RoomRecord) ToModel() model.Room {
	return model.Room{
		ID:       r.ID,
		HotelID:  r.HotelID,
		Type:     model.RoomType(r.RoomType),
		Capacity: r.Capacity,
	}
}

func (r *BookingRecord) ToModel() *model.Booking {
	return &model.Booking{
		ID:        formatID(r.ID),
		Reference: r.Reference,
		HotelID:   r.HotelID,
		RoomID:    r.RoomID,
		From:      r.StartsAt.UTC(),
		To:        r.EndsAt.UTC(),
		People:    r.People,
		CreatedAt: r.CreatedAt.UTC(),
	}
}

func NewBookingRecord(b *model.Booking) *BookingRecord {
	return &BookingRecord{
		Reference: b.Reference,
		HotelID:   b.HotelID,
		RoomID:    b.RoomID,
		StartsAt:  b.From.UTC(),
		EndsAt:    b.To.UTC(),
		People:    b.People,
		CreatedAt: b.CreatedAt.UTC(),
	}
}
