package repository

import (
	"context"
	"fmt"
	"time"

	hotelserrors "hotelbooking/internal/hotels/errors"
	"hotelbooking/pkg/model"

	"go.mongodb.org/mongo-driver/mongo"
)

// MaxSearchResults caps hotel search responses.
const MaxSearchResults = 50

// HotelRepository is the hotel directory. Rooms are always returned in ascending id order and
// are created, in the order given, together with their hotel.
type HotelRepository interface {
	Create(ctx context.Context, hotel *model.Hotel) error
	GetHotelWithRooms(ctx context.Context, id int64) (*model.Hotel, error)
	// FindHotelByName matches the exact name. When several hotels share it the lowest id wins.
	FindHotelByName(ctx context.Context, name string) (*model.Hotel, error)
	// SearchHotels matches a case-insensitive substring of the name, ordered by id.
	SearchHotels(ctx context.Context, query string) ([]model.HotelSummary, error)
	// DeleteAll removes every hotel and room. Bookings must be removed first.
	DeleteAll(ctx context.Context) error
	Ping(ctx context.Context) error
}

func validateRooms(rooms []model.Room) error {
	for i, room := range rooms {
		if room.Capacity <= 0 || !room.Type.Valid() {
			return fmt.Errorf("%w: room %d (%s, capacity %d)", hotelserrors.ErrInvalidRoom, i, room.Type, room.Capacity)
		}
	}
	return nil
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}

	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < timeout {
		return context.WithDeadline(ctx, deadline)
	}

	return context.WithTimeout(ctx, timeout)
}
