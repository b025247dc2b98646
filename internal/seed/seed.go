// Package seed loads the demo hotel and wipes all data.
package seed

import (
	"context"
	"errors"
	"fmt"

	hotelserrors "hotelbooking/internal/hotels/errors"
	"hotelbooking/pkg/logger"
	"hotelbooking/pkg/model"
)

const RiverViewName = "River View Retreat"

// RiverViewRooms is the demo room list, in creation order.
func RiverViewRooms() []model.Room {
	types := []model.RoomType{
		model.RoomTypeSingle, model.RoomTypeSingle,
		model.RoomTypeDouble, model.RoomTypeDouble,
		model.RoomTypeDeluxe, model.RoomTypeDeluxe,
	}
	rooms := make([]model.Room, 0, len(types))
	for _, t := range types {
		rooms = append(rooms, model.Room{Type: t, Capacity: t.ConventionalCapacity()})
	}
	return rooms
}

type HotelStore interface {
	Create(ctx context.Context, hotel *model.Hotel) error
	FindHotelByName(ctx context.Context, name string) (*model.Hotel, error)
	DeleteAll(ctx context.Context) error
}

type BookingStore interface {
	DeleteAll(ctx context.Context) error
}

type Result struct {
	Hotel   *model.Hotel `json:"hotel"`
	Created bool         `json:"created"`
}

type Seeder struct {
	hotels   HotelStore
	bookings BookingStore
	log      *logger.Logger
}

func NewSeeder(hotels HotelStore, bookings BookingStore, log *logger.Logger) *Seeder {
	return &Seeder{
		hotels:   hotels,
		bookings: bookings,
		log:      log,
	}
}

// SeedRiverView creates the demo hotel unless a hotel with that name exists already.
func (s *Seeder) SeedRiverView(ctx context.Context) (*Result, error) {
	existing, err := s.hotels.FindHotelByName(ctx, RiverViewName)
	switch {
	case err == nil:
		s.log.Info("Seed data already present", "hotel_id", existing.ID)
		return &Result{Hotel: existing}, nil
	case !errors.Is(err, hotelserrors.ErrNotFound):
		return nil, fmt.Errorf("failed to look up seed hotel: %w", err)
	}

	hotel := &model.Hotel{Name: RiverViewName, Rooms: RiverViewRooms()}
	if err := s.hotels.Create(ctx, hotel); err != nil {
		return nil, fmt.Errorf("failed to create seed hotel: %w", err)
	}

	s.log.Info("Seed data created", "hotel_id", hotel.ID, "rooms", len(hotel.Rooms))
	return &Result{Hotel: hotel, Created: true}, nil
}

// Reset deletes every booking, then every hotel with its rooms.
func (s *Seeder) Reset(ctx context.Context) error {
	if err := s.bookings.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to delete bookings: %w", err)
	}
	if err := s.hotels.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to delete hotels: %w", err)
	}

	s.log.Warn("All data deleted")
	return nil
}
