package service

import (
	"context"

	"hotelbooking/internal/bookings/inventory"
	apperrors "hotelbooking/pkg/errors"
	"hotelbooking/pkg/model"
	"hotelbooking/pkg/sanitizer"
)

// Available lists, in ascending id order, every room of the hotel that fits the party and has
// no booking overlapping the interval. It never writes.
func (s *bookingService) Available(ctx context.Context, q *model.AvailabilityQuery) ([]model.Room, error) {
	q.HotelName = sanitizer.SanitizeHotelName(q.HotelName)
	if err := s.validator.ValidateAvailability(q); err != nil {
		s.cfg.Log.Warn("Availability query validation failed",
			"hotel_id", q.HotelID,
			"hotel_name", q.HotelName,
			"error", err,
		)
		return nil, toValidationError(err, "Invalid availability query")
	}

	iv, err := q.Interval().Stored()
	if err != nil {
		return nil, toValidationError(err, "Invalid availability query")
	}

	hotel, err := s.resolveHotel(ctx, q.HotelID, q.HotelName)
	if err != nil {
		return nil, err
	}

	rooms := []model.Room{}
	for room := range inventory.New(hotel.Rooms).RoomsWithCapacityAtLeast(q.People) {
		conflict, err := s.ledger.HasConflict(ctx, room.ID, iv)
		if err != nil {
			s.cfg.Log.Error("Failed to check room availability",
				"hotel_id", hotel.ID,
				"room_id", room.ID,
				"error", err,
			)
			return nil, apperrors.Internal("Failed to check availability", err)
		}
		if !conflict {
			rooms = append(rooms, room)
		}
	}

	s.cfg.Log.Debug("Availability computed",
		"hotel_id", hotel.ID,
		"people", q.People,
		"available", len(rooms),
	)
	return rooms, nil
}
