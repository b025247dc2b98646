package service

import (
	"context"
	"errors"

	bookingserrors "hotelbooking/internal/bookings/errors"
	"hotelbooking/internal/bookings/inventory"
	bookingref "hotelbooking/internal/bookings/reference"
	apperrors "hotelbooking/pkg/errors"
	"hotelbooking/pkg/model"
	"hotelbooking/pkg/sanitizer"
)

// GetByReference returns a booking together with its hotel name and room details. References
// are accepted with or without dashes and in any case.
func (s *bookingService) GetByReference(ctx context.Context, reference string) (*model.BookingDetail, error) {
	ref := sanitizer.SanitizeReference(reference)
	if !bookingref.Valid(ref) {
		// a malformed reference can never have been issued
		return nil, apperrors.NotFoundWithID("Booking", reference).WithCause(bookingserrors.ErrInvalidReference)
	}

	booking, err := s.ledger.FindByReference(ctx, ref)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", ref).WithCause(err)
		}
		s.cfg.Log.Error("Failed to find booking", "reference", ref, "error", err)
		return nil, apperrors.Internal("Failed to retrieve booking", err)
	}

	hotel, err := s.resolveHotel(ctx, booking.HotelID, "")
	if err != nil {
		if apperrors.HasCode(err, apperrors.CodeNotFound) {
			s.cfg.Log.Error("Booking references a missing hotel", "reference", ref, "hotel_id", booking.HotelID)
			return nil, apperrors.Internal("Booking references a missing hotel", err)
		}
		return nil, err
	}

	room, ok := inventory.New(hotel.Rooms).Room(booking.RoomID)
	if !ok {
		s.cfg.Log.Error("Booking references a missing room", "reference", ref, "room_id", booking.RoomID)
		return nil, apperrors.Internal("Booking references a missing room", bookingserrors.ErrRoomNotFound)
	}

	iv := booking.Interval().UTC()
	return &model.BookingDetail{
		Reference:    booking.Reference,
		HotelID:      hotel.ID,
		HotelName:    hotel.Name,
		RoomID:       room.ID,
		RoomType:     room.Type,
		RoomCapacity: room.Capacity,
		From:         iv.From,
		To:           iv.To,
		People:       booking.People,
	}, nil
}
