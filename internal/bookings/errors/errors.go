package errors

import (
	"errors"

	"hotelbooking/pkg/model"
)

var (
	ErrNotFound = errors.New("booking not found")

	ErrInvalidReference = errors.New("invalid booking reference format")

	// ErrTimeConflict is returned by a ledger commit when the room already holds an
	// overlapping booking. Nothing is written.
	ErrTimeConflict = errors.New("booking time conflicts with existing booking")

	ErrDuplicateReference = errors.New("booking reference already exists")

	ErrRoomNotFound = errors.New("room not found in ledger")

	ErrHotelNotFound = errors.New("hotel not found")

	ErrInvalidRange = model.ErrInvalidRange

	ErrNoSuitableRoom = errors.New("no room with enough capacity")

	ErrRoomUnavailable = errors.New("room already booked for selected dates")
)
