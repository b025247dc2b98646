package errors

import "errors"

var (
	ErrNotFound = errors.New("hotel not found")

	ErrInvalidRoom = errors.New("room capacity must be positive and type known")
)
