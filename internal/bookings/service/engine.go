package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	bookingserrors "hotelbooking/internal/bookings/errors"
	"hotelbooking/internal/bookings/inventory"
	"hotelbooking/internal/bookings/repository"
	"hotelbooking/internal/bookings/validator"
	hotelserrors "hotelbooking/internal/hotels/errors"
	"hotelbooking/pkg/config"
	apperrors "hotelbooking/pkg/errors"
	"hotelbooking/pkg/model"
)

const (
	roomUnavailableMessage = "Room already booked for selected dates"
	noSuitableRoomMessage  = "No suitable room"

	// a fresh reference is drawn once more after a unique index collision
	maxReferenceAttempts = 2
)

// HotelDirectory resolves hotels together with their rooms.
type HotelDirectory interface {
	GetHotelWithRooms(ctx context.Context, id int64) (*model.Hotel, error)
	FindHotelByName(ctx context.Context, name string) (*model.Hotel, error)
	SearchHotels(ctx context.Context, query string) ([]model.HotelSummary, error)
}

type ReferenceGenerator interface {
	NewReference() (string, error)
}

// EventPublisher is notified after a booking has been committed. Failures never undo the booking.
type EventPublisher interface {
	BookingCreated(ctx context.Context, booking *model.Booking) error
}

type BookingService interface {
	Book(ctx context.Context, req *model.BookingRequest) (string, error)
	Available(ctx context.Context, q *model.AvailabilityQuery) ([]model.Room, error)
	GetByReference(ctx context.Context, reference string) (*model.BookingDetail, error)
}

type bookingService struct {
	ledger    repository.BookingLedger
	hotels    HotelDirectory
	refs      ReferenceGenerator
	events    EventPublisher
	validator *validator.BookingValidator
	cfg       *config.Config
	now       func() time.Time
}

func NewBookingService(
	ledger repository.BookingLedger,
	hotels HotelDirectory,
	refs ReferenceGenerator,
	events EventPublisher,
	validator *validator.BookingValidator,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		ledger:    ledger,
		hotels:    hotels,
		refs:      refs,
		events:    events,
		validator: validator,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Book allocates the lowest-id room of the hotel that fits the party and commits the booking
// on it. When that room is taken for the interval the request fails; other rooms are not tried.
func (s *bookingService) Book(ctx context.Context, req *model.BookingRequest) (string, error) {
	if err := s.validator.ValidateBooking(req); err != nil {
		s.cfg.Log.Warn("Booking validation failed",
			"hotel_id", req.HotelID,
			"people", req.People,
			"error", err,
		)
		return "", toValidationError(err, "Invalid booking request")
	}

	iv, err := req.Interval().Stored()
	if err != nil {
		s.cfg.Log.Warn("Booking interval below storage precision",
			"hotel_id", req.HotelID,
			"from", req.From,
			"to", req.To,
		)
		return "", toValidationError(err, "Invalid booking request")
	}

	hotel, err := s.resolveHotel(ctx, req.HotelID, "")
	if err != nil {
		return "", err
	}

	room, ok := inventory.New(hotel.Rooms).FirstWithCapacityAtLeast(req.People)
	if !ok {
		s.cfg.Log.Info("No room fits the party",
			"hotel_id", hotel.ID,
			"people", req.People,
		)
		return "", apperrors.Exhausted(noSuitableRoomMessage).WithCause(bookingserrors.ErrNoSuitableRoom)
	}

	booking := &model.Booking{
		HotelID:   hotel.ID,
		RoomID:    room.ID,
		From:      iv.From,
		To:        iv.To,
		People:    req.People,
		CreatedAt: s.now().UTC().Truncate(model.StoragePrecision),
	}

	// the commit outlives a cancelled request so it always ends committed or rolled back
	commitCtx, cancel := s.commitContext(ctx)
	defer cancel()

	if err := s.commit(commitCtx, booking); err != nil {
		switch {
		case errors.Is(err, bookingserrors.ErrTimeConflict):
			s.cfg.Log.Info("Room already booked",
				"hotel_id", booking.HotelID,
				"room_id", booking.RoomID,
				"from", booking.From,
				"to", booking.To,
			)
			return "", apperrors.Conflict(roomUnavailableMessage).WithCause(bookingserrors.ErrRoomUnavailable)
		default:
			s.cfg.Log.Error("Failed to commit booking",
				"hotel_id", booking.HotelID,
				"room_id", booking.RoomID,
				"error", err,
			)
			return "", apperrors.Internal("Failed to create booking", err)
		}
	}

	s.cfg.Log.Info("Booking created",
		"reference", booking.Reference,
		"hotel_id", booking.HotelID,
		"room_id", booking.RoomID,
		"from", booking.From,
		"to", booking.To,
		"duration", iv.Duration(),
		"people", booking.People,
	)

	if err := s.events.BookingCreated(commitCtx, booking); err != nil {
		s.cfg.Log.Warn("Failed to publish booking event",
			"reference", booking.Reference,
			"error", err,
		)
	}

	return booking.Reference, nil
}

func (s *bookingService) commitContext(ctx context.Context) (context.Context, context.CancelFunc) {
	detached := context.WithoutCancel(ctx)
	if s.cfg.WriteTimeout <= 0 {
		return context.WithCancel(detached)
	}
	return context.WithTimeout(detached, s.cfg.WriteTimeout)
}

func (s *bookingService) commit(ctx context.Context, booking *model.Booking) error {
	var err error
	for attempt := 1; attempt <= maxReferenceAttempts; attempt++ {
		booking.Reference, err = s.refs.NewReference()
		if err != nil {
			return err
		}

		err = s.ledger.Commit(ctx, booking)
		if !errors.Is(err, bookingserrors.ErrDuplicateReference) {
			return err
		}
		s.cfg.Log.Warn("Booking reference collision, regenerating",
			"attempt", attempt,
			"room_id", booking.RoomID,
		)
	}
	return err
}

// resolveHotel looks the hotel up by id, or by exact name when id is zero.
func (s *bookingService) resolveHotel(ctx context.Context, id int64, name string) (*model.Hotel, error) {
	var (
		hotel *model.Hotel
		err   error
		key   string
	)
	if id > 0 {
		key = strconv.FormatInt(id, 10)
		hotel, err = s.hotels.GetHotelWithRooms(ctx, id)
	} else {
		key = name
		hotel, err = s.hotels.FindHotelByName(ctx, name)
	}

	if err != nil {
		if errors.Is(err, hotelserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Hotel", key).WithCause(bookingserrors.ErrHotelNotFound)
		}
		s.cfg.Log.Error("Failed to resolve hotel", "hotel", key, "error", err)
		return nil, apperrors.Internal("Failed to retrieve hotel", err)
	}
	return hotel, nil
}

func toValidationError(err error, message string) error {
	if errors.Is(err, bookingserrors.ErrInvalidRange) {
		return apperrors.InvalidInput("'from' must be strictly before 'to'").WithCause(bookingserrors.ErrInvalidRange)
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return apperrors.InvalidInput(message).WithDetails(verrs.Details()).WithCause(err)
	}
	return apperrors.InvalidInput(err.Error()).WithCause(err)
}
