package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"hotelbooking/internal/bookings/reference"
	"hotelbooking/internal/bookings/repository"
	"hotelbooking/internal/bookings/validator"
	hotelsrepo "hotelbooking/internal/hotels/repository"
	"hotelbooking/pkg/config"
	"hotelbooking/pkg/logger"
	"hotelbooking/pkg/model"

	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2026, time.January, d, 0, 0, 0, 0, time.UTC)
}

func testConfig() *config.Config {
	return &config.Config{
		Log:          logger.Discard(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}
}

// recordingPublisher keeps every published booking.
type recordingPublisher struct {
	mu       sync.Mutex
	bookings []model.Booking
	err      error
}

func (p *recordingPublisher) BookingCreated(ctx context.Context, booking *model.Booking) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.bookings = append(p.bookings, *booking)
	return p.err
}

func (p *recordingPublisher) published() []model.Booking {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]model.Booking(nil), p.bookings...)
}

// sequenceGenerator returns the queued references in order, then falls back to random ones.
type sequenceGenerator struct {
	mu   sync.Mutex
	refs []string
	err  error
}

func (g *sequenceGenerator) NewReference() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return "", g.err
	}
	if len(g.refs) == 0 {
		return reference.NewGenerator().NewReference()
	}
	ref := g.refs[0]
	g.refs = g.refs[1:]
	return ref, nil
}

// countingDirectory records how often storage was consulted.
type countingDirectory struct {
	HotelDirectory
	mu    sync.Mutex
	calls int
}

func (d *countingDirectory) GetHotelWithRooms(ctx context.Context, id int64) (*model.Hotel, error) {
	d.mu.Lock()
	d.calls++
	d.mu.Unlock()
	return d.HotelDirectory.GetHotelWithRooms(ctx, id)
}

// failingLedger fails every storage call with err.
type failingLedger struct {
	repository.BookingLedger
	err error
}

func (l *failingLedger) HasConflict(ctx context.Context, roomID int64, iv model.Interval) (bool, error) {
	return false, l.err
}

func (l *failingLedger) Commit(ctx context.Context, booking *model.Booking) error {
	return l.err
}

func (l *failingLedger) FindByReference(ctx context.Context, ref string) (*model.Booking, error) {
	return nil, l.err
}

var errStorageDown = errors.New("storage unavailable")

type fixture struct {
	svc       BookingService
	ledger    repository.BookingLedger
	hotels    hotelsrepo.HotelRepository
	events    *recordingPublisher
	refs      *sequenceGenerator
	riverView *model.Hotel
}

type fixtureOption func(*fixture)

func withLedger(l repository.BookingLedger) fixtureOption {
	return func(f *fixture) { f.ledger = l }
}

func newFixture(t *testing.T, opts ...fixtureOption) *fixture {
	t.Helper()

	f := &fixture{
		ledger: repository.NewMemoryBookingLedger(),
		hotels: hotelsrepo.NewMemoryHotelRepository(),
		events: &recordingPublisher{},
		refs:   &sequenceGenerator{},
	}
	for _, opt := range opts {
		opt(f)
	}

	f.riverView = &model.Hotel{
		Name: "River View Retreat",
		Rooms: []model.Room{
			{Type: model.RoomTypeSingle, Capacity: 1},
			{Type: model.RoomTypeSingle, Capacity: 1},
			{Type: model.RoomTypeDouble, Capacity: 2},
			{Type: model.RoomTypeDouble, Capacity: 2},
			{Type: model.RoomTypeDeluxe, Capacity: 4},
			{Type: model.RoomTypeDeluxe, Capacity: 4},
		},
	}
	require.NoError(t, f.hotels.Create(context.Background(), f.riverView))

	cfg := testConfig()
	f.svc = NewBookingService(f.ledger, f.hotels, f.refs, f.events, validator.NewBookingValidator(cfg.Log), cfg)
	return f
}

func (f *fixture) room(i int) model.Room {
	return f.riverView.Rooms[i]
}

func (f *fixture) book(t *testing.T, people, from, to int) (string, error) {
	t.Helper()
	return f.svc.Book(context.Background(), &model.BookingRequest{
		HotelID: f.riverView.ID,
		From:    day(from),
		To:      day(to),
		People:  people,
	})
}
