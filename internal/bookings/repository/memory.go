package repository

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"

	bookingserrors "hotelbooking/internal/bookings/errors"
	"hotelbooking/pkg/model"
)

type memoryBookingLedger struct {
	mu     sync.RWMutex
	byRoom map[int64][]*model.Booking
	byRef  map[string]*model.Booking

	// roomLocks holds one *sync.Mutex per room, taken across check and insert.
	roomLocks sync.Map
	seq       atomic.Int64
}

func NewMemoryBookingLedger() BookingLedger {
	return &memoryBookingLedger{
		byRoom: make(map[int64][]*model.Booking),
		byRef:  make(map[string]*model.Booking),
	}
}

func (l *memoryBookingLedger) roomLock(roomID int64) *sync.Mutex {
	m, _ := l.roomLocks.LoadOrStore(roomID, &sync.Mutex{})
	return m.(*sync.Mutex)
}

func (l *memoryBookingLedger) HasConflict(ctx context.Context, roomID int64, iv model.Interval) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.conflictLocked(roomID, iv), nil
}

func (l *memoryBookingLedger) conflictLocked(roomID int64, iv model.Interval) bool {
	for _, b := range l.byRoom[roomID] {
		if model.Overlaps(b.Interval(), iv) {
			return true
		}
	}
	return false
}

// Commit holds the room's lock across the conflict check and the insert. The shared map lock
// is only taken for the short read and write phases, so other rooms keep committing.
func (l *memoryBookingLedger) Commit(ctx context.Context, booking *model.Booking) error {
	lock := l.roomLock(booking.RoomID)
	lock.Lock()
	defer lock.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.RLock()
	conflict := l.conflictLocked(booking.RoomID, booking.Interval())
	l.mu.RUnlock()
	if conflict {
		return bookingserrors.ErrTimeConflict
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// references are global, so uniqueness is checked under the shared lock
	if _, exists := l.byRef[booking.Reference]; exists {
		return bookingserrors.ErrDuplicateReference
	}

	booking.ID = strconv.FormatInt(l.seq.Add(1), 10)
	stored := *booking
	l.byRoom[booking.RoomID] = append(l.byRoom[booking.RoomID], &stored)
	l.byRef[booking.Reference] = &stored
	return nil
}

func (l *memoryBookingLedger) FindByReference(ctx context.Context, reference string) (*model.Booking, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	b, ok := l.byRef[reference]
	if !ok {
		return nil, bookingserrors.ErrNotFound
	}
	found := *b
	return &found, nil
}

func (l *memoryBookingLedger) DeleteAll(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.byRoom = make(map[int64][]*model.Booking)
	l.byRef = make(map[string]*model.Booking)
	return nil
}

func (l *memoryBookingLedger) Ping(ctx context.Context) error {
	return ctx.Err()
}
