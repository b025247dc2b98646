package repository

import (
	"context"
	"time"

	"hotelbooking/pkg/model"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingLedger stores confirmed bookings per room. Commit is the only write path and is
// serialised per room: concurrent commits on one room cannot both succeed with overlapping
// intervals, while commits on different rooms never contend.
type BookingLedger interface {
	// HasConflict reports whether the room holds any booking overlapping iv.
	HasConflict(ctx context.Context, roomID int64, iv model.Interval) (bool, error)
	// Commit re-checks for conflicts and inserts the booking in one indivisible step. It returns
	// ErrTimeConflict, ErrDuplicateReference or ErrRoomNotFound without writing anything.
	Commit(ctx context.Context, booking *model.Booking) error
	FindByReference(ctx context.Context, reference string) (*model.Booking, error)
	// DeleteAll removes every booking. Only the reset utility calls it.
	DeleteAll(ctx context.Context) error
	Ping(ctx context.Context) error
}

// withTimeout bounds ctx by timeout unless ctx already has an earlier deadline. Session contexts
// are returned unchanged so transaction state is kept.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}

	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < timeout {
		return context.WithDeadline(ctx, deadline)
	}

	return context.WithTimeout(ctx, timeout)
}
