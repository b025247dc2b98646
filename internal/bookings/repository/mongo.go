package repository

import (
	"context"
	"errors"
	"fmt"

	bookingserrors "hotelbooking/internal/bookings/errors"
	"hotelbooking/pkg/config"
	mongodb "hotelbooking/pkg/db/mongo"
	"hotelbooking/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoBookingLedger struct {
	cfg       *config.Config
	client    *mongo.Client
	bookings  *mongo.Collection
	rooms     *mongo.Collection
	txManager mongodb.TransactionManager
}

func NewMongoBookingLedger(cfg *config.Config) BookingLedger {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoBookingLedger{
		cfg:       cfg,
		client:    cfg.Client.Mongo,
		bookings:  db.Collection(mongodb.BookingsCollection),
		rooms:     db.Collection(mongodb.RoomsCollection),
		txManager: mongodb.NewTransactionManager(cfg.Client.Mongo),
	}
}

func overlapFilter(roomID int64, iv model.Interval) bson.M {
	return bson.M{
		"room_id":   roomID,
		"starts_at": bson.M{"$lt": iv.To},
		"ends_at":   bson.M{"$gt": iv.From},
	}
}

func (r *mongoBookingLedger) HasConflict(ctx context.Context, roomID int64, iv model.Interval) (bool, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	conflict, err := r.hasConflict(ctx, roomID, iv)
	if err != nil {
		return false, fmt.Errorf("failed to check booking conflicts: %w", err)
	}
	return conflict, nil
}

func (r *mongoBookingLedger) hasConflict(ctx context.Context, roomID int64, iv model.Interval) (bool, error) {
	n, err := r.bookings.CountDocuments(ctx, overlapFilter(roomID, iv), options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Commit runs in a transaction that first bumps the room's ledger_version. Two commits on the
// same room then write the same document, so one of them hits a write conflict and is retried
// by the driver after the other has committed, at which point it sees the winner's booking.
func (r *mongoBookingLedger) Commit(ctx context.Context, booking *model.Booking) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	iv, err := booking.Interval().Stored()
	if err != nil {
		return err
	}
	booking.From, booking.To = iv.From, iv.To
	booking.CreatedAt = booking.CreatedAt.UTC().Truncate(model.StoragePrecision)

	var insertedID primitive.ObjectID
	err = r.txManager.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		res, err := r.rooms.UpdateOne(sessCtx,
			bson.M{"_id": booking.RoomID},
			bson.M{"$inc": bson.M{"ledger_version": int64(1)}},
		)
		// errors inside the callback stay unwrapped so the driver can see transient labels
		if err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			return bookingserrors.ErrRoomNotFound
		}

		conflict, err := r.hasConflict(sessCtx, booking.RoomID, booking.Interval())
		if err != nil {
			return err
		}
		if conflict {
			return bookingserrors.ErrTimeConflict
		}

		doc := *booking
		doc.ID = ""
		result, err := r.bookings.InsertOne(sessCtx, doc)
		if err != nil {
			if mongodb.IsDuplicateKey(err) {
				return bookingserrors.ErrDuplicateReference
			}
			return err
		}
		if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
			insertedID = oid
		}
		return nil
	})
	if err != nil {
		return err
	}

	booking.ID = insertedID.Hex()
	return nil
}

func (r *mongoBookingLedger) FindByReference(ctx context.Context, reference string) (*model.Booking, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var booking model.Booking
	err := r.bookings.FindOne(ctx, bson.M{"reference": reference}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, bookingserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}

	booking.From = booking.From.UTC()
	booking.To = booking.To.UTC()
	booking.CreatedAt = booking.CreatedAt.UTC()
	return &booking, nil
}

func (r *mongoBookingLedger) DeleteAll(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	if _, err := r.bookings.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to delete bookings: %w", err)
	}
	return nil
}

func (r *mongoBookingLedger) Ping(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	return r.client.Ping(ctx, nil)
}
