package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	bookingserrors "hotelbooking/internal/bookings/errors"
	"hotelbooking/pkg/config"
	mysqldb "hotelbooking/pkg/db/mysql"
	"hotelbooking/pkg/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type mysqlBookingLedger struct {
	cfg       *config.Config
	db        *gorm.DB
	txManager mysqldb.TransactionManager
}

func NewMySQLBookingLedger(cfg *config.Config) BookingLedger {
	return &mysqlBookingLedger{
		cfg:       cfg,
		db:        cfg.Client.SQL,
		txManager: mysqldb.NewTransactionManager(cfg.Client.SQL),
	}
}

func overlapScope(roomID int64, iv model.Interval) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("room_id = ? AND starts_at < ? AND ends_at > ?", roomID, iv.To.UTC(), iv.From.UTC())
	}
}

func (r *mysqlBookingLedger) HasConflict(ctx context.Context, roomID int64, iv model.Interval) (bool, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	return hasConflictTx(r.db.WithContext(ctx), roomID, iv)
}

func hasConflictTx(tx *gorm.DB, roomID int64, iv model.Interval) (bool, error) {
	var count int64
	err := tx.Model(&mysqldb.BookingRecord{}).Scopes(overlapScope(roomID, iv)).Limit(1).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check booking conflicts: %w", err)
	}
	return count > 0, nil
}

// Commit locks the room row with SELECT ... FOR UPDATE for the whole transaction. Locking the
// room instead of overlapping booking rows also covers the case where no booking exists yet.
func (r *mysqlBookingLedger) Commit(ctx context.Context, booking *model.Booking) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	rec := mysqldb.NewBookingRecord(booking)
	err := r.txManager.ExecuteTransaction(ctx, func(tx *gorm.DB) error {
		var room mysqldb.RoomRecord
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("id = ?", booking.RoomID).
			Take(&room).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return bookingserrors.ErrRoomNotFound
			}
			return fmt.Errorf("failed to lock room: %w", err)
		}

		conflict, err := hasConflictTx(tx, booking.RoomID, booking.Interval())
		if err != nil {
			return err
		}
		if conflict {
			return bookingserrors.ErrTimeConflict
		}

		rec.ID = 0
		if err := tx.Omit(clause.Associations).Create(rec).Error; err != nil {
			if mysqldb.IsDuplicateKey(err) {
				return bookingserrors.ErrDuplicateReference
			}
			return fmt.Errorf("failed to insert booking: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	booking.ID = strconv.FormatInt(rec.ID, 10)
	return nil
}

func (r *mysqlBookingLedger) FindByReference(ctx context.Context, reference string) (*model.Booking, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var rec mysqldb.BookingRecord
	err := r.db.WithContext(ctx).Where("reference = ?", reference).Take(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bookingserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}
	return rec.ToModel(), nil
}

func (r *mysqlBookingLedger) DeleteAll(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	err := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&mysqldb.BookingRecord{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete bookings: %w", err)
	}
	return nil
}

func (r *mysqlBookingLedger) Ping(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
