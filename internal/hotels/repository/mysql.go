package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	hotelserrors "hotelbooking/internal/hotels/errors"
	"hotelbooking/pkg/config"
	mysqldb "hotelbooking/pkg/db/mysql"
	"hotelbooking/pkg/model"

	"gorm.io/gorm"
)

type mysqlHotelRepository struct {
	cfg *config.Config
	db  *gorm.DB
}

func NewMySQLHotelRepository(cfg *config.Config) HotelRepository {
	return &mysqlHotelRepository{
		cfg: cfg,
		db:  cfg.Client.SQL,
	}
}

func orderedRooms(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

func (r *mysqlHotelRepository) Create(ctx context.Context, hotel *model.Hotel) error {
	if err := validateRooms(hotel.Rooms); err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	rec := &mysqldb.HotelRecord{Name: hotel.Name}
	for _, room := range hotel.Rooms {
		rec.Rooms = append(rec.Rooms, mysqldb.RoomRecord{RoomType: string(room.Type), Capacity: room.Capacity})
	}

	// GORM inserts the rooms in slice order inside the same transaction as the hotel
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("failed to create hotel: %w", err)
	}

	*hotel = *rec.ToModel()
	return nil
}

func (r *mysqlHotelRepository) GetHotelWithRooms(ctx context.Context, id int64) (*model.Hotel, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	return r.take(r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *mysqlHotelRepository) FindHotelByName(ctx context.Context, name string) (*model.Hotel, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	return r.take(r.db.WithContext(ctx).Where("name = ?", name).Order("id ASC"))
}

func (r *mysqlHotelRepository) take(query *gorm.DB) (*model.Hotel, error) {
	var rec mysqldb.HotelRecord
	if err := query.Preload("Rooms", orderedRooms).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, hotelserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find hotel: %w", err)
	}
	return rec.ToModel(), nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *mysqlHotelRepository) SearchHotels(ctx context.Context, query string) ([]model.HotelSummary, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var recs []mysqldb.HotelRecord
	pattern := "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"
	err := r.db.WithContext(ctx).
		Select("id", "name").
		Where("LOWER(name) LIKE ?", pattern).
		Order("id ASC").
		Limit(MaxSearchResults).
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search hotels: %w", err)
	}

	hotels := make([]model.HotelSummary, 0, len(recs))
	for _, rec := range recs {
		hotels = append(hotels, model.HotelSummary{ID: rec.ID, Name: rec.Name})
	}
	return hotels, nil
}

func (r *mysqlHotelRepository) DeleteAll(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		global := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := global.Delete(&mysqldb.RoomRecord{}).Error; err != nil {
			return fmt.Errorf("failed to delete rooms: %w", err)
		}
		if err := global.Delete(&mysqldb.HotelRecord{}).Error; err != nil {
			return fmt.Errorf("failed to delete hotels: %w", err)
		}
		return nil
	})
}

func (r *mysqlHotelRepository) Ping(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
