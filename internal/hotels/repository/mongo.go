package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	hotelserrors "hotelbooking/internal/hotels/errors"
	"hotelbooking/pkg/config"
	mongodb "hotelbooking/pkg/db/mongo"
	"hotelbooking/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	hotelSequence = "hotels"
	roomSequence  = "rooms"
)

type hotelDocument struct {
	ID   int64  `bson:"_id"`
	Name string `bson:"name"`
}

type roomDocument struct {
	ID            int64          `bson:"_id"`
	HotelID       int64          `bson:"hotel_id"`
	RoomType      model.RoomType `bson:"room_type"`
	Capacity      int            `bson:"capacity"`
	LedgerVersion int64          `bson:"ledger_version"`
}

type mongoHotelRepository struct {
	cfg       *config.Config
	db        *mongo.Database
	hotels    *mongo.Collection
	rooms     *mongo.Collection
	txManager mongodb.TransactionManager
}

func NewMongoHotelRepository(cfg *config.Config) HotelRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoHotelRepository{
		cfg:       cfg,
		db:        db,
		hotels:    db.Collection(mongodb.HotelsCollection),
		rooms:     db.Collection(mongodb.RoomsCollection),
		txManager: mongodb.NewTransactionManager(cfg.Client.Mongo),
	}
}

func (r *mongoHotelRepository) Create(ctx context.Context, hotel *model.Hotel) error {
	if err := validateRooms(hotel.Rooms); err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	created := cloneHotel(hotel)
	err := r.txManager.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		hotelID, err := mongodb.NextSequence(sessCtx, r.db, hotelSequence)
		if err != nil {
			return err
		}
		created.ID = hotelID
		if _, err := r.hotels.InsertOne(sessCtx, hotelDocument{ID: hotelID, Name: created.Name}); err != nil {
			return err
		}

		if len(created.Rooms) == 0 {
			return nil
		}
		docs := make([]any, 0, len(created.Rooms))
		for i := range created.Rooms {
			roomID, err := mongodb.NextSequence(sessCtx, r.db, roomSequence)
			if err != nil {
				return err
			}
			created.Rooms[i].ID = roomID
			created.Rooms[i].HotelID = hotelID
			docs = append(docs, roomDocument{
				ID:       roomID,
				HotelID:  hotelID,
				RoomType: created.Rooms[i].Type,
				Capacity: created.Rooms[i].Capacity,
			})
		}
		_, err = r.rooms.InsertMany(sessCtx, docs, options.InsertMany().SetOrdered(true))
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to create hotel: %w", err)
	}

	*hotel = *created
	return nil
}

func (r *mongoHotelRepository) GetHotelWithRooms(ctx context.Context, id int64) (*model.Hotel, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	return r.findOne(ctx, bson.M{"_id": id}, nil)
}

func (r *mongoHotelRepository) FindHotelByName(ctx context.Context, name string) (*model.Hotel, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	return r.findOne(ctx, bson.M{"name": name}, options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}}))
}

func (r *mongoHotelRepository) findOne(ctx context.Context, filter bson.M, opts *options.FindOneOptions) (*model.Hotel, error) {
	var doc hotelDocument
	if opts == nil {
		opts = options.FindOne()
	}
	if err := r.hotels.FindOne(ctx, filter, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, hotelserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find hotel: %w", err)
	}

	rooms, err := r.roomsOf(ctx, doc.ID)
	if err != nil {
		return nil, err
	}
	return &model.Hotel{ID: doc.ID, Name: doc.Name, Rooms: rooms}, nil
}

func (r *mongoHotelRepository) roomsOf(ctx context.Context, hotelID int64) ([]model.Room, error) {
	cursor, err := r.rooms.Find(ctx, bson.M{"hotel_id": hotelID}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []roomDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode rooms: %w", err)
	}

	rooms := make([]model.Room, 0, len(docs))
	for _, d := range docs {
		rooms = append(rooms, model.Room{ID: d.ID, HotelID: d.HotelID, Type: d.RoomType, Capacity: d.Capacity})
	}
	return rooms, nil
}

func (r *mongoHotelRepository) SearchHotels(ctx context.Context, query string) ([]model.HotelSummary, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	filter := bson.M{"name": primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}}
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(MaxSearchResults)

	cursor, err := r.hotels.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search hotels: %w", err)
	}
	defer cursor.Close(ctx)

	hotels := []model.HotelSummary{}
	if err := cursor.All(ctx, &hotels); err != nil {
		return nil, fmt.Errorf("failed to decode hotels: %w", err)
	}
	return hotels, nil
}

func (r *mongoHotelRepository) DeleteAll(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	if _, err := r.rooms.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to delete rooms: %w", err)
	}
	if _, err := r.hotels.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to delete hotels: %w", err)
	}
	return nil
}

func (r *mongoHotelRepository) Ping(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	return r.db.Client().Ping(ctx, nil)
}
