package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	bookingserrors "hotelbooking/internal/bookings/errors"
	mongomigration "hotelbooking/internal/migrations/mongo"
	storageclient "hotelbooking/pkg/client"
	"hotelbooking/pkg/config"
	mongodb "hotelbooking/pkg/db/mongo"
	"hotelbooking/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoLedger connects to MONGO_URI, which must point at a replica set since commits run in
// transactions. Each call gets a fresh, migrated database holding rooms 1 and 2.
func mongoLedger(t *testing.T) BookingLedger {
	t.Helper()
	uri := os.Getenv(config.EnvMongoURI)
	if uri == "" {
		t.Skipf("%s not set, skipping MongoDB ledger tests", config.EnvMongoURI)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	require.NoError(t, client.Ping(ctx, nil))

	db := client.Database(fmt.Sprintf("hotelbooking_ledger_test_%d", time.Now().UnixNano()))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})

	log := logger.Discard()
	require.NoError(t, mongomigration.RunMigration(ctx, db, log))
	for _, id := range []int64{1, 2} {
		_, err := db.Collection(mongodb.RoomsCollection).InsertOne(ctx, bson.M{
			"_id":            id,
			"hotel_id":       int64(1),
			"room_type":      "Single",
			"capacity":       1,
			"ledger_version": int64(0),
		})
		require.NoError(t, err)
	}

	return NewMongoBookingLedger(&config.Config{
		MongoDatabaseName: db.Name(),
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		Log:               log,
		Client:            &storageclient.Client{Mongo: client},
	})
}

func TestMongoLedger_ConcurrentCommitsOneRoom(t *testing.T) {
	testConcurrentCommitsOneRoom(t, mongoLedger(t), 1)
}

func TestMongoLedger_Boundaries(t *testing.T) {
	testBoundaries(t, mongoLedger(t), 1)
}

func TestMongoLedger_DuplicateReference(t *testing.T) {
	testDuplicateReference(t, mongoLedger(t), 1, 2)
}

func TestMongoLedger_UnknownRoom(t *testing.T) {
	ledger := mongoLedger(t)
	err := ledger.Commit(context.Background(), booking(newRef(), 99, 1, 2))
	require.ErrorIs(t, err, bookingserrors.ErrRoomNotFound)
}
