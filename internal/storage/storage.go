// Package storage opens the ledger and hotel directory for the configured driver.
package storage

import (
	"context"
	"fmt"

	bookingsrepo "hotelbooking/internal/bookings/repository"
	hotelsrepo "hotelbooking/internal/hotels/repository"
	mongomigration "hotelbooking/internal/migrations/mongo"
	mysqlmigration "hotelbooking/internal/migrations/mysql"
	"hotelbooking/pkg/config"
)

type Stores struct {
	Ledger bookingsrepo.BookingLedger
	Hotels hotelsrepo.HotelRepository
}

// Open connects the configured driver and builds both stores on it. Connection failures are fatal.
func Open(cfg *config.Config) *Stores {
	cfg.SetStorage()

	switch cfg.StorageDriver {
	case config.StorageMySQL:
		return &Stores{
			Ledger: bookingsrepo.NewMySQLBookingLedger(cfg),
			Hotels: hotelsrepo.NewMySQLHotelRepository(cfg),
		}
	case config.StorageMemory:
		return &Stores{
			Ledger: bookingsrepo.NewMemoryBookingLedger(),
			Hotels: hotelsrepo.NewMemoryHotelRepository(),
		}
	default:
		return &Stores{
			Ledger: bookingsrepo.NewMongoBookingLedger(cfg),
			Hotels: hotelsrepo.NewMongoHotelRepository(cfg),
		}
	}
}

// Migrate brings the schema of the configured driver up to date. Storage must be open.
func Migrate(ctx context.Context, cfg *config.Config) error {
	switch cfg.StorageDriver {
	case config.StorageMongo:
		return mongomigration.RunMigration(ctx, cfg.Client.Mongo.Database(cfg.MongoDatabaseName), cfg.Log)
	case config.StorageMySQL:
		return mysqlmigration.RunMigration(ctx, cfg.Client.SQL, cfg.Log)
	case config.StorageMemory:
		cfg.Log.Info("In-memory storage needs no migration")
		return nil
	}
	return fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}
