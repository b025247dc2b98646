package mysql

import (
	"context"
	"fmt"

	mysqldb "hotelbooking/pkg/db/mysql"
	"hotelbooking/pkg/logger"

	"gorm.io/gorm"
)

// RunMigration creates or updates the hotels, rooms and bookings tables with their indexes.
func RunMigration(ctx context.Context, db *gorm.DB, log *logger.Logger) error {
	log.Info("Running MySQL migrations")

	for _, record := range mysqldb.Records() {
		if err := db.WithContext(ctx).AutoMigrate(record); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", record, err)
		}
		log.Info("Ensured table", "record", fmt.Sprintf("%T", record))
	}

	log.Info("All migrations applied successfully")
	return nil
}
