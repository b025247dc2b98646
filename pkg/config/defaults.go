package config

import "time"

const (
	StorageMongo  = "mongo"
	StorageMySQL  = "mysql"
	StorageMemory = "memory"
)

const (
	DefaultPort     = "8080"
	DefaultLogLevel = "info"
	DefaultDotEnv   = ".env"

	DefaultStorageDriver = StorageMongo

	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "hotelbooking"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultMySQLDSN         = "root:root@tcp(localhost:3306)/hotelbooking?charset=utf8mb4&parseTime=True&loc=UTC"
	DefaultMySQLConnTimeout = 10 * time.Second

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultEnableAdminRoutes = false

	DefaultKafkaEnabled          = false
	DefaultKafkaBookingsTopic    = "hotel.bookings"
	DefaultKafkaBookingsDLQTopic = "hotel.bookings.dlq"
)
