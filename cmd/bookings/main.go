package main

import (
	"context"

	adminhandler "hotelbooking/internal/admin/handler"
	"hotelbooking/internal/bookings/events"
	bookingshandler "hotelbooking/internal/bookings/handler"
	"hotelbooking/internal/bookings/reference"
	"hotelbooking/internal/bookings/service"
	"hotelbooking/internal/bookings/validator"
	hotelshandler "hotelbooking/internal/hotels/handler"
	hotelsservice "hotelbooking/internal/hotels/service"
	"hotelbooking/internal/seed"
	"hotelbooking/internal/storage"
	"hotelbooking/pkg/app"
	"hotelbooking/pkg/config"
	"hotelbooking/pkg/contracts"
	"hotelbooking/pkg/kafka"
	kafka_middleware "hotelbooking/pkg/kafka/middleware"
)

const ServiceName = "bookings"

func main() {
	cfg := config.Load(ServiceName)
	cfg.Log.Info("Starting Bookings service")

	serverApp := app.NewApplication()
	stores := storage.Open(cfg)
	seeder := seed.NewSeeder(stores.Hotels, stores.Ledger, cfg.Log)

	if cfg.StorageDriver == config.StorageMemory {
		if _, err := seeder.SeedRiverView(context.Background()); err != nil {
			cfg.Log.Fatal("Failed to seed in-memory storage", "error", err)
		}
	}

	publisher := initEvents(cfg, serverApp)
	bookingService := initServices(cfg, stores, publisher)

	handlers := []contracts.Handler{
		bookingshandler.NewBookingHandler(bookingService, cfg.Log),
		hotelshandler.NewHotelHandler(hotelsservice.NewHotelService(stores.Hotels, cfg), cfg.Log),
	}
	if cfg.EnableAdminRoutes {
		cfg.Log.Warn("Admin routes enabled")
		handlers = append(handlers, adminhandler.NewAdminHandler(seeder, cfg.Log))
	}

	health := adminhandler.NewHealthHandler(map[string]adminhandler.Pinger{
		"bookings": stores.Ledger,
		"hotels":   stores.Hotels,
	}, cfg.Log)

	serverApp.SetApp(cfg, health, handlers...)
	serverApp.Run()
}

func initEvents(cfg *config.Config, serverApp *app.Application) service.EventPublisher {
	if !cfg.KafkaEnabled {
		cfg.Log.Info("Kafka disabled, booking events are not published")
		return events.NoopPublisher{}
	}

	producer, err := kafka.NewProducer(cfg.Kafka, cfg.Log, cfg.KafkaBookingsTopic, cfg.KafkaBookingsDLQTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}
	producer.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))
	serverApp.OnShutdown("kafka-producer", producer.Close)

	cfg.Log.Info("Kafka producer initialized", "topic", producer.Topic())
	return events.NewKafkaPublisher(producer)
}

func initServices(cfg *config.Config, stores *storage.Stores, publisher service.EventPublisher) service.BookingService {
	bookingService := service.NewBookingService(
		stores.Ledger,
		stores.Hotels,
		reference.NewGenerator(),
		publisher,
		validator.NewBookingValidator(cfg.Log),
		cfg,
	)

	cfg.Log.Info("Booking service initialized", "storage", cfg.StorageDriver)
	return bookingService
}
