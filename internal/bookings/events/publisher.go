// Package events publishes booking domain events to Kafka.
package events

import (
	"context"
	"strconv"
	"time"

	"hotelbooking/pkg/kafka"
	"hotelbooking/pkg/middleware"
	"hotelbooking/pkg/model"
)

const (
	EventBookingCreated = "booking.created"
	SchemaVersion       = "1"
	Source              = "hotelbooking.bookings"
)

type BookingCreatedEvent struct {
	Reference string    `json:"booking_reference"`
	HotelID   int64     `json:"hotel_id"`
	RoomID    int64     `json:"room_id"`
	From      time.Time `json:"from"`
	To        time.Time `json:"to"`
	People    int       `json:"people"`
	CreatedAt time.Time `json:"created_at"`
}

// MessagePublisher is satisfied by *kafka.Producer.
type MessagePublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

type KafkaPublisher struct {
	producer MessagePublisher
}

func NewKafkaPublisher(producer MessagePublisher) *KafkaPublisher {
	return &KafkaPublisher{producer: producer}
}

// BookingCreated keys the message by room id so events for one room stay ordered.
func (p *KafkaPublisher) BookingCreated(ctx context.Context, booking *model.Booking) error {
	msg := kafka.NewMessage().
		WithKey(strconv.FormatInt(booking.RoomID, 10)).
		WithValue(BookingCreatedEvent{
			Reference: booking.Reference,
			HotelID:   booking.HotelID,
			RoomID:    booking.RoomID,
			From:      booking.From,
			To:        booking.To,
			People:    booking.People,
			CreatedAt: booking.CreatedAt,
		}).
		WithEventType(EventBookingCreated).
		WithSchemaVersion(SchemaVersion).
		WithSource(Source).
		WithCorrelationID(middleware.RequestID(ctx)).
		Build()

	return p.producer.Publish(ctx, msg)
}

// NoopPublisher drops events. Used when Kafka is disabled.
type NoopPublisher struct{}

func (NoopPublisher) BookingCreated(context.Context, *model.Booking) error {
	return nil
}
