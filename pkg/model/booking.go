package model

import (
	"time"
)

type Booking struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty"`
	Reference string    `json:"booking_reference" bson:"reference"`
	HotelID   int64     `json:"hotel_id" bson:"hotel_id"`
	RoomID    int64     `json:"room_id" bson:"room_id"`
	From      time.Time `json:"from" bson:"starts_at"`
	To        time.Time `json:"to" bson:"ends_at"`
	People    int       `json:"people" bson:"people"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

func (b *Booking) Interval() Interval {
	return Interval{From: b.From, To: b.To}
}

// BookingRequest is the engine input after transport decoding. Dates are compared as instants.
type BookingRequest struct {
	HotelID int64     `json:"hotel_id" validate:"required,min=1"`
	From    time.Time `json:"from" validate:"required"`
	To      time.Time `json:"to" validate:"required,gtfield=From"`
	People  int       `json:"people" validate:"required,min=1"`
}

func (r *BookingRequest) Interval() Interval {
	return Interval{From: r.From, To: r.To}
}

// AvailabilityQuery selects a hotel by id or, when HotelID is zero, by exact name.
type AvailabilityQuery struct {
	HotelID   int64     `json:"hotel_id" validate:"required_without=HotelName,omitempty,min=1"`
	HotelName string    `json:"hotel_name" validate:"required_without=HotelID,omitempty,max=200,hotel_name"`
	From      time.Time `json:"from" validate:"required"`
	To        time.Time `json:"to" validate:"required,gtfield=From"`
	People    int       `json:"people" validate:"required,min=1"`
}

func (q *AvailabilityQuery) Interval() Interval {
	return Interval{From: q.From, To: q.To}
}

// BookingForm is the JSON body of a booking request. Dates stay strings until parsed so that
// several ISO-8601 layouts can be accepted.
type BookingForm struct {
	HotelID int64  `json:"hotel_id"`
	From    string `json:"from"`
	To      string `json:"to"`
	People  int    `json:"people"`
}

// AvailabilityForm mirrors the availability query string.
type AvailabilityForm struct {
	HotelID   int64  `json:"hotel_id,omitempty"`
	HotelName string `json:"hotel_name,omitempty"`
	From      string `json:"from"`
	To        string `json:"to"`
	People    int    `json:"people"`
}

type BookingReference struct {
	Reference string `json:"booking_reference"`
}

type BookingDetail struct {
	Reference    string    `json:"booking_reference"`
	HotelID      int64     `json:"hotel_id"`
	HotelName    string    `json:"hotel_name"`
	RoomID       int64     `json:"room_id"`
	RoomType     RoomType  `json:"room_type"`
	RoomCapacity int       `json:"room_capacity"`
	From         time.Time `json:"from"`
	To           time.Time `json:"to"`
	People       int       `json:"people"`
}
