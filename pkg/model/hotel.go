package model

import "slices"

type RoomType string

const (
	RoomTypeSingle RoomType = "Single"
	RoomTypeDouble RoomType = "Double"
	RoomTypeDeluxe RoomType = "Deluxe"
)

// RoomTypes lists the known room classes in declaration order.
var RoomTypes = []RoomType{RoomTypeSingle, RoomTypeDouble, RoomTypeDeluxe}

func (t RoomType) Valid() bool {
	return slices.Contains(RoomTypes, t)
}

// ConventionalCapacity is the occupancy usually associated with a room class. It is a seeding
// convention only; allocation always uses Room.Capacity.
func (t RoomType) ConventionalCapacity() int {
	switch t {
	case RoomTypeSingle:
		return 1
	case RoomTypeDouble:
		return 2
	case RoomTypeDeluxe:
		return 4
	}
	return 0
}

type Hotel struct {
	ID    int64  `json:"id" bson:"_id"`
	Name  string `json:"name" bson:"name"`
	Rooms []Room `json:"rooms,omitempty" bson:"-"`
}

type Room struct {
	ID       int64    `json:"id" bson:"_id"`
	HotelID  int64    `json:"hotel_id" bson:"hotel_id"`
	Type     RoomType `json:"room_type" bson:"room_type"`
	Capacity int      `json:"capacity" bson:"capacity"`
}

// HotelSummary is the projection returned by hotel search.
type HotelSummary struct {
	ID   int64  `json:"id" bson:"_id"`
	Name string `json:"name" bson:"name"`
}
