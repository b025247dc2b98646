package validators

import (
	"hotelbooking/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
)

var HotelValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"required":             []string{"_id", "name"},
		"additionalProperties": true,
		"properties": bson.M{
			"_id": bson.M{
				"bsonType": integer,
				"minimum":  1,
			},
			"name": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 200,
			},
		},
	},
}

var RoomValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"_id",
			"hotel_id",
			"room_type",
			"capacity",
			"ledger_version",
		},
		"additionalProperties": true,
		"properties": bson.M{
			"_id": bson.M{
				"bsonType": integer,
				"minimum":  1,
			},
			"hotel_id": bson.M{
				"bsonType": integer,
				"minimum":  1,
			},
			"room_type": bson.M{
				"bsonType": "string",
				"enum":     model.RoomTypes,
			},
			"capacity": bson.M{
				"bsonType": integer,
				"minimum":  1,
			},
			"ledger_version": bson.M{
				"bsonType": integer,
				"minimum":  0,
			},
		},
	},
}
