package validators

import "go.mongodb.org/mongo-driver/bson"

var integer = []string{"int", "long"}

var BookingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"reference",
			"hotel_id",
			"room_id",
			"starts_at",
			"ends_at",
			"people",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"reference": bson.M{
				"bsonType": "string",
				"pattern":  "^[0-9a-f]{32}$",
			},

			"hotel_id": bson.M{
				"bsonType": integer,
				"minimum":  1,
			},

			"room_id": bson.M{
				"bsonType": integer,
				"minimum":  1,
			},

			"starts_at": bson.M{
				"bsonType": "date",
			},

			"ends_at": bson.M{
				"bsonType": "date",
			},

			"people": bson.M{
				"bsonType": integer,
				"minimum":  1,
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
