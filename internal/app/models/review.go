package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Review struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Doctor      primitive.ObjectID `bson:"doctor"`
	Patient     primitive.ObjectID `bson:"patient"`
	Appointment primitive.ObjectID `bson:"appointment"`
	Rating      int                `bson:"rating"`
	Comment     string             `bson:"comment,omitempty"`
	TimeModel   `bson:",inline"`
}
