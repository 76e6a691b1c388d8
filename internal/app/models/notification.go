package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type NotificationMeta struct {
	AppointmentID primitive.ObjectID `json:"appointmentId,omitempty" bson:"appointmentId,omitempty"`
	DoctorID      primitive.ObjectID `json:"doctorId,omitempty" bson:"doctorId,omitempty"`
	PatientID     primitive.ObjectID `json:"patientId,omitempty" bson:"patientId,omitempty"`
}

type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	User      primitive.ObjectID `bson:"user"`
	Type      string             `bson:"type"`
	Title     string             `bson:"title"`
	Message   string             `bson:"message"`
	IsRead    bool               `bson:"isRead"`
	Meta      NotificationMeta   `bson:"meta,omitempty"`
	TimeModel `bson:",inline"`
}
