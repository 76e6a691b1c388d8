package models

import (
	"medibook-service/internal/pkg/constvars"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Appointment struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	Patient            primitive.ObjectID `bson:"patient"`
	Doctor             primitive.ObjectID `bson:"doctor"`
	Date               time.Time          `bson:"date"`
	Slot               string             `bson:"slot"`
	Status             string             `bson:"status"`
	Reason             string             `bson:"reason"`
	Notes              string             `bson:"notes,omitempty"`
	Prescription       string             `bson:"prescription,omitempty"`
	CancellationReason string             `bson:"cancellationReason,omitempty"`
	CreatedBy          string             `bson:"createdBy"`
	TimeModel          `bson:",inline"`
}

// IsActive reports whether the appointment occupies its slot for
// conflict-detection purposes.
func (a *Appointment) IsActive() bool {
	return a.Status == constvars.AppointmentStatusPending || a.Status == constvars.AppointmentStatusApproved
}

// StartsAt combines the calendar date with the slot's start time in the given
// location. Used for the cancellation-window check.
func (a *Appointment) StartsAt(loc *time.Location) time.Time {
	start := a.Date.In(loc)
	if parsed, err := time.Parse(constvars.SlotTimeLayout, SlotStart(a.Slot)); err == nil {
		start = time.Date(start.Year(), start.Month(), start.Day(), parsed.Hour(), parsed.Minute(), 0, 0, loc)
	}
	return start
}

// SlotStart extracts the "HH:MM" start token from a "HH:MM-HH:MM" slot string.
func SlotStart(slot string) string {
	for i := 0; i < len(slot); i++ {
		if slot[i] == '-' {
			return slot[:i]
		}
	}
	return slot
}
