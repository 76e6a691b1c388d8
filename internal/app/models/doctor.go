package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// TimeWindow is a doctor-configured working window; slot start times must fall
// inside one of these on an available day.
type TimeWindow struct {
	Start string `json:"start" bson:"start"`
	End   string `json:"end" bson:"end"`
}

type Address struct {
	Street  string `json:"street,omitempty" bson:"street,omitempty"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state,omitempty" bson:"state,omitempty"`
	Pincode string `json:"pincode,omitempty" bson:"pincode,omitempty"`
	Country string `json:"country,omitempty" bson:"country,omitempty"`
}

type Doctor struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	User            primitive.ObjectID `bson:"user"`
	Specialization  string             `bson:"specialization"`
	ExperienceYears int                `bson:"experienceYears"`
	Qualification   []string           `bson:"qualification"`
	ClinicName      string             `bson:"clinicName"`
	Address         Address            `bson:"address,omitempty"`
	ConsultationFee float64            `bson:"consultationFee"`
	AvailableDays   []string           `bson:"availableDays"`
	TimeSlots       []TimeWindow       `bson:"timeSlots"`
	IsVerified      bool               `bson:"isVerified"`
	IsActive        bool               `bson:"isActive"`
	Rating          float64            `bson:"rating"`
	TotalReviews    int                `bson:"totalReviews"`
	Bio             string             `bson:"bio,omitempty"`
	TimeModel       `bson:",inline"`
}

// AvailableOn reports whether the given lowercase weekday name is one of the
// doctor's configured days.
func (d *Doctor) AvailableOn(weekday string) bool {
	for _, day := range d.AvailableDays {
		if day == weekday {
			return true
		}
	}
	return false
}
