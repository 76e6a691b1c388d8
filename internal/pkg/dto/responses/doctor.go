package responses

import "time"

type TimeWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Pincode string `json:"pincode,omitempty"`
	Country string `json:"country,omitempty"`
}

type Doctor struct {
	ID              string       `json:"id"`
	User            *User        `json:"user,omitempty"`
	Specialization  string       `json:"specialization"`
	ExperienceYears int          `json:"experienceYears"`
	Qualification   []string     `json:"qualification"`
	ClinicName      string       `json:"clinicName"`
	Address         *Address     `json:"address,omitempty"`
	ConsultationFee float64      `json:"consultationFee"`
	AvailableDays   []string     `json:"availableDays"`
	TimeSlots       []TimeWindow `json:"timeSlots"`
	IsVerified      bool         `json:"isVerified"`
	IsActive        bool         `json:"isActive"`
	Rating          float64      `json:"rating"`
	TotalReviews    int          `json:"totalReviews"`
	Bio             string       `json:"bio,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
}
