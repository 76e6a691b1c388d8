package responses

import "time"

type Review struct {
	ID            string    `json:"id"`
	DoctorID      string    `json:"doctorId"`
	Patient       *User     `json:"patient,omitempty"`
	AppointmentID string    `json:"appointmentId"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
