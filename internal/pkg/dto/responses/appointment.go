package responses

import "time"

type Appointment struct {
	ID                 string    `json:"id"`
	Patient            *User     `json:"patient,omitempty"`
	Doctor             *Doctor   `json:"doctor,omitempty"`
	Date               string    `json:"date"`
	Slot               string    `json:"slot"`
	Status             string    `json:"status"`
	Reason             string    `json:"reason"`
	Notes              string    `json:"notes,omitempty"`
	Prescription       string    `json:"prescription,omitempty"`
	CancellationReason string    `json:"cancellationReason,omitempty"`
	CreatedBy          string    `json:"createdBy"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
