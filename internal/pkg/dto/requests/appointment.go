package requests

import "time"

type CreateAppointment struct {
	DoctorID string `json:"doctorId" validate:"required"`
	Date     string `json:"date" validate:"required"`
	Slot     string `json:"slot" validate:"required,slot"`
	Reason   string `json:"reason" validate:"required,max=500"`
}

type RejectAppointment struct {
	Reason string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

type CancelAppointment struct {
	Reason string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

type CompleteAppointment struct {
	Notes        string `json:"notes,omitempty" validate:"omitempty,max=1000"`
	Prescription string `json:"prescription,omitempty" validate:"omitempty,max=1000"`
}

// AppointmentListQuery scopes a personal (patient/doctor) appointment listing.
type AppointmentListQuery struct {
	Status string
	From   *time.Time
	To     *time.Time
}

// AdminAppointmentListQuery is the admin-level listing with arbitrary
// counterpart filters and pagination.
type AdminAppointmentListQuery struct {
	Status    string
	DoctorID  string
	PatientID string
	From      *time.Time
	To        *time.Time
	Page      int
	Limit     int
}
