package responses

import "time"

type NotificationMeta struct {
	AppointmentID string `json:"appointmentId,omitempty"`
	DoctorID      string `json:"doctorId,omitempty"`
	PatientID     string `json:"patientId,omitempty"`
}

type Notification struct {
	ID        string           `json:"id"`
	Type      string           `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	IsRead    bool             `json:"isRead"`
	Meta      NotificationMeta `json:"meta,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
}

type NotificationList struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int64          `json:"unreadCount"`
}
