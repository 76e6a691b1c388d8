package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
	CONTEXT_SESSION_KEY    ContextKey = "session"
	CONTEXT_SESSION_ID_KEY ContextKey = "session_id"
)

// User roles
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

// Appointment statuses
const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusApproved  = "approved"
	AppointmentStatusRejected  = "rejected"
	AppointmentStatusCancelled = "cancelled"
	AppointmentStatusCompleted = "completed"
)

// Appointment creator kinds
const (
	AppointmentCreatedByPatient = "patient"
	AppointmentCreatedByAdmin   = "admin"
)

// Notification types
const (
	NotificationAppointmentRequest   = "appointment_request"
	NotificationAppointmentApproved  = "appointment_approved"
	NotificationAppointmentRejected  = "appointment_rejected"
	NotificationAppointmentCancelled = "appointment_cancelled"
	NotificationAppointmentCompleted = "appointment_completed"
	NotificationDoctorVerified       = "doctor_verified"
	NotificationNewReview            = "new_review"
)

// Mongo collections
const (
	MongoCollectionUsers         = "users"
	MongoCollectionDoctors       = "doctors"
	MongoCollectionAppointments  = "appointments"
	MongoCollectionNotifications = "notifications"
	MongoCollectionReviews       = "reviews"
)

// Weekday names stored on a doctor profile, lowercase.
var WeekdayNames = []string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

const (
	// SlotTimeLayout is the wall-clock layout of a slot boundary ("09:00").
	SlotTimeLayout = "15:04"
	// AppointmentDateLayout is the calendar-date layout used on the wire.
	AppointmentDateLayout = "2006-01-02"
)

const (
	PaginationDefaultPage  = 1
	PaginationDefaultLimit = 10
	NotificationPageLimit  = 20
)

// CancellationWindowHours is the minimum advance required to cancel an appointment.
const CancellationWindowHours = 2
