package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"

	// Auth messages
	SignupSuccess = "user registered successfully"
	LoginSuccess  = "login successful"
	LogoutSuccess = "logged out successfully"
	GetMeSuccess  = "get current user successfully"

	// Profile messages
	ProfileUpdatedSuccess = "profile updated successfully"
	ProfileGetSuccess     = "get profile successfully"

	// Doctor messages
	DoctorListSuccess     = "doctors fetched successfully"
	DoctorGetSuccess      = "doctor fetched successfully"
	DoctorCreatedSuccess  = "doctor created successfully"
	DoctorUpdatedSuccess  = "doctor updated successfully"
	DoctorVerifiedSuccess = "doctor verified successfully"

	// Appointment messages
	AppointmentRequestedSuccess = "appointment requested successfully"
	AppointmentListSuccess      = "appointments fetched successfully"
	AppointmentGetSuccess       = "appointment fetched successfully"
	AppointmentApprovedSuccess  = "appointment approved successfully"
	AppointmentRejectedSuccess  = "appointment rejected successfully"
	AppointmentCancelledSuccess = "appointment cancelled successfully"
	AppointmentCompletedSuccess = "appointment completed successfully"

	// Notification messages
	NotificationListSuccess    = "notifications fetched successfully"
	NotificationReadSuccess    = "notification marked as read"
	NotificationReadAllSuccess = "all notifications marked as read"

	// Review messages
	ReviewCreatedSuccess = "review submitted successfully"
	ReviewListSuccess    = "reviews fetched successfully"

	// Admin messages
	DashboardStatsSuccess = "dashboard statistics fetched successfully"
	PatientListSuccess    = "patients fetched successfully"
)
