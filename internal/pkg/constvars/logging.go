package constvars

const (
	LoggingRequestIDKey        = "request_id"
	LoggingMethodKey           = "method"
	LoggingEndpointKey         = "endpoint"
	LoggingRemoteAddrKey       = "remote_addr"
	LoggingUserAgentKey        = "user_agent"
	LoggingQueryKey            = "query"
	LoggingStatusCodeKey       = "status_code"
	LoggingDurationKey         = "duration"
	LoggingSuccessKey          = "success"
	LoggingUserIDKey           = "user_id"
	LoggingRoleKey             = "role"
	LoggingDoctorIDKey         = "doctor_id"
	LoggingAppointmentIDKey    = "appointment_id"
	LoggingAppointmentCountKey = "appointment_count"
	LoggingNotificationTypeKey = "notification_type"
)
