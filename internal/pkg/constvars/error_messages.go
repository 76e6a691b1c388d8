package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"role":     "must be either 'patient' or 'doctor'",
	"slot":     "must match the HH:MM-HH:MM slot format",
	"weekday":  "must be a lowercase weekday name",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gte":   true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientSomethingWrongWithApplication = "something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "cannot process your request"
	ErrClientNotAuthorized                 = "you are not authorized to access this resource"
	ErrClientNotLoggedIn                   = "you are not logged in, please login first"
	ErrClientInvalidCredentials            = "invalid credentials or account inactive"
	ErrClientEmailAlreadyExists            = "user already exists with this email"

	ErrClientUserNotFound         = "user not found"
	ErrClientDoctorNotFound       = "doctor not found"
	ErrClientAppointmentNotFound  = "appointment not found"
	ErrClientNotificationNotFound = "notification not found"
	ErrClientReviewNotFound       = "review not found"

	ErrClientDoctorUnavailable    = "doctor not available for appointments"
	ErrClientDayUnavailable       = "doctor not available on this day"
	ErrClientInvalidSlot          = "invalid time slot for this doctor"
	ErrClientSlotAlreadyBooked    = "this time slot is already booked"
	ErrClientAppointmentForbidden = "access denied"

	ErrClientOnlyPendingApprovable   = "only pending appointments can be approved"
	ErrClientOnlyPendingRejectable   = "only pending appointments can be rejected"
	ErrClientOnlyApprovedCompletable = "only approved appointments can be completed"
	ErrClientOnlyActiveCancellable   = "only pending or approved appointments can be cancelled"
	ErrClientCancellationTooLate     = "appointments can only be cancelled at least 2 hours in advance"

	ErrClientReviewNotCompleted  = "only completed appointments can be reviewed"
	ErrClientReviewAlreadyExists = "this appointment has already been reviewed"
	ErrClientServerLongRespond   = "server took too long to respond, please try again later"
)

// Error messages for developers
const (
	ErrDevValidationFailed           = "request validation failed"
	ErrDevCannotParseJSON            = "failed to parse request body as JSON"
	ErrDevCannotParseDate            = "failed to parse date parameter"
	ErrDevURLParamIDValidationFailed = "url param '%s' is not a valid object id"

	ErrDevAuthTokenMissing          = "authorization token missing from request"
	ErrDevAuthTokenInvalidOrExpired = "authorization token invalid or expired"
	ErrDevAuthInvalidSession        = "session not found or expired"
	ErrDevAuthGenerateToken         = "failed to generate JWT"
	ErrDevAuthSigningMethod         = "unexpected JWT signing method"
	ErrDevInvalidCredentials        = "email/password mismatch or user inactive"
	ErrDevFailedToHashPassword      = "failed to hash password with bcrypt"
	ErrDevRoleTypeDoesntMatch       = "authenticated role is not allowed for this route"
	ErrDevEmailAlreadyExists        = "email already registered"

	ErrDevUserNotExists          = "user document does not exist"
	ErrDevDoctorNotExists        = "doctor document does not exist"
	ErrDevAppointmentNotExists   = "appointment document does not exist"
	ErrDevNotificationNotExists  = "notification document does not exist or is not owned by caller"
	ErrDevDoctorProfileNotExists = "no doctor profile found for this user"

	ErrDevDoctorNotBookable       = "doctor is unverified or inactive"
	ErrDevDayNotAvailable         = "requested weekday not in doctor's availableDays"
	ErrDevSlotOutsideWindows      = "slot start does not fall inside any configured time window"
	ErrDevSlotConflict            = "active appointment already occupies (doctor, date, slot)"
	ErrDevSlotConflictOnInsert    = "partial unique index rejected appointment insert"
	ErrDevIllegalStatusTransition = "appointment status does not allow this transition"
	ErrDevCancellationWindow      = "appointment starts in under the cancellation window"
	ErrDevActorNotOwner           = "caller does not own this appointment"

	ErrDevReviewDuplicate          = "unique index rejected review insert for appointment"
	ErrDevReviewAppointmentNotDone = "appointment is not in completed status"
	ErrDevServerDeadlineExceeded   = "request processing exceeded the configured deadline"
	ErrDevServerProcess            = "unexpected server error"

	ErrDevDBFailedToFindDocument     = "mongodb failed to find document"
	ErrDevDBFailedToInsertDocument   = "mongodb failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "mongodb failed to update document"
	ErrDevDBFailedToDeleteDocument   = "mongodb failed to delete document"
	ErrDevDBFailedToIterateDocuments = "mongodb failed to iterate cursor"
	ErrDevDBFailedToCountDocuments   = "mongodb failed to count documents"
	ErrDevDBStringNotObjectID        = "value is not a valid mongodb object id"

	ErrDevRedisGetData    = "redis failed to get data"
	ErrDevRedisSetData    = "redis failed to set data"
	ErrDevRedisDeleteData = "redis failed to delete data"
	ErrDevRabbitMQPublish = "rabbitmq failed to publish message to queue %s"
)
