package exceptions

import (
	"fmt"
	"medibook-service/internal/pkg/constvars"
)

var (
	// Input / parsing
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindValidation, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindValidation, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotParseDate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindValidation, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseDate)
	}
	ErrURLParamIDValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindValidation, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamIDValidationFailed, paramName))
	}

	// Auth
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, KindUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, KindUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalidOrExpired)
	}
	ErrSessionInvalid = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, KindUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthInvalidSession)
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
	}
	ErrInvalidCredentials = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, KindUnauthorized, constvars.ErrClientInvalidCredentials, constvars.ErrDevInvalidCredentials)
	}
	ErrHashPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevFailedToHashPassword)
	}
	ErrNotMatchRoleType = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, KindForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevRoleTypeDoesntMatch)
	}
	ErrEmailAlreadyExist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, KindConflict, constvars.ErrClientEmailAlreadyExists, constvars.ErrDevEmailAlreadyExists)
	}

	// Lookups
	ErrUserNotExist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, KindNotFound, constvars.ErrClientUserNotFound, constvars.ErrDevUserNotExists)
	}
	ErrDoctorNotExist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, KindNotFound, constvars.ErrClientDoctorNotFound, constvars.ErrDevDoctorNotExists)
	}
	ErrDoctorProfileNotExist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, KindNotFound, constvars.ErrClientDoctorNotFound, constvars.ErrDevDoctorProfileNotExists)
	}
	ErrAppointmentNotExist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, KindNotFound, constvars.ErrClientAppointmentNotFound, constvars.ErrDevAppointmentNotExists)
	}
	ErrNotificationNotExist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, KindNotFound, constvars.ErrClientNotificationNotFound, constvars.ErrDevNotificationNotExists)
	}

	// Availability
	ErrDoctorUnavailable = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindUnavailable, constvars.ErrClientDoctorUnavailable, constvars.ErrDevDoctorNotBookable)
	}
	ErrDayUnavailable = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindDayUnavailable, constvars.ErrClientDayUnavailable, constvars.ErrDevDayNotAvailable)
	}
	ErrInvalidSlot = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindInvalidSlot, constvars.ErrClientInvalidSlot, constvars.ErrDevSlotOutsideWindows)
	}

	// Appointment lifecycle
	ErrSlotAlreadyBooked = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, KindConflict, constvars.ErrClientSlotAlreadyBooked, constvars.ErrDevSlotConflict)
	}
	ErrAppointmentForbidden = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, KindForbidden, constvars.ErrClientAppointmentForbidden, constvars.ErrDevActorNotOwner)
	}
	ErrOnlyPendingApprovable = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindInvalidState, constvars.ErrClientOnlyPendingApprovable, constvars.ErrDevIllegalStatusTransition)
	}
	ErrOnlyPendingRejectable = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindInvalidState, constvars.ErrClientOnlyPendingRejectable, constvars.ErrDevIllegalStatusTransition)
	}
	ErrOnlyApprovedCompletable = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindInvalidState, constvars.ErrClientOnlyApprovedCompletable, constvars.ErrDevIllegalStatusTransition)
	}
	ErrOnlyActiveCancellable = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindInvalidState, constvars.ErrClientOnlyActiveCancellable, constvars.ErrDevIllegalStatusTransition)
	}
	ErrCancellationTooLate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindTooLate, constvars.ErrClientCancellationTooLate, constvars.ErrDevCancellationWindow)
	}

	// Reviews
	ErrReviewAppointmentNotDone = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindInvalidState, constvars.ErrClientReviewNotCompleted, constvars.ErrDevReviewAppointmentNotDone)
	}
	ErrReviewAlreadyExists = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, KindConflict, constvars.ErrClientReviewAlreadyExists, constvars.ErrDevReviewDuplicate)
	}

	// Server
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, KindInternal, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevServerProcess)
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateDocument)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToIterateDocuments)
	}
	ErrMongoDBCountDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToCountDocuments)
	}
	ErrMongoDBNotObjectID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindValidation, constvars.ErrClientCannotProcessRequest, constvars.ErrDevDBStringNotObjectID)
	}

	// Redis
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublish, queueName))
	}
)
