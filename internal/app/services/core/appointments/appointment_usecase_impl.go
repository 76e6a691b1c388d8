package appointments

import (
	"context"
	"errors"
	"fmt"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AppointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	DoctorRepository      contracts.DoctorRepository
	UserRepository        contracts.UserRepository
	Notifier              contracts.Notifier
	Clock                 contracts.Clock
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	doctorRepository contracts.DoctorRepository,
	userRepository contracts.UserRepository,
	notifier contracts.Notifier,
	clock contracts.Clock,
) contracts.AppointmentUsecase {
	return &AppointmentUsecase{
		AppointmentRepository: appointmentRepository,
		DoctorRepository:      doctorRepository,
		UserRepository:        userRepository,
		Notifier:              notifier,
		Clock:                 clock,
	}
}

func (uc *AppointmentUsecase) Create(ctx context.Context, session *models.Session, request *requests.CreateAppointment) (*responses.Appointment, error) {
	patientID, err := primitive.ObjectIDFromHex(session.UserID)
	if err != nil {
		return nil, exceptions.ErrSessionInvalid(err)
	}
	doctorID, err := primitive.ObjectIDFromHex(request.DoctorID)
	if err != nil {
		return nil, exceptions.ErrURLParamIDValidation(err, "doctorId")
	}
	date, err := utils.ParseAppointmentDate(request.Date, uc.Clock.Location())
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	doctor, err := uc.ValidateAvailability(ctx, doctorID, date, request.Slot)
	if err != nil {
		return nil, err
	}

	// Pre-flight check for the common case; the partial unique index still
	// decides the race.
	taken, err := uc.AppointmentRepository.ExistsActive(ctx, doctorID, date, request.Slot)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, exceptions.ErrSlotAlreadyBooked(errors.New("active appointment holds the slot"))
	}

	now := uc.Clock.Now()
	appointment := &models.Appointment{
		Patient:   patientID,
		Doctor:    doctorID,
		Date:      date,
		Slot:      request.Slot,
		Status:    constvars.AppointmentStatusPending,
		Reason:    request.Reason,
		CreatedBy: constvars.AppointmentCreatedByPatient,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}
	appointment.ID = appointmentID

	uc.Notifier.Notify(ctx, doctor.User,
		constvars.NotificationAppointmentRequest,
		"New appointment request",
		fmt.Sprintf("%s requested an appointment on %s at %s", session.Name, date.Format(constvars.AppointmentDateLayout), request.Slot),
		models.NotificationMeta{AppointmentID: appointmentID, DoctorID: doctorID, PatientID: patientID},
	)

	return uc.buildResponse(ctx, appointment)
}

func (uc *AppointmentUsecase) FindAll(ctx context.Context, session *models.Session, query *requests.AppointmentListQuery) ([]responses.Appointment, error) {
	userID, err := primitive.ObjectIDFromHex(session.UserID)
	if err != nil {
		return nil, exceptions.ErrSessionInvalid(err)
	}

	var appointments []models.Appointment
	switch {
	case session.IsPatient():
		appointments, err = uc.AppointmentRepository.FindForPatient(ctx, userID, query)
	case session.IsDoctor():
		doctor, findErr := uc.DoctorRepository.FindByUserID(ctx, userID)
		if findErr != nil {
			return nil, findErr
		}
		if doctor == nil {
			return nil, exceptions.ErrDoctorProfileNotExist(errors.New("no profile for user"))
		}
		appointments, err = uc.AppointmentRepository.FindForDoctor(ctx, doctor.ID, query)
	default:
		return nil, exceptions.ErrNotMatchRoleType(errors.New("role has no personal listing"))
	}
	if err != nil {
		return nil, err
	}

	result := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		response, err := uc.buildResponse(ctx, &appointments[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *response)
	}
	return result, nil
}

func (uc *AppointmentUsecase) FindByID(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error) {
	appointment, err := uc.resolveAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if err := uc.authorizeRead(ctx, session, appointment); err != nil {
		return nil, err
	}
	return uc.buildResponse(ctx, appointment)
}

func (uc *AppointmentUsecase) Approve(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error) {
	appointment, err := uc.resolveAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if err := uc.authorizeDoctorAction(ctx, session, appointment); err != nil {
		return nil, err
	}
	if appointment.Status != constvars.AppointmentStatusPending {
		return nil, exceptions.ErrOnlyPendingApprovable(errors.New("status is " + appointment.Status))
	}

	appointment, err = uc.transition(ctx, appointment, constvars.AppointmentStatusPending, map[string]interface{}{
		"status": constvars.AppointmentStatusApproved,
	}, exceptions.ErrOnlyPendingApprovable)
	if err != nil {
		return nil, err
	}

	uc.Notifier.Notify(ctx, appointment.Patient,
		constvars.NotificationAppointmentApproved,
		"Appointment approved",
		fmt.Sprintf("Your appointment on %s at %s has been approved", appointment.Date.Format(constvars.AppointmentDateLayout), appointment.Slot),
		models.NotificationMeta{AppointmentID: appointment.ID, DoctorID: appointment.Doctor, PatientID: appointment.Patient},
	)
	return uc.buildResponse(ctx, appointment)
}

func (uc *AppointmentUsecase) Reject(ctx context.Context, session *models.Session, appointmentID string, request *requests.RejectAppointment) (*responses.Appointment, error) {
	appointment, err := uc.resolveAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if err := uc.authorizeDoctorAction(ctx, session, appointment); err != nil {
		return nil, err
	}
	if appointment.Status != constvars.AppointmentStatusPending {
		return nil, exceptions.ErrOnlyPendingRejectable(errors.New("status is " + appointment.Status))
	}

	set := map[string]interface{}{"status": constvars.AppointmentStatusRejected}
	if request.Reason != "" {
		set["cancellationReason"] = request.Reason
	}
	appointment, err = uc.transition(ctx, appointment, constvars.AppointmentStatusPending, set, exceptions.ErrOnlyPendingRejectable)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Your appointment on %s at %s has been rejected", appointment.Date.Format(constvars.AppointmentDateLayout), appointment.Slot)
	if request.Reason != "" {
		message += ": " + request.Reason
	}
	uc.Notifier.Notify(ctx, appointment.Patient,
		constvars.NotificationAppointmentRejected,
		"Appointment rejected",
		message,
		models.NotificationMeta{AppointmentID: appointment.ID, DoctorID: appointment.Doctor, PatientID: appointment.Patient},
	)
	return uc.buildResponse(ctx, appointment)
}

func (uc *AppointmentUsecase) Cancel(ctx context.Context, session *models.Session, appointmentID string, request *requests.CancelAppointment) (*responses.Appointment, error) {
	appointment, err := uc.resolveAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	cancelledByPatient, err := uc.authorizeCancel(ctx, session, appointment)
	if err != nil {
		return nil, err
	}
	if !appointment.IsActive() {
		return nil, exceptions.ErrOnlyActiveCancellable(errors.New("status is " + appointment.Status))
	}
	if appointment.StartsAt(uc.Clock.Location()).Sub(uc.Clock.Now()) < constvars.CancellationWindowHours*time.Hour {
		return nil, exceptions.ErrCancellationTooLate(errors.New("start is inside the cancellation window"))
	}

	expected := appointment.Status
	set := map[string]interface{}{"status": constvars.AppointmentStatusCancelled}
	if request.Reason != "" {
		set["cancellationReason"] = request.Reason
	}
	appointment, err = uc.transition(ctx, appointment, expected, set, exceptions.ErrOnlyActiveCancellable)
	if err != nil {
		return nil, err
	}

	// Notify the counterparty of whoever cancelled.
	recipient := appointment.Patient
	if cancelledByPatient {
		doctor, err := uc.DoctorRepository.FindByID(ctx, appointment.Doctor)
		if err != nil {
			return nil, err
		}
		if doctor != nil {
			recipient = doctor.User
		}
	}
	uc.Notifier.Notify(ctx, recipient,
		constvars.NotificationAppointmentCancelled,
		"Appointment cancelled",
		fmt.Sprintf("The appointment on %s at %s has been cancelled", appointment.Date.Format(constvars.AppointmentDateLayout), appointment.Slot),
		models.NotificationMeta{AppointmentID: appointment.ID, DoctorID: appointment.Doctor, PatientID: appointment.Patient},
	)
	return uc.buildResponse(ctx, appointment)
}

func (uc *AppointmentUsecase) Complete(ctx context.Context, session *models.Session, appointmentID string, request *requests.CompleteAppointment) (*responses.Appointment, error) {
	appointment, err := uc.resolveAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if err := uc.authorizeDoctorAction(ctx, session, appointment); err != nil {
		return nil, err
	}
	if appointment.Status != constvars.AppointmentStatusApproved {
		return nil, exceptions.ErrOnlyApprovedCompletable(errors.New("status is " + appointment.Status))
	}

	set := map[string]interface{}{"status": constvars.AppointmentStatusCompleted}
	if request.Notes != "" {
		set["notes"] = request.Notes
	}
	if request.Prescription != "" {
		set["prescription"] = request.Prescription
	}
	appointment, err = uc.transition(ctx, appointment, constvars.AppointmentStatusApproved, set, exceptions.ErrOnlyApprovedCompletable)
	if err != nil {
		return nil, err
	}

	uc.Notifier.Notify(ctx, appointment.Patient,
		constvars.NotificationAppointmentCompleted,
		"Appointment completed",
		fmt.Sprintf("Your appointment on %s at %s has been marked completed", appointment.Date.Format(constvars.AppointmentDateLayout), appointment.Slot),
		models.NotificationMeta{AppointmentID: appointment.ID, DoctorID: appointment.Doctor, PatientID: appointment.Patient},
	)
	return uc.buildResponse(ctx, appointment)
}

func (uc *AppointmentUsecase) resolveAppointment(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	id, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrURLParamIDValidation(err, "appointmentID")
	}
	appointment, err := uc.AppointmentRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotExist(errors.New("appointment id does not resolve"))
	}
	return appointment, nil
}

// transition performs the conditional status write and re-reads on a miss to
// tell a vanished appointment apart from one that raced into another status.
func (uc *AppointmentUsecase) transition(
	ctx context.Context,
	appointment *models.Appointment,
	expectedStatus string,
	set map[string]interface{},
	invalidState func(error) *exceptions.CustomError,
) (*models.Appointment, error) {
	matched, err := uc.AppointmentRepository.UpdateStatus(ctx, appointment.ID, expectedStatus, set)
	if err != nil {
		return nil, err
	}
	if !matched {
		current, err := uc.AppointmentRepository.FindByID(ctx, appointment.ID)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, exceptions.ErrAppointmentNotExist(errors.New("appointment vanished during transition"))
		}
		return nil, invalidState(errors.New("status moved to " + current.Status + " concurrently"))
	}
	return uc.AppointmentRepository.FindByID(ctx, appointment.ID)
}

// authorizeRead admits the owning patient, the owning doctor, or an admin.
func (uc *AppointmentUsecase) authorizeRead(ctx context.Context, session *models.Session, appointment *models.Appointment) error {
	if session.IsAdmin() {
		return nil
	}
	userID, err := primitive.ObjectIDFromHex(session.UserID)
	if err != nil {
		return exceptions.ErrSessionInvalid(err)
	}
	if session.IsPatient() {
		if appointment.Patient == userID {
			return nil
		}
		return exceptions.ErrAppointmentForbidden(errors.New("patient does not own appointment"))
	}
	if session.IsDoctor() {
		doctor, err := uc.DoctorRepository.FindByUserID(ctx, userID)
		if err != nil {
			return err
		}
		if doctor != nil && doctor.ID == appointment.Doctor {
			return nil
		}
		return exceptions.ErrAppointmentForbidden(errors.New("doctor does not own appointment"))
	}
	return exceptions.ErrAppointmentForbidden(errors.New("role not allowed"))
}

// authorizeDoctorAction gates doctor-only transitions: the caller's doctor
// profile must own the appointment. The profile is always resolved through the
// user lookup, never by comparing user ids to doctor ids.
func (uc *AppointmentUsecase) authorizeDoctorAction(ctx context.Context, session *models.Session, appointment *models.Appointment) error {
	if !session.IsDoctor() {
		return exceptions.ErrAppointmentForbidden(errors.New("only the doctor may perform this transition"))
	}
	userID, err := primitive.ObjectIDFromHex(session.UserID)
	if err != nil {
		return exceptions.ErrSessionInvalid(err)
	}
	doctor, err := uc.DoctorRepository.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if doctor == nil || doctor.ID != appointment.Doctor {
		return exceptions.ErrAppointmentForbidden(errors.New("doctor does not own appointment"))
	}
	return nil
}

// authorizeCancel admits the owning patient or the owning doctor and reports
// which side is cancelling.
func (uc *AppointmentUsecase) authorizeCancel(ctx context.Context, session *models.Session, appointment *models.Appointment) (cancelledByPatient bool, err error) {
	userID, err := primitive.ObjectIDFromHex(session.UserID)
	if err != nil {
		return false, exceptions.ErrSessionInvalid(err)
	}
	if session.IsPatient() {
		if appointment.Patient == userID {
			return true, nil
		}
		return false, exceptions.ErrAppointmentForbidden(errors.New("patient does not own appointment"))
	}
	if session.IsDoctor() {
		doctor, err := uc.DoctorRepository.FindByUserID(ctx, userID)
		if err != nil {
			return false, err
		}
		if doctor != nil && doctor.ID == appointment.Doctor {
			return false, nil
		}
		return false, exceptions.ErrAppointmentForbidden(errors.New("doctor does not own appointment"))
	}
	return false, exceptions.ErrAppointmentForbidden(errors.New("role not allowed"))
}

func (uc *AppointmentUsecase) buildResponse(ctx context.Context, appointment *models.Appointment) (*responses.Appointment, error) {
	patient, err := uc.UserRepository.FindByID(ctx, appointment.Patient)
	if err != nil {
		return nil, err
	}
	doctor, err := uc.DoctorRepository.FindByID(ctx, appointment.Doctor)
	if err != nil {
		return nil, err
	}
	var doctorOwner *models.User
	if doctor != nil {
		doctorOwner, err = uc.UserRepository.FindByID(ctx, doctor.User)
		if err != nil {
			return nil, err
		}
	}
	return utils.MapAppointmentResponse(appointment, patient, doctor, doctorOwner), nil
}
