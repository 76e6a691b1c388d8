package reviews

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

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewUsecase struct {
	ReviewRepository      contracts.ReviewRepository
	AppointmentRepository contracts.AppointmentRepository
	DoctorRepository      contracts.DoctorRepository
	UserRepository        contracts.UserRepository
	Notifier              contracts.Notifier
	Clock                 contracts.Clock
}

func NewReviewUsecase(
	reviewRepository contracts.ReviewRepository,
	appointmentRepository contracts.AppointmentRepository,
	doctorRepository contracts.DoctorRepository,
	userRepository contracts.UserRepository,
	notifier contracts.Notifier,
	clock contracts.Clock,
) contracts.ReviewUsecase {
	return &ReviewUsecase{
		ReviewRepository:      reviewRepository,
		AppointmentRepository: appointmentRepository,
		DoctorRepository:      doctorRepository,
		UserRepository:        userRepository,
		Notifier:              notifier,
		Clock:                 clock,
	}
}

// Create accepts a review from the patient who owns a completed appointment.
// The unique index on appointment backstops the one-review rule under
// concurrent submissions.
func (uc *ReviewUsecase) Create(ctx context.Context, session *models.Session, request *requests.CreateReview) (*responses.Review, error) {
	patientID, err := primitive.ObjectIDFromHex(session.UserID)
	if err != nil {
		return nil, exceptions.ErrSessionInvalid(err)
	}
	appointmentID, err := primitive.ObjectIDFromHex(request.AppointmentID)
	if err != nil {
		return nil, exceptions.ErrURLParamIDValidation(err, "appointmentId")
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotExist(errors.New("appointment id does not resolve"))
	}
	if appointment.Patient != patientID {
		return nil, exceptions.ErrAppointmentForbidden(errors.New("patient does not own appointment"))
	}
	if appointment.Status != constvars.AppointmentStatusCompleted {
		return nil, exceptions.ErrReviewAppointmentNotDone(errors.New("status is " + appointment.Status))
	}

	now := uc.Clock.Now()
	review := &models.Review{
		Doctor:      appointment.Doctor,
		Patient:     patientID,
		Appointment: appointmentID,
		Rating:      request.Rating,
		Comment:     request.Comment,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	reviewID, err := uc.ReviewRepository.CreateReview(ctx, review)
	if err != nil {
		return nil, err
	}
	review.ID = reviewID

	if err := uc.DoctorRepository.ApplyReview(ctx, appointment.Doctor, request.Rating); err != nil {
		return nil, err
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, appointment.Doctor)
	if err != nil {
		return nil, err
	}
	if doctor != nil {
		uc.Notifier.Notify(ctx, doctor.User,
			constvars.NotificationNewReview,
			"New review",
			fmt.Sprintf("%s left a %d-star review", session.Name, request.Rating),
			models.NotificationMeta{AppointmentID: appointmentID, DoctorID: appointment.Doctor, PatientID: patientID},
		)
	}

	patient, err := uc.UserRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	response := utils.MapReviewResponse(review, patient)
	return &response, nil
}

func (uc *ReviewUsecase) FindForDoctor(ctx context.Context, doctorID string, page, limit int) ([]responses.Review, *responses.Pagination, error) {
	id, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, nil, exceptions.ErrURLParamIDValidation(err, "doctorID")
	}

	reviews, total, err := uc.ReviewRepository.FindForDoctor(ctx, id, page, limit)
	if err != nil {
		return nil, nil, err
	}

	result := make([]responses.Review, 0, len(reviews))
	for i := range reviews {
		patient, err := uc.UserRepository.FindByID(ctx, reviews[i].Patient)
		if err != nil {
			return nil, nil, err
		}
		result = append(result, utils.MapReviewResponse(&reviews[i], patient))
	}
	return result, utils.BuildPaginationResponse(total, page, limit), nil
}
