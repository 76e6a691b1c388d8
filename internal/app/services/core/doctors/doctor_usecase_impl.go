package doctors

import (
	"context"
	"errors"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DoctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	UserRepository   contracts.UserRepository
	Clock            contracts.Clock
}

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	userRepository contracts.UserRepository,
	clock contracts.Clock,
) contracts.DoctorUsecase {
	return &DoctorUsecase{
		DoctorRepository: doctorRepository,
		UserRepository:   userRepository,
		Clock:            clock,
	}
}

func (uc *DoctorUsecase) FindPublic(ctx context.Context, query *requests.DoctorListQuery) ([]responses.Doctor, *responses.Pagination, error) {
	doctors, total, err := uc.DoctorRepository.FindPublic(ctx, query)
	if err != nil {
		return nil, nil, err
	}

	result := make([]responses.Doctor, 0, len(doctors))
	for i := range doctors {
		owner, err := uc.UserRepository.FindByID(ctx, doctors[i].User)
		if err != nil {
			return nil, nil, err
		}
		result = append(result, *utils.MapDoctorResponse(&doctors[i], owner))
	}
	return result, utils.BuildPaginationResponse(total, query.Page, query.Limit), nil
}

// FindPublicByID resolves a doctor for the public directory; unverified or
// deactivated profiles are indistinguishable from missing ones.
func (uc *DoctorUsecase) FindPublicByID(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	id, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, exceptions.ErrURLParamIDValidation(err, "doctorID")
	}
	doctor, err := uc.DoctorRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doctor == nil || !doctor.IsVerified || !doctor.IsActive {
		return nil, exceptions.ErrDoctorNotExist(errors.New("doctor missing or not public"))
	}

	owner, err := uc.UserRepository.FindByID(ctx, doctor.User)
	if err != nil {
		return nil, err
	}
	return utils.MapDoctorResponse(doctor, owner), nil
}

func (uc *DoctorUsecase) GetOwnProfile(ctx context.Context, session *models.Session) (*responses.Doctor, error) {
	doctor, err := uc.findOwnDoctor(ctx, session)
	if err != nil {
		return nil, err
	}
	return utils.MapDoctorResponse(doctor, nil), nil
}

func (uc *DoctorUsecase) UpdateOwnProfile(ctx context.Context, session *models.Session, request *requests.UpdateDoctorProfile) (*responses.Doctor, error) {
	doctor, err := uc.findOwnDoctor(ctx, session)
	if err != nil {
		return nil, err
	}

	applyDoctorUpdate(doctor, request)
	doctor.UpdatedAt = uc.Clock.Now()

	if err := uc.DoctorRepository.UpdateDoctor(ctx, doctor); err != nil {
		return nil, err
	}
	return utils.MapDoctorResponse(doctor, nil), nil
}

func (uc *DoctorUsecase) findOwnDoctor(ctx context.Context, session *models.Session) (*models.Doctor, error) {
	userID, err := primitive.ObjectIDFromHex(session.UserID)
	if err != nil {
		return nil, exceptions.ErrSessionInvalid(err)
	}
	doctor, err := uc.DoctorRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorProfileNotExist(errors.New("no profile for user"))
	}
	return doctor, nil
}

// applyDoctorUpdate copies the provided fields onto the stored profile.
// Verification and active flags are deliberately absent: those remain
// admin-only, and editing availability never touches booked appointments.
func applyDoctorUpdate(doctor *models.Doctor, request *requests.UpdateDoctorProfile) {
	if request.Specialization != nil {
		doctor.Specialization = *request.Specialization
	}
	if request.ExperienceYears != nil {
		doctor.ExperienceYears = *request.ExperienceYears
	}
	if request.Qualification != nil {
		doctor.Qualification = request.Qualification
	}
	if request.ClinicName != nil {
		doctor.ClinicName = *request.ClinicName
	}
	if request.Address != nil {
		doctor.Address = models.Address{
			Street:  request.Address.Street,
			City:    request.Address.City,
			State:   request.Address.State,
			Pincode: request.Address.Pincode,
			Country: request.Address.Country,
		}
	}
	if request.ConsultationFee != nil {
		doctor.ConsultationFee = *request.ConsultationFee
	}
	if request.AvailableDays != nil {
		doctor.AvailableDays = request.AvailableDays
	}
	if request.TimeSlots != nil {
		windows := make([]models.TimeWindow, 0, len(request.TimeSlots))
		for _, window := range request.TimeSlots {
			windows = append(windows, models.TimeWindow{Start: window.Start, End: window.End})
		}
		doctor.TimeSlots = windows
	}
	if request.Bio != nil {
		doctor.Bio = *request.Bio
	}
}
