package admin

import (
	"context"
	"errors"
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

type AdminUsecase struct {
	UserRepository        contracts.UserRepository
	DoctorRepository      contracts.DoctorRepository
	AppointmentRepository contracts.AppointmentRepository
	Notifier              contracts.Notifier
	Clock                 contracts.Clock
}

func NewAdminUsecase(
	userRepository contracts.UserRepository,
	doctorRepository contracts.DoctorRepository,
	appointmentRepository contracts.AppointmentRepository,
	notifier contracts.Notifier,
	clock contracts.Clock,
) contracts.AdminUsecase {
	return &AdminUsecase{
		UserRepository:        userRepository,
		DoctorRepository:      doctorRepository,
		AppointmentRepository: appointmentRepository,
		Notifier:              notifier,
		Clock:                 clock,
	}
}

func (uc *AdminUsecase) DashboardStats(ctx context.Context) (*responses.DashboardStats, error) {
	stats := &responses.DashboardStats{}
	var err error

	if stats.TotalDoctors, err = uc.DoctorRepository.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalPatients, err = uc.UserRepository.CountByRole(ctx, constvars.RolePatient); err != nil {
		return nil, err
	}
	if stats.TotalAppointments, err = uc.AppointmentRepository.Count(ctx); err != nil {
		return nil, err
	}
	if stats.PendingAppointments, err = uc.AppointmentRepository.CountByStatus(ctx, constvars.AppointmentStatusPending); err != nil {
		return nil, err
	}
	if stats.CompletedAppointments, err = uc.AppointmentRepository.CountByStatus(ctx, constvars.AppointmentStatusCompleted); err != nil {
		return nil, err
	}
	weekAgo := uc.Clock.Now().Add(-7 * 24 * time.Hour)
	if stats.RecentAppointments, err = uc.AppointmentRepository.CountCreatedSince(ctx, weekAgo); err != nil {
		return nil, err
	}
	return stats, nil
}

func (uc *AdminUsecase) FindDoctors(ctx context.Context, query *requests.AdminDoctorListQuery) ([]responses.Doctor, *responses.Pagination, error) {
	doctors, total, err := uc.DoctorRepository.FindAdmin(ctx, query)
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

func (uc *AdminUsecase) FindDoctorByID(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	doctor, err := uc.resolveDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	owner, err := uc.UserRepository.FindByID(ctx, doctor.User)
	if err != nil {
		return nil, err
	}
	return utils.MapDoctorResponse(doctor, owner), nil
}

// CreateDoctor provisions a doctor account and its profile in one step.
// Admin-created doctors are verified immediately.
func (uc *AdminUsecase) CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.Doctor, error) {
	existing, err := uc.UserRepository.FindByEmail(ctx, request.UserData.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(errors.New("email taken"))
	}

	hashed, err := utils.HashPassword(request.UserData.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := uc.Clock.Now()
	user := &models.User{
		Name:     request.UserData.Name,
		Email:    request.UserData.Email,
		Password: hashed,
		Role:     constvars.RoleDoctor,
		Phone:    request.UserData.Phone,
		Age:      request.UserData.Age,
		Gender:   request.UserData.Gender,
		IsActive: true,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = userID

	profile := request.DoctorProfile
	windows := make([]models.TimeWindow, 0, len(profile.TimeSlots))
	for _, window := range profile.TimeSlots {
		windows = append(windows, models.TimeWindow{Start: window.Start, End: window.End})
	}
	doctor := &models.Doctor{
		User:            userID,
		Specialization:  profile.Specialization,
		ExperienceYears: profile.ExperienceYears,
		Qualification:   profile.Qualification,
		ClinicName:      profile.ClinicName,
		ConsultationFee: profile.ConsultationFee,
		AvailableDays:   profile.AvailableDays,
		TimeSlots:       windows,
		IsVerified:      true,
		IsActive:        true,
		Bio:             profile.Bio,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if profile.Address != nil {
		doctor.Address = models.Address{
			Street:  profile.Address.Street,
			City:    profile.Address.City,
			State:   profile.Address.State,
			Pincode: profile.Address.Pincode,
			Country: profile.Address.Country,
		}
	}
	doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, doctor)
	if err != nil {
		return nil, err
	}
	doctor.ID = doctorID

	return utils.MapDoctorResponse(doctor, user), nil
}

func (uc *AdminUsecase) UpdateDoctor(ctx context.Context, doctorID string, request *requests.UpdateDoctorProfile) (*responses.Doctor, error) {
	doctor, err := uc.resolveDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	applyAdminDoctorUpdate(doctor, request)
	doctor.UpdatedAt = uc.Clock.Now()

	if err := uc.DoctorRepository.UpdateDoctor(ctx, doctor); err != nil {
		return nil, err
	}
	owner, err := uc.UserRepository.FindByID(ctx, doctor.User)
	if err != nil {
		return nil, err
	}
	return utils.MapDoctorResponse(doctor, owner), nil
}

// VerifyDoctor flips the verification flag and tells the doctor. Verifying an
// already-verified doctor is a no-op success.
func (uc *AdminUsecase) VerifyDoctor(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	doctor, err := uc.resolveDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	if !doctor.IsVerified {
		doctor.IsVerified = true
		doctor.UpdatedAt = uc.Clock.Now()
		if err := uc.DoctorRepository.UpdateDoctor(ctx, doctor); err != nil {
			return nil, err
		}
		uc.Notifier.Notify(ctx, doctor.User,
			constvars.NotificationDoctorVerified,
			"Profile verified",
			"Your doctor profile has been verified, patients can now book appointments with you",
			models.NotificationMeta{DoctorID: doctor.ID},
		)
	}

	owner, err := uc.UserRepository.FindByID(ctx, doctor.User)
	if err != nil {
		return nil, err
	}
	return utils.MapDoctorResponse(doctor, owner), nil
}

func (uc *AdminUsecase) FindPatients(ctx context.Context, query *requests.AdminPatientListQuery) ([]responses.User, *responses.Pagination, error) {
	patients, total, err := uc.UserRepository.FindPatients(ctx, query)
	if err != nil {
		return nil, nil, err
	}

	result := make([]responses.User, 0, len(patients))
	for i := range patients {
		result = append(result, *utils.MapUserResponse(&patients[i]))
	}
	return result, utils.BuildPaginationResponse(total, query.Page, query.Limit), nil
}

func (uc *AdminUsecase) FindAppointments(ctx context.Context, query *requests.AdminAppointmentListQuery) ([]responses.Appointment, *responses.Pagination, error) {
	appointments, total, err := uc.AppointmentRepository.FindAdmin(ctx, query)
	if err != nil {
		return nil, nil, err
	}

	result := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		appointment := &appointments[i]
		patient, err := uc.UserRepository.FindByID(ctx, appointment.Patient)
		if err != nil {
			return nil, nil, err
		}
		doctor, err := uc.DoctorRepository.FindByID(ctx, appointment.Doctor)
		if err != nil {
			return nil, nil, err
		}
		var doctorOwner *models.User
		if doctor != nil {
			if doctorOwner, err = uc.UserRepository.FindByID(ctx, doctor.User); err != nil {
				return nil, nil, err
			}
		}
		result = append(result, *utils.MapAppointmentResponse(appointment, patient, doctor, doctorOwner))
	}
	return result, utils.BuildPaginationResponse(total, query.Page, query.Limit), nil
}

func (uc *AdminUsecase) resolveDoctor(ctx context.Context, doctorID string) (*models.Doctor, error) {
	id, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, exceptions.ErrURLParamIDValidation(err, "doctorID")
	}
	doctor, err := uc.DoctorRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotExist(errors.New("doctor id does not resolve"))
	}
	return doctor, nil
}

// applyAdminDoctorUpdate mirrors the doctor's self-service update; admin-only
// flags (verification, active) go through their dedicated endpoints.
func applyAdminDoctorUpdate(doctor *models.Doctor, request *requests.UpdateDoctorProfile) {
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
