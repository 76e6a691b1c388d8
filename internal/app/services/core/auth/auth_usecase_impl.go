package auth

import (
	"context"
	"errors"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AuthUsecase struct {
	UserRepository   contracts.UserRepository
	DoctorRepository contracts.DoctorRepository
	RedisRepository  contracts.RedisRepository
	Clock            contracts.Clock
	InternalConfig   *config.InternalConfig
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	doctorRepository contracts.DoctorRepository,
	redisRepository contracts.RedisRepository,
	clock contracts.Clock,
	internalConfig *config.InternalConfig,
) contracts.AuthUsecase {
	return &AuthUsecase{
		UserRepository:   userRepository,
		DoctorRepository: doctorRepository,
		RedisRepository:  redisRepository,
		Clock:            clock,
		InternalConfig:   internalConfig,
	}
}

func (uc *AuthUsecase) Signup(ctx context.Context, request *requests.Signup) (*responses.Auth, error) {
	role := request.Role
	if role == "" {
		role = constvars.RolePatient
	}
	// Admin accounts are seeded, never self-registered.
	if role == constvars.RoleAdmin {
		return nil, exceptions.ErrNotMatchRoleType(errors.New("admin signup not allowed"))
	}
	if role == constvars.RoleDoctor && request.DoctorProfile == nil {
		return nil, exceptions.ErrInputValidation(errors.New("doctorProfile is required for doctor signup"))
	}

	existing, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(errors.New("email taken"))
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := uc.Clock.Now()
	user := &models.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: hashed,
		Role:     role,
		Phone:    request.Phone,
		Age:      request.Age,
		Gender:   request.Gender,
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

	if role == constvars.RoleDoctor {
		doctor := buildDoctorModel(userID, request.DoctorProfile, now)
		if _, err := uc.DoctorRepository.CreateDoctor(ctx, doctor); err != nil {
			return nil, err
		}
	}

	token, err := uc.createSession(ctx, user)
	if err != nil {
		return nil, err
	}

	return &responses.Auth{
		User:  utils.MapUserResponse(user),
		Token: token,
	}, nil
}

func (uc *AuthUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Auth, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, exceptions.ErrInvalidCredentials(errors.New("unknown or inactive user"))
	}
	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidCredentials(errors.New("password mismatch"))
	}

	token, err := uc.createSession(ctx, user)
	if err != nil {
		return nil, err
	}

	return &responses.Auth{
		User:  utils.MapUserResponse(user),
		Token: token,
	}, nil
}

func (uc *AuthUsecase) Logout(ctx context.Context, sessionID string) error {
	return uc.RedisRepository.DeleteSession(ctx, sessionID)
}

func (uc *AuthUsecase) Me(ctx context.Context, session *models.Session) (*responses.Me, error) {
	userID, err := primitive.ObjectIDFromHex(session.UserID)
	if err != nil {
		return nil, exceptions.ErrSessionInvalid(err)
	}
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(errors.New("session user missing"))
	}

	me := &responses.Me{User: utils.MapUserResponse(user)}
	if user.IsDoctor() {
		doctor, err := uc.DoctorRepository.FindByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		me.DoctorProfile = utils.MapDoctorResponse(doctor, nil)
	}
	return me, nil
}

// createSession stores the identity under a fresh session id and wraps that id
// in a signed JWT; revocation is a Redis delete.
func (uc *AuthUsecase) createSession(ctx context.Context, user *models.User) (string, error) {
	sessionID := uuid.NewString()
	session := &models.Session{
		UserID: user.ID.Hex(),
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	}
	expiry := time.Duration(uc.InternalConfig.App.SessionExpiredTimeInHours) * time.Hour
	if err := uc.RedisRepository.CreateSession(ctx, sessionID, session, expiry); err != nil {
		return "", err
	}

	token, err := utils.GenerateJWT(sessionID, uc.InternalConfig.JWT.Secret, time.Duration(uc.InternalConfig.JWT.ExpTimeInHour)*time.Hour)
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}
	return token, nil
}

// buildDoctorModel maps a signup profile into an unverified doctor document;
// verification is an explicit admin action.
func buildDoctorModel(userID primitive.ObjectID, profile *requests.DoctorProfile, now time.Time) *models.Doctor {
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
		IsVerified:      false,
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
	return doctor
}
