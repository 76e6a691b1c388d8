package patients

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

type PatientUsecase struct {
	UserRepository contracts.UserRepository
	Clock          contracts.Clock
}

func NewPatientUsecase(userRepository contracts.UserRepository, clock contracts.Clock) contracts.PatientUsecase {
	return &PatientUsecase{
		UserRepository: userRepository,
		Clock:          clock,
	}
}

// UpdateProfile applies the allow-listed contact fields only; name, email,
// role and active flag are not patient-editable.
func (uc *PatientUsecase) UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdatePatientProfile) (*responses.User, error) {
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

	if request.Phone != nil {
		user.Phone = *request.Phone
	}
	if request.Age != nil {
		user.Age = *request.Age
	}
	if request.Gender != nil {
		user.Gender = *request.Gender
	}
	user.UpdatedAt = uc.Clock.Now()

	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return utils.MapUserResponse(user), nil
}
