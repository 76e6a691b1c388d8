package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID primitive.ObjectID) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	FindPatients(ctx context.Context, query *requests.AdminPatientListQuery) ([]models.User, int64, error)
	CountByRole(ctx context.Context, role string) (int64, error)
}

type AuthUsecase interface {
	Signup(ctx context.Context, request *requests.Signup) (*responses.Auth, error)
	Login(ctx context.Context, request *requests.Login) (*responses.Auth, error)
	Logout(ctx context.Context, sessionID string) error
	Me(ctx context.Context, session *models.Session) (*responses.Me, error)
}

type PatientUsecase interface {
	UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdatePatientProfile) (*responses.User, error)
}
