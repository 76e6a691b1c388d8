package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctor *models.Doctor) (primitive.ObjectID, error)
	FindByID(ctx context.Context, doctorID primitive.ObjectID) (*models.Doctor, error)
	// FindByUserID resolves the Doctor profile owned by a User account; every
	// doctor-side authorization check goes through this indirection.
	FindByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Doctor, error)
	UpdateDoctor(ctx context.Context, doctor *models.Doctor) error
	FindPublic(ctx context.Context, query *requests.DoctorListQuery) ([]models.Doctor, int64, error)
	FindAdmin(ctx context.Context, query *requests.AdminDoctorListQuery) ([]models.Doctor, int64, error)
	Count(ctx context.Context) (int64, error)
	// ApplyReview folds a new rating into the doctor's aggregate.
	ApplyReview(ctx context.Context, doctorID primitive.ObjectID, rating int) error
}

type DoctorUsecase interface {
	FindPublic(ctx context.Context, query *requests.DoctorListQuery) ([]responses.Doctor, *responses.Pagination, error)
	FindPublicByID(ctx context.Context, doctorID string) (*responses.Doctor, error)
	GetOwnProfile(ctx context.Context, session *models.Session) (*responses.Doctor, error)
	UpdateOwnProfile(ctx context.Context, session *models.Session, request *requests.UpdateDoctorProfile) (*responses.Doctor, error)
}
