package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewRepository interface {
	// CreateReview inserts a review; the unique index on appointment makes a
	// second review for the same appointment fail as a Conflict.
	CreateReview(ctx context.Context, review *models.Review) (primitive.ObjectID, error)
	FindForDoctor(ctx context.Context, doctorID primitive.ObjectID, page, limit int) ([]models.Review, int64, error)
}

type ReviewUsecase interface {
	Create(ctx context.Context, session *models.Session, request *requests.CreateReview) (*responses.Review, error)
	FindForDoctor(ctx context.Context, doctorID string, page, limit int) ([]responses.Review, *responses.Pagination, error)
}
