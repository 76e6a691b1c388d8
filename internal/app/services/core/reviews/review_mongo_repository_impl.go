package reviews

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReviewMongoRepository struct {
	Collection *mongo.Collection
}

func NewReviewMongoRepository(db *mongo.Client, dbName string) contracts.ReviewRepository {
	return &ReviewMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionReviews),
	}
}

// CreateReview inserts the review; the unique index on appointment enforces
// one review per appointment, so a duplicate insert surfaces as a conflict.
func (repo *ReviewMongoRepository) CreateReview(ctx context.Context, review *models.Review) (primitive.ObjectID, error) {
	result, err := repo.Collection.InsertOne(ctx, review)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, exceptions.ErrReviewAlreadyExists(err)
		}
		return primitive.NilObjectID, exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (repo *ReviewMongoRepository) FindForDoctor(ctx context.Context, doctorID primitive.ObjectID, page, limit int) ([]models.Review, int64, error) {
	filter := bson.M{"doctor": doctorID}

	total, err := repo.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := repo.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	reviews := make([]models.Review, 0)
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return reviews, total, nil
}
