package doctors

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DoctorMongoRepository struct {
	Collection *mongo.Collection
}

func NewDoctorMongoRepository(db *mongo.Client, dbName string) contracts.DoctorRepository {
	return &DoctorMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDoctors),
	}
}

func (repo *DoctorMongoRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) (primitive.ObjectID, error) {
	result, err := repo.Collection.InsertOne(ctx, doctor)
	if err != nil {
		return primitive.NilObjectID, exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (repo *DoctorMongoRepository) FindByID(ctx context.Context, doctorID primitive.ObjectID) (*models.Doctor, error) {
	var doctor models.Doctor
	err := repo.Collection.FindOne(ctx, bson.M{"_id": doctorID}).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doctor, nil
}

func (repo *DoctorMongoRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Doctor, error) {
	var doctor models.Doctor
	err := repo.Collection.FindOne(ctx, bson.M{"user": userID}).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doctor, nil
}

func (repo *DoctorMongoRepository) UpdateDoctor(ctx context.Context, doctor *models.Doctor) error {
	_, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": doctor.ID}, bson.M{"$set": doctor})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

// FindPublic lists verified, active doctors for the public directory, sorted
// by rating descending so the best-reviewed doctors surface first.
func (repo *DoctorMongoRepository) FindPublic(ctx context.Context, query *requests.DoctorListQuery) ([]models.Doctor, int64, error) {
	filter := bson.M{
		"isVerified": true,
		"isActive":   true,
	}
	if query.Specialization != "" {
		filter["specialization"] = primitive.Regex{Pattern: query.Specialization, Options: "i"}
	}
	if query.City != "" {
		filter["address.city"] = primitive.Regex{Pattern: query.City, Options: "i"}
	}
	if query.MinExperience > 0 {
		filter["experienceYears"] = bson.M{"$gte": query.MinExperience}
	}
	if query.MaxFee > 0 {
		filter["consultationFee"] = bson.M{"$lte": query.MaxFee}
	}

	return repo.findPage(ctx, filter, bson.D{{Key: "rating", Value: -1}}, query.Page, query.Limit)
}

func (repo *DoctorMongoRepository) FindAdmin(ctx context.Context, query *requests.AdminDoctorListQuery) ([]models.Doctor, int64, error) {
	filter := bson.M{}
	if query.IsVerified != nil {
		filter["isVerified"] = *query.IsVerified
	}
	if query.IsActive != nil {
		filter["isActive"] = *query.IsActive
	}
	if query.Specialization != "" {
		filter["specialization"] = primitive.Regex{Pattern: query.Specialization, Options: "i"}
	}

	return repo.findPage(ctx, filter, bson.D{{Key: "createdAt", Value: -1}}, query.Page, query.Limit)
}

func (repo *DoctorMongoRepository) findPage(ctx context.Context, filter bson.M, sort bson.D, page, limit int) ([]models.Doctor, int64, error) {
	total, err := repo.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	opts := options.Find().
		SetSort(sort).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := repo.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	doctors := make([]models.Doctor, 0)
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return doctors, total, nil
}

func (repo *DoctorMongoRepository) Count(ctx context.Context) (int64, error) {
	total, err := repo.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return total, nil
}

// ApplyReview folds one rating into the stored aggregate with a pipeline
// update so the average and counter move atomically.
func (repo *DoctorMongoRepository) ApplyReview(ctx context.Context, doctorID primitive.ObjectID, rating int) error {
	pipeline := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"rating": bson.M{
				"$round": bson.A{
					bson.M{"$divide": bson.A{
						bson.M{"$add": bson.A{
							bson.M{"$multiply": bson.A{"$rating", "$totalReviews"}},
							rating,
						}},
						bson.M{"$add": bson.A{"$totalReviews", 1}},
					}},
					1,
				},
			},
			"totalReviews": bson.M{"$add": bson.A{"$totalReviews", 1}},
		}}},
	}
	_, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": doctorID}, pipeline)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
