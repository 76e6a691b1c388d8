package notifications

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

type NotificationMongoRepository struct {
	Collection *mongo.Collection
}

func NewNotificationMongoRepository(db *mongo.Client, dbName string) contracts.NotificationRepository {
	return &NotificationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionNotifications),
	}
}

func (repo *NotificationMongoRepository) CreateNotification(ctx context.Context, notification *models.Notification) (primitive.ObjectID, error) {
	result, err := repo.Collection.InsertOne(ctx, notification)
	if err != nil {
		return primitive.NilObjectID, exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (repo *NotificationMongoRepository) FindForUser(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]models.Notification, int64, error) {
	filter := bson.M{"user": userID}

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

	notifications := make([]models.Notification, 0)
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return notifications, total, nil
}

func (repo *NotificationMongoRepository) CountUnread(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	total, err := repo.Collection.CountDocuments(ctx, bson.M{"user": userID, "isRead": false})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return total, nil
}

func (repo *NotificationMongoRepository) MarkRead(ctx context.Context, notificationID, userID primitive.ObjectID) (bool, error) {
	filter := bson.M{"_id": notificationID, "user": userID}
	result, err := repo.Collection.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"isRead": true}})
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount > 0, nil
}

func (repo *NotificationMongoRepository) MarkAllRead(ctx context.Context, userID primitive.ObjectID) error {
	filter := bson.M{"user": userID, "isRead": false}
	_, err := repo.Collection.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"isRead": true}})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
