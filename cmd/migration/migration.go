package main

import (
	"context"
	"log"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/drivers/database"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/utils"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Ensures the Mongo indexes the application relies on and seeds the admin
// account. Safe to run repeatedly.
func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	client := database.NewMongoDB(driverConfig)
	defer client.Disconnect(context.Background())

	db := client.Database(driverConfig.MongoDB.DbName)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ensureIndexes(ctx, db)
	seedAdmin(ctx, db, internalConfig)

	log.Println("Migration finished")
}

func ensureIndexes(ctx context.Context, db *mongo.Database) {
	// The partial unique index is the authoritative no-double-booking guard:
	// at most one pending or approved appointment per (doctor, date, slot).
	// Finished appointments fall outside the filter and free the slot.
	createIndexes(ctx, db.Collection(constvars.MongoCollectionAppointments), []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "doctor", Value: 1}, {Key: "date", Value: 1}, {Key: "slot", Value: 1}},
			Options: options.Index().
				SetName("uniq_active_doctor_date_slot").
				SetUnique(true).
				SetPartialFilterExpression(bson.M{
					"status": bson.M{"$in": bson.A{
						constvars.AppointmentStatusPending,
						constvars.AppointmentStatusApproved,
					}},
				}),
		},
		{
			Keys:    bson.D{{Key: "patient", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index().SetName("patient_date"),
		},
		{
			Keys:    bson.D{{Key: "doctor", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index().SetName("doctor_date"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index().SetName("status"),
		},
	})

	createIndexes(ctx, db.Collection(constvars.MongoCollectionUsers), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_email").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "role", Value: 1}},
			Options: options.Index().SetName("role"),
		},
	})

	createIndexes(ctx, db.Collection(constvars.MongoCollectionDoctors), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user", Value: 1}},
			Options: options.Index().SetName("uniq_user").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "specialization", Value: 1}},
			Options: options.Index().SetName("specialization"),
		},
	})

	createIndexes(ctx, db.Collection(constvars.MongoCollectionReviews), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "appointment", Value: 1}},
			Options: options.Index().SetName("uniq_appointment").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "doctor", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("doctor_createdAt"),
		},
	})

	createIndexes(ctx, db.Collection(constvars.MongoCollectionNotifications), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("user_createdAt"),
		},
		{
			Keys:    bson.D{{Key: "user", Value: 1}, {Key: "isRead", Value: 1}},
			Options: options.Index().SetName("user_isRead"),
		},
	})
}

func createIndexes(ctx context.Context, collection *mongo.Collection, indexes []mongo.IndexModel) {
	names, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		log.Fatalf("Failed to create indexes on %s: %v", collection.Name(), err)
	}
	log.Printf("Ensured indexes on %s: %v", collection.Name(), names)
}

func seedAdmin(ctx context.Context, db *mongo.Database, internalConfig *config.InternalConfig) {
	collection := db.Collection(constvars.MongoCollectionUsers)

	count, err := collection.CountDocuments(ctx, bson.M{"email": internalConfig.Admin.Email})
	if err != nil {
		log.Fatalf("Failed to check for admin user: %v", err)
	}
	if count > 0 {
		log.Println("Admin user already present")
		return
	}

	hashed, err := utils.HashPassword(internalConfig.Admin.Password)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	now := time.Now().UTC()
	admin := &models.User{
		Name:     internalConfig.Admin.Name,
		Email:    internalConfig.Admin.Email,
		Password: hashed,
		Role:     constvars.RoleAdmin,
		Phone:    internalConfig.Admin.Phone,
		IsActive: true,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if _, err := collection.InsertOne(ctx, admin); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
	log.Printf("Seeded admin user %s", internalConfig.Admin.Email)
}
