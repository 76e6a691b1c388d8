package appointments

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

// CreateAppointment relies on the partial unique index over active statuses:
// when two requests race for the same (doctor, date, slot) triple, the loser's
// insert fails with a duplicate-key error and surfaces as a slot conflict.
func (repo *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (primitive.ObjectID, error) {
	result, err := repo.Collection.InsertOne(ctx, appointment)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, exceptions.ErrSlotAlreadyBooked(err)
		}
		return primitive.NilObjectID, exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (repo *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID primitive.ObjectID) (*models.Appointment, error) {
	var appointment models.Appointment
	err := repo.Collection.FindOne(ctx, bson.M{"_id": appointmentID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (repo *AppointmentMongoRepository) ExistsActive(ctx context.Context, doctorID primitive.ObjectID, date time.Time, slot string) (bool, error) {
	filter := bson.M{
		"doctor": doctorID,
		"date":   date,
		"slot":   slot,
		"status": bson.M{"$in": bson.A{constvars.AppointmentStatusPending, constvars.AppointmentStatusApproved}},
	}
	count, err := repo.Collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count > 0, nil
}

// UpdateStatus is a compare-and-set transition: it matches on both the id and
// the status the caller observed, so a concurrent transition makes this one
// miss instead of stomping it. Callers re-read on a false return to decide
// between not-found and invalid-state.
func (repo *AppointmentMongoRepository) UpdateStatus(ctx context.Context, appointmentID primitive.ObjectID, expectedStatus string, set map[string]interface{}) (bool, error) {
	filter := bson.M{
		"_id":    appointmentID,
		"status": expectedStatus,
	}
	set["updatedAt"] = time.Now().UTC()

	result, err := repo.Collection.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount > 0, nil
}

func (repo *AppointmentMongoRepository) FindForPatient(ctx context.Context, patientID primitive.ObjectID, query *requests.AppointmentListQuery) ([]models.Appointment, error) {
	filter := bson.M{"patient": patientID}
	applyListFilters(filter, query)
	return repo.findSorted(ctx, filter)
}

func (repo *AppointmentMongoRepository) FindForDoctor(ctx context.Context, doctorID primitive.ObjectID, query *requests.AppointmentListQuery) ([]models.Appointment, error) {
	filter := bson.M{"doctor": doctorID}
	applyListFilters(filter, query)
	return repo.findSorted(ctx, filter)
}

func applyListFilters(filter bson.M, query *requests.AppointmentListQuery) {
	if query == nil {
		return
	}
	if query.Status != "" {
		filter["status"] = query.Status
	}
	applyDateRange(filter, query.From, query.To)
}

func applyDateRange(filter bson.M, from, to *time.Time) {
	dateRange := bson.M{}
	if from != nil {
		dateRange["$gte"] = *from
	}
	if to != nil {
		dateRange["$lte"] = *to
	}
	if len(dateRange) > 0 {
		filter["date"] = dateRange
	}
}

// findSorted orders by appointment date descending, then creation time
// descending as a tiebreaker for same-day bookings.
func (repo *AppointmentMongoRepository) findSorted(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "date", Value: -1},
		{Key: "createdAt", Value: -1},
	})

	cursor, err := repo.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	appointments := make([]models.Appointment, 0)
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (repo *AppointmentMongoRepository) FindAdmin(ctx context.Context, query *requests.AdminAppointmentListQuery) ([]models.Appointment, int64, error) {
	filter := bson.M{}
	if query.Status != "" {
		filter["status"] = query.Status
	}
	if query.DoctorID != "" {
		doctorID, err := primitive.ObjectIDFromHex(query.DoctorID)
		if err != nil {
			return nil, 0, exceptions.ErrMongoDBNotObjectID(err)
		}
		filter["doctor"] = doctorID
	}
	if query.PatientID != "" {
		patientID, err := primitive.ObjectIDFromHex(query.PatientID)
		if err != nil {
			return nil, 0, exceptions.ErrMongoDBNotObjectID(err)
		}
		filter["patient"] = patientID
	}
	applyDateRange(filter, query.From, query.To)

	total, err := repo.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}, {Key: "createdAt", Value: -1}}).
		SetSkip(int64((query.Page - 1) * query.Limit)).
		SetLimit(int64(query.Limit))

	cursor, err := repo.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	appointments := make([]models.Appointment, 0)
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, total, nil
}

func (repo *AppointmentMongoRepository) Count(ctx context.Context) (int64, error) {
	total, err := repo.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return total, nil
}

func (repo *AppointmentMongoRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	total, err := repo.Collection.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return total, nil
}

func (repo *AppointmentMongoRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	total, err := repo.Collection.CountDocuments(ctx, bson.M{"createdAt": bson.M{"$gte": since}})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return total, nil
}
