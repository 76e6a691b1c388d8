package reviews

import (
	"context"
	"errors"
	"medibook-service/internal/app/models"
	"medibook-service/internal/app/services/shared/clock"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeReviewRepo struct {
	reviews map[primitive.ObjectID]*models.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[primitive.ObjectID]*models.Review)}
}

func (f *fakeReviewRepo) CreateReview(ctx context.Context, review *models.Review) (primitive.ObjectID, error) {
	for _, existing := range f.reviews {
		if existing.Appointment == review.Appointment {
			return primitive.NilObjectID, exceptions.ErrReviewAlreadyExists(errors.New("duplicate key"))
		}
	}
	id := primitive.NewObjectID()
	stored := *review
	stored.ID = id
	f.reviews[id] = &stored
	return id, nil
}

func (f *fakeReviewRepo) FindForDoctor(ctx context.Context, doctorID primitive.ObjectID, page, limit int) ([]models.Review, int64, error) {
	result := make([]models.Review, 0)
	for _, review := range f.reviews {
		if review.Doctor == doctorID {
			result = append(result, *review)
		}
	}
	return result, int64(len(result)), nil
}

type fakeAppointmentRepo struct {
	appointments map[primitive.ObjectID]*models.Appointment
}

func (f *fakeAppointmentRepo) CreateAppointment(ctx context.Context, appointment *models.Appointment) (primitive.ObjectID, error) {
	return primitive.NilObjectID, nil
}

func (f *fakeAppointmentRepo) FindByID(ctx context.Context, appointmentID primitive.ObjectID) (*models.Appointment, error) {
	appointment, ok := f.appointments[appointmentID]
	if !ok {
		return nil, nil
	}
	copied := *appointment
	return &copied, nil
}

func (f *fakeAppointmentRepo) ExistsActive(ctx context.Context, doctorID primitive.ObjectID, date time.Time, slot string) (bool, error) {
	return false, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(ctx context.Context, appointmentID primitive.ObjectID, expectedStatus string, set map[string]interface{}) (bool, error) {
	return false, nil
}

func (f *fakeAppointmentRepo) FindForPatient(ctx context.Context, patientID primitive.ObjectID, query *requests.AppointmentListQuery) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) FindForDoctor(ctx context.Context, doctorID primitive.ObjectID, query *requests.AppointmentListQuery) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) FindAdmin(ctx context.Context, query *requests.AdminAppointmentListQuery) ([]models.Appointment, int64, error) {
	return nil, 0, nil
}

func (f *fakeAppointmentRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

func (f *fakeAppointmentRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	return 0, nil
}

func (f *fakeAppointmentRepo) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	return 0, nil
}

type appliedReview struct {
	DoctorID primitive.ObjectID
	Rating   int
}

type fakeDoctorRepo struct {
	doctors map[primitive.ObjectID]*models.Doctor
	applied []appliedReview
}

func (f *fakeDoctorRepo) CreateDoctor(ctx context.Context, doctor *models.Doctor) (primitive.ObjectID, error) {
	return primitive.NilObjectID, nil
}

func (f *fakeDoctorRepo) FindByID(ctx context.Context, doctorID primitive.ObjectID) (*models.Doctor, error) {
	doctor, ok := f.doctors[doctorID]
	if !ok {
		return nil, nil
	}
	copied := *doctor
	return &copied, nil
}

func (f *fakeDoctorRepo) FindByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Doctor, error) {
	return nil, nil
}

func (f *fakeDoctorRepo) UpdateDoctor(ctx context.Context, doctor *models.Doctor) error { return nil }

func (f *fakeDoctorRepo) FindPublic(ctx context.Context, query *requests.DoctorListQuery) ([]models.Doctor, int64, error) {
	return nil, 0, nil
}

func (f *fakeDoctorRepo) FindAdmin(ctx context.Context, query *requests.AdminDoctorListQuery) ([]models.Doctor, int64, error) {
	return nil, 0, nil
}

func (f *fakeDoctorRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

func (f *fakeDoctorRepo) ApplyReview(ctx context.Context, doctorID primitive.ObjectID, rating int) error {
	f.applied = append(f.applied, appliedReview{DoctorID: doctorID, Rating: rating})
	return nil
}

type fakeUserRepo struct {
	users map[primitive.ObjectID]*models.User
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	return primitive.NilObjectID, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) UpdateUser(ctx context.Context, user *models.User) error { return nil }

func (f *fakeUserRepo) FindPatients(ctx context.Context, query *requests.AdminPatientListQuery) ([]models.User, int64, error) {
	return nil, 0, nil
}

func (f *fakeUserRepo) CountByRole(ctx context.Context, role string) (int64, error) { return 0, nil }

type recordedNotification struct {
	UserID primitive.ObjectID
	Type   string
}

type fakeNotifier struct {
	notifications []recordedNotification
}

func (f *fakeNotifier) Notify(ctx context.Context, userID primitive.ObjectID, notificationType, title, message string, meta models.NotificationMeta) {
	f.notifications = append(f.notifications, recordedNotification{UserID: userID, Type: notificationType})
}

type reviewFixture struct {
	usecase       *ReviewUsecase
	reviewRepo    *fakeReviewRepo
	doctorRepo    *fakeDoctorRepo
	notifier      *fakeNotifier
	appointmentID primitive.ObjectID
	doctorID      primitive.ObjectID
	doctorUserID  primitive.ObjectID
	patientID     primitive.ObjectID
}

func newReviewFixture(status string) *reviewFixture {
	patientID := primitive.NewObjectID()
	doctorID := primitive.NewObjectID()
	doctorUserID := primitive.NewObjectID()
	appointmentID := primitive.NewObjectID()

	reviewRepo := newFakeReviewRepo()
	appointmentRepo := &fakeAppointmentRepo{appointments: map[primitive.ObjectID]*models.Appointment{
		appointmentID: {
			ID:      appointmentID,
			Patient: patientID,
			Doctor:  doctorID,
			Date:    time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
			Slot:    "10:00-10:30",
			Status:  status,
		},
	}}
	doctorRepo := &fakeDoctorRepo{doctors: map[primitive.ObjectID]*models.Doctor{
		doctorID: {ID: doctorID, User: doctorUserID, Specialization: "cardiology"},
	}}
	userRepo := &fakeUserRepo{users: map[primitive.ObjectID]*models.User{
		patientID: {ID: patientID, Name: "Pat", Email: "pat@example.com", Role: constvars.RolePatient},
	}}
	notifier := &fakeNotifier{}
	fixedClock := &clock.Fixed{Instant: time.Date(2026, 9, 8, 10, 0, 0, 0, time.UTC)}

	usecase := NewReviewUsecase(reviewRepo, appointmentRepo, doctorRepo, userRepo, notifier, fixedClock).(*ReviewUsecase)
	return &reviewFixture{
		usecase:       usecase,
		reviewRepo:    reviewRepo,
		doctorRepo:    doctorRepo,
		notifier:      notifier,
		appointmentID: appointmentID,
		doctorID:      doctorID,
		doctorUserID:  doctorUserID,
		patientID:     patientID,
	}
}

func assertKind(t *testing.T, err error, kind exceptions.Kind) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, kind, customErr.Kind)
}

func TestCreateReview(t *testing.T) {
	t.Run("completed appointment accepts one review", func(t *testing.T) {
		f := newReviewFixture(constvars.AppointmentStatusCompleted)
		session := &models.Session{UserID: f.patientID.Hex(), Name: "Pat", Role: constvars.RolePatient}

		result, err := f.usecase.Create(context.Background(), session, &requests.CreateReview{
			AppointmentID: f.appointmentID.Hex(), Rating: 5, Comment: "great",
		})
		require.NoError(t, err)
		assert.Equal(t, 5, result.Rating)
		assert.Equal(t, f.doctorID.Hex(), result.DoctorID)

		require.Len(t, f.doctorRepo.applied, 1)
		assert.Equal(t, 5, f.doctorRepo.applied[0].Rating)

		require.Len(t, f.notifier.notifications, 1)
		assert.Equal(t, constvars.NotificationNewReview, f.notifier.notifications[0].Type)
		assert.Equal(t, f.doctorUserID, f.notifier.notifications[0].UserID)
	})

	t.Run("second review for the same appointment conflicts", func(t *testing.T) {
		f := newReviewFixture(constvars.AppointmentStatusCompleted)
		session := &models.Session{UserID: f.patientID.Hex(), Name: "Pat", Role: constvars.RolePatient}
		request := &requests.CreateReview{AppointmentID: f.appointmentID.Hex(), Rating: 4}

		_, err := f.usecase.Create(context.Background(), session, request)
		require.NoError(t, err)

		_, err = f.usecase.Create(context.Background(), session, request)
		assertKind(t, err, exceptions.KindConflict)
	})

	t.Run("only the owning patient may review", func(t *testing.T) {
		f := newReviewFixture(constvars.AppointmentStatusCompleted)
		stranger := &models.Session{UserID: primitive.NewObjectID().Hex(), Role: constvars.RolePatient}

		_, err := f.usecase.Create(context.Background(), stranger, &requests.CreateReview{
			AppointmentID: f.appointmentID.Hex(), Rating: 4,
		})
		assertKind(t, err, exceptions.KindForbidden)
	})

	t.Run("non-completed appointment is not reviewable", func(t *testing.T) {
		for _, status := range []string{
			constvars.AppointmentStatusPending,
			constvars.AppointmentStatusApproved,
			constvars.AppointmentStatusCancelled,
			constvars.AppointmentStatusRejected,
		} {
			f := newReviewFixture(status)
			session := &models.Session{UserID: f.patientID.Hex(), Role: constvars.RolePatient}

			_, err := f.usecase.Create(context.Background(), session, &requests.CreateReview{
				AppointmentID: f.appointmentID.Hex(), Rating: 4,
			})
			assertKind(t, err, exceptions.KindInvalidState)
		}
	})

	t.Run("unknown appointment", func(t *testing.T) {
		f := newReviewFixture(constvars.AppointmentStatusCompleted)
		session := &models.Session{UserID: f.patientID.Hex(), Role: constvars.RolePatient}

		_, err := f.usecase.Create(context.Background(), session, &requests.CreateReview{
			AppointmentID: primitive.NewObjectID().Hex(), Rating: 4,
		})
		assertKind(t, err, exceptions.KindNotFound)
	})
}

func TestFindReviewsForDoctor(t *testing.T) {
	f := newReviewFixture(constvars.AppointmentStatusCompleted)
	session := &models.Session{UserID: f.patientID.Hex(), Name: "Pat", Role: constvars.RolePatient}
	_, err := f.usecase.Create(context.Background(), session, &requests.CreateReview{
		AppointmentID: f.appointmentID.Hex(), Rating: 5, Comment: "great",
	})
	require.NoError(t, err)

	reviews, pagination, err := f.usecase.FindForDoctor(context.Background(), f.doctorID.Hex(), 1, 10)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "great", reviews[0].Comment)
	require.NotNil(t, reviews[0].Patient)
	assert.Equal(t, "Pat", reviews[0].Patient.Name)
	assert.Equal(t, int64(1), pagination.Total)
}
