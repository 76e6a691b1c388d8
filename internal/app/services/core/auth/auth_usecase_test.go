package auth

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/app/services/shared/clock"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUserRepo struct {
	users map[primitive.ObjectID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*models.User)}
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	stored := *user
	stored.ID = id
	f.users[id] = &stored
	return id, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
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

func (f *fakeUserRepo) UpdateUser(ctx context.Context, user *models.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindPatients(ctx context.Context, query *requests.AdminPatientListQuery) ([]models.User, int64, error) {
	return nil, 0, nil
}

func (f *fakeUserRepo) CountByRole(ctx context.Context, role string) (int64, error) {
	return 0, nil
}

type fakeDoctorRepo struct {
	doctors map[primitive.ObjectID]*models.Doctor
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{doctors: make(map[primitive.ObjectID]*models.Doctor)}
}

func (f *fakeDoctorRepo) CreateDoctor(ctx context.Context, doctor *models.Doctor) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	stored := *doctor
	stored.ID = id
	f.doctors[id] = &stored
	return id, nil
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
	for _, doctor := range f.doctors {
		if doctor.User == userID {
			copied := *doctor
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeDoctorRepo) UpdateDoctor(ctx context.Context, doctor *models.Doctor) error {
	f.doctors[doctor.ID] = doctor
	return nil
}

func (f *fakeDoctorRepo) FindPublic(ctx context.Context, query *requests.DoctorListQuery) ([]models.Doctor, int64, error) {
	return nil, 0, nil
}

func (f *fakeDoctorRepo) FindAdmin(ctx context.Context, query *requests.AdminDoctorListQuery) ([]models.Doctor, int64, error) {
	return nil, 0, nil
}

func (f *fakeDoctorRepo) Count(ctx context.Context) (int64, error) {
	return 0, nil
}

func (f *fakeDoctorRepo) ApplyReview(ctx context.Context, doctorID primitive.ObjectID, rating int) error {
	return nil
}

type fakeRedisRepo struct {
	sessions map[string]*models.Session
}

func newFakeRedisRepo() *fakeRedisRepo {
	return &fakeRedisRepo{sessions: make(map[string]*models.Session)}
}

func (f *fakeRedisRepo) CreateSession(ctx context.Context, sessionID string, session *models.Session, exp time.Duration) error {
	f.sessions[sessionID] = session
	return nil
}

func (f *fakeRedisRepo) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	return f.sessions[sessionID], nil
}

func (f *fakeRedisRepo) DeleteSession(ctx context.Context, sessionID string) error {
	delete(f.sessions, sessionID)
	return nil
}

func (f *fakeRedisRepo) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}

func (f *fakeRedisRepo) Get(ctx context.Context, key string) (string, error) {
	return "", nil
}

func (f *fakeRedisRepo) Delete(ctx context.Context, key string) error {
	return nil
}

const testSecret = "auth-test-secret"

func newTestUsecase() (contracts.AuthUsecase, *fakeUserRepo, *fakeDoctorRepo, *fakeRedisRepo) {
	userRepo := newFakeUserRepo()
	doctorRepo := newFakeDoctorRepo()
	redisRepo := newFakeRedisRepo()
	fixedClock := &clock.Fixed{Instant: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)}
	internalConfig := &config.InternalConfig{
		App: config.App{SessionExpiredTimeInHours: 24},
		JWT: config.JWT{Secret: testSecret, ExpTimeInHour: 24},
	}
	usecase := NewAuthUsecase(userRepo, doctorRepo, redisRepo, fixedClock, internalConfig)
	return usecase, userRepo, doctorRepo, redisRepo
}

func assertKind(t *testing.T, err error, kind exceptions.Kind) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, kind, customErr.Kind)
}

func patientSignup() *requests.Signup {
	return &requests.Signup{
		Name:     "Pat",
		Email:    "pat@example.com",
		Password: "secret123",
	}
}

func doctorSignup() *requests.Signup {
	return &requests.Signup{
		Name:     "Dr Asha",
		Email:    "asha@example.com",
		Password: "secret123",
		Role:     constvars.RoleDoctor,
		DoctorProfile: &requests.DoctorProfile{
			Specialization:  "cardiology",
			Qualification:   []string{"MBBS"},
			ClinicName:      "City Clinic",
			ExperienceYears: 4,
			ConsultationFee: 500,
			AvailableDays:   []string{"monday"},
			TimeSlots:       []requests.TimeWindow{{Start: "09:00", End: "17:00"}},
		},
	}
}

func TestSignup(t *testing.T) {
	t.Run("defaults the role to patient and returns a usable token", func(t *testing.T) {
		usecase, userRepo, _, redisRepo := newTestUsecase()

		result, err := usecase.Signup(context.Background(), patientSignup())
		require.NoError(t, err)
		assert.Equal(t, constvars.RolePatient, result.User.Role)
		assert.NotEmpty(t, result.Token)

		sessionID, err := utils.ParseJWT(result.Token, testSecret)
		require.NoError(t, err)
		session, err := redisRepo.GetSession(context.Background(), sessionID)
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.Equal(t, constvars.RolePatient, session.Role)

		stored, err := userRepo.FindByEmail(context.Background(), "pat@example.com")
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.NotEqual(t, "secret123", stored.Password)
	})

	t.Run("doctor signup creates an unverified profile", func(t *testing.T) {
		usecase, userRepo, doctorRepo, _ := newTestUsecase()

		result, err := usecase.Signup(context.Background(), doctorSignup())
		require.NoError(t, err)

		user, err := userRepo.FindByEmail(context.Background(), "asha@example.com")
		require.NoError(t, err)
		doctor, err := doctorRepo.FindByUserID(context.Background(), user.ID)
		require.NoError(t, err)
		require.NotNil(t, doctor)
		assert.False(t, doctor.IsVerified)
		assert.True(t, doctor.IsActive)
		assert.Equal(t, constvars.RoleDoctor, result.User.Role)
	})

	t.Run("doctor signup without a profile is rejected", func(t *testing.T) {
		usecase, _, _, _ := newTestUsecase()
		request := doctorSignup()
		request.DoctorProfile = nil

		_, err := usecase.Signup(context.Background(), request)
		assertKind(t, err, exceptions.KindValidation)
	})

	t.Run("admin signup is rejected", func(t *testing.T) {
		usecase, _, _, _ := newTestUsecase()
		request := patientSignup()
		request.Role = constvars.RoleAdmin

		_, err := usecase.Signup(context.Background(), request)
		assertKind(t, err, exceptions.KindForbidden)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		usecase, _, _, _ := newTestUsecase()
		_, err := usecase.Signup(context.Background(), patientSignup())
		require.NoError(t, err)

		_, err = usecase.Signup(context.Background(), patientSignup())
		assertKind(t, err, exceptions.KindConflict)
	})
}

func TestLogin(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		usecase, _, _, _ := newTestUsecase()
		_, err := usecase.Signup(context.Background(), patientSignup())
		require.NoError(t, err)

		result, err := usecase.Login(context.Background(), &requests.Login{Email: "pat@example.com", Password: "secret123"})
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, "pat@example.com", result.User.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		usecase, _, _, _ := newTestUsecase()
		_, err := usecase.Signup(context.Background(), patientSignup())
		require.NoError(t, err)

		_, err = usecase.Login(context.Background(), &requests.Login{Email: "pat@example.com", Password: "wrong"})
		assertKind(t, err, exceptions.KindUnauthorized)
	})

	t.Run("unknown email", func(t *testing.T) {
		usecase, _, _, _ := newTestUsecase()
		_, err := usecase.Login(context.Background(), &requests.Login{Email: "nobody@example.com", Password: "secret123"})
		assertKind(t, err, exceptions.KindUnauthorized)
	})

	t.Run("deactivated account", func(t *testing.T) {
		usecase, userRepo, _, _ := newTestUsecase()
		_, err := usecase.Signup(context.Background(), patientSignup())
		require.NoError(t, err)

		user, err := userRepo.FindByEmail(context.Background(), "pat@example.com")
		require.NoError(t, err)
		user.IsActive = false
		require.NoError(t, userRepo.UpdateUser(context.Background(), user))

		_, err = usecase.Login(context.Background(), &requests.Login{Email: "pat@example.com", Password: "secret123"})
		assertKind(t, err, exceptions.KindUnauthorized)
	})
}

func TestLogout(t *testing.T) {
	usecase, _, _, redisRepo := newTestUsecase()
	result, err := usecase.Signup(context.Background(), patientSignup())
	require.NoError(t, err)

	sessionID, err := utils.ParseJWT(result.Token, testSecret)
	require.NoError(t, err)

	require.NoError(t, usecase.Logout(context.Background(), sessionID))

	session, err := redisRepo.GetSession(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestMe(t *testing.T) {
	t.Run("patient payload has no doctor profile", func(t *testing.T) {
		usecase, userRepo, _, _ := newTestUsecase()
		_, err := usecase.Signup(context.Background(), patientSignup())
		require.NoError(t, err)

		user, err := userRepo.FindByEmail(context.Background(), "pat@example.com")
		require.NoError(t, err)

		result, err := usecase.Me(context.Background(), &models.Session{UserID: user.ID.Hex(), Role: constvars.RolePatient})
		require.NoError(t, err)
		assert.Nil(t, result.DoctorProfile)
		assert.Equal(t, "pat@example.com", result.User.Email)
	})

	t.Run("doctor payload carries the profile", func(t *testing.T) {
		usecase, userRepo, _, _ := newTestUsecase()
		_, err := usecase.Signup(context.Background(), doctorSignup())
		require.NoError(t, err)

		user, err := userRepo.FindByEmail(context.Background(), "asha@example.com")
		require.NoError(t, err)

		result, err := usecase.Me(context.Background(), &models.Session{UserID: user.ID.Hex(), Role: constvars.RoleDoctor})
		require.NoError(t, err)
		require.NotNil(t, result.DoctorProfile)
		assert.Equal(t, "cardiology", result.DoctorProfile.Specialization)
	})
}
