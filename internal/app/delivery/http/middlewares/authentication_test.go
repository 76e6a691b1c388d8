package middlewares

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRedisRepository struct {
	sessions map[string]*models.Session
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{sessions: make(map[string]*models.Session)}
}

func (f *fakeRedisRepository) CreateSession(ctx context.Context, sessionID string, session *models.Session, exp time.Duration) error {
	f.sessions[sessionID] = session
	return nil
}

func (f *fakeRedisRepository) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	return f.sessions[sessionID], nil
}

func (f *fakeRedisRepository) DeleteSession(ctx context.Context, sessionID string) error {
	delete(f.sessions, sessionID)
	return nil
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return "", nil
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	return nil
}

const testJWTSecret = "middleware-test-secret"

func newTestMiddlewares(redisRepository *fakeRedisRepository) *Middlewares {
	return NewMiddlewares(zap.NewNop(), redisRepository, &config.InternalConfig{
		JWT: config.JWT{Secret: testJWTSecret},
	})
}

func issueToken(t *testing.T, redisRepository *fakeRedisRepository, session *models.Session) string {
	t.Helper()
	const sessionID = "session-1"
	redisRepository.sessions[sessionID] = session
	token, err := utils.GenerateJWT(sessionID, testJWTSecret, time.Hour)
	require.NoError(t, err)
	return token
}

func TestAuthenticate(t *testing.T) {
	t.Run("valid token puts the session in context", func(t *testing.T) {
		redisRepository := newFakeRedisRepository()
		middlewares := newTestMiddlewares(redisRepository)
		token := issueToken(t, redisRepository, &models.Session{UserID: "u1", Role: constvars.RolePatient})

		var seen *models.Session
		handler := middlewares.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := utils.SessionFromContext(r.Context())
			require.NoError(t, err)
			seen = session
			assert.Equal(t, "session-1", r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY))
			w.WriteHeader(http.StatusOK)
		}))

		request := httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil)
		request.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		require.NotNil(t, seen)
		assert.Equal(t, "u1", seen.UserID)
	})

	t.Run("missing header is unauthorized", func(t *testing.T) {
		middlewares := newTestMiddlewares(newFakeRedisRepository())
		handler := middlewares.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run")
		}))

		request := httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("malformed token is unauthorized", func(t *testing.T) {
		middlewares := newTestMiddlewares(newFakeRedisRepository())
		handler := middlewares.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run")
		}))

		request := httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil)
		request.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-token")
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("revoked session is unauthorized even with a valid token", func(t *testing.T) {
		redisRepository := newFakeRedisRepository()
		middlewares := newTestMiddlewares(redisRepository)
		token := issueToken(t, redisRepository, &models.Session{UserID: "u1", Role: constvars.RolePatient})
		delete(redisRepository.sessions, "session-1")

		handler := middlewares.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run")
		}))

		request := httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil)
		request.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestRequireRole(t *testing.T) {
	serve := func(t *testing.T, role string, allowed ...string) *httptest.ResponseRecorder {
		t.Helper()
		middlewares := newTestMiddlewares(newFakeRedisRepository())
		handler := middlewares.RequireRole(allowed...)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		request := httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard/stats", nil)
		if role != "" {
			ctx := context.WithValue(request.Context(), constvars.CONTEXT_SESSION_KEY, &models.Session{UserID: "u1", Role: role})
			request = request.WithContext(ctx)
		}
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		return recorder
	}

	t.Run("allowed role passes", func(t *testing.T) {
		recorder := serve(t, constvars.RoleAdmin, constvars.RoleAdmin)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("any of several roles passes", func(t *testing.T) {
		recorder := serve(t, constvars.RoleDoctor, constvars.RolePatient, constvars.RoleDoctor)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("other role is forbidden", func(t *testing.T) {
		recorder := serve(t, constvars.RolePatient, constvars.RoleAdmin)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("missing session is unauthorized", func(t *testing.T) {
		recorder := serve(t, "")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
