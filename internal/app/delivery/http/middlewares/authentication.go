package middlewares

import (
	"context"
	"errors"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"net/http"
	"strings"
)

// Authenticate resolves the bearer token to a Redis-backed session and stores
// both the session and its id in the request context. A valid JWT whose
// session has been revoked (logout, expiry) is rejected the same way as a bad
// token.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(errors.New("no authorization header")))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		sessionID, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		session, err := m.RedisRepository.GetSession(r.Context(), sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if session == nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionInvalid(errors.New("session revoked or expired")))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_KEY, session)
		ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_ID_KEY, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole gates a route group to the named roles. It assumes Authenticate
// ran earlier in the chain.
func (m *Middlewares) RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := utils.SessionFromContext(r.Context())
			if err != nil {
				utils.BuildErrorResponse(m.Log, w, err)
				return
			}
			for _, role := range roles {
				if session.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotMatchRoleType(errors.New("role "+session.Role+" not allowed")))
		})
	}
}
