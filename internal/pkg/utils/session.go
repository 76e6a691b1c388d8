package utils

import (
	"context"
	"errors"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
)

// SessionFromContext returns the session placed in the request context by the
// authentication middleware.
func SessionFromContext(ctx context.Context) (*models.Session, error) {
	session, ok := ctx.Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
	if !ok || session == nil {
		return nil, exceptions.ErrSessionInvalid(errors.New("no session in request context"))
	}
	return session, nil
}
