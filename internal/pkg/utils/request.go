package utils

import (
	"medibook-service/internal/pkg/constvars"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

// ParsePagination reads 1-based page/limit query params, falling back to the
// provided defaults on absence or garbage.
func ParsePagination(r *http.Request, defaultLimit int) (page, limit int) {
	page = constvars.PaginationDefaultPage
	limit = defaultLimit

	if raw := r.URL.Query().Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			page = parsed
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	return page, limit
}

// ParseDateQuery parses an optional date query param in loc; nil when absent.
func ParseDateQuery(r *http.Request, name string, loc *time.Location) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	parsed, err := ParseAppointmentDate(raw, loc)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// ParseBoolQuery parses an optional boolean query param; nil when absent.
func ParseBoolQuery(r *http.Request, name string) *bool {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &parsed
}
