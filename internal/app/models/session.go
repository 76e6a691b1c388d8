package models

import "medibook-service/internal/pkg/constvars"

// Session is the authenticated identity stored in Redis and re-derived from the
// bearer token on every request.
type Session struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

func (s *Session) IsPatient() bool {
	return s.Role == constvars.RolePatient
}

func (s *Session) IsDoctor() bool {
	return s.Role == constvars.RoleDoctor
}

func (s *Session) IsAdmin() bool {
	return s.Role == constvars.RoleAdmin
}
