package utils

import (
	"medibook-service/internal/pkg/constvars"
	"time"
)

// IsTimeWithinWindow applies the half-open availability rule: the requested
// start is accepted when window.start <= start < window.end. Zero-padded
// "HH:MM" strings compare lexicographically in chronological order, so plain
// string comparison is sufficient.
func IsTimeWithinWindow(start, windowStart, windowEnd string) bool {
	return start >= windowStart && start < windowEnd
}

// WeekdayName returns the lowercase weekday name of t ("monday", ...).
func WeekdayName(t time.Time) string {
	return constvars.WeekdayNames[int(t.Weekday())]
}

// TruncateToDate strips the time-of-day in the given location; appointment
// dates are stored as midnight instants so exact calendar-date equality holds.
func TruncateToDate(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// ParseAppointmentDate accepts either a bare calendar date or a full RFC 3339
// timestamp and truncates it to midnight in loc.
func ParseAppointmentDate(value string, loc *time.Location) (time.Time, error) {
	if parsed, err := time.ParseInLocation(constvars.AppointmentDateLayout, value, loc); err == nil {
		return parsed, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return TruncateToDate(parsed, loc), nil
}
