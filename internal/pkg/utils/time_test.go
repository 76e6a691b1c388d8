package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTimeWithinWindow(t *testing.T) {
	t.Run("inclusive lower bound", func(t *testing.T) {
		assert.True(t, IsTimeWithinWindow("09:00", "09:00", "17:00"))
	})

	t.Run("exclusive upper bound", func(t *testing.T) {
		assert.False(t, IsTimeWithinWindow("17:00", "09:00", "17:00"))
		assert.True(t, IsTimeWithinWindow("16:59", "09:00", "17:00"))
	})

	t.Run("outside the window", func(t *testing.T) {
		assert.False(t, IsTimeWithinWindow("08:59", "09:00", "17:00"))
		assert.False(t, IsTimeWithinWindow("20:00", "09:00", "17:00"))
	})

	t.Run("zero-padded strings order chronologically", func(t *testing.T) {
		assert.True(t, IsTimeWithinWindow("10:30", "09:00", "17:00"))
		assert.False(t, IsTimeWithinWindow("09:30", "10:00", "11:00"))
	})
}

func TestWeekdayName(t *testing.T) {
	// 2026-09-07 is a Monday, 2026-09-06 a Sunday.
	assert.Equal(t, "monday", WeekdayName(time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "sunday", WeekdayName(time.Date(2026, 9, 6, 12, 30, 0, 0, time.UTC)))
}

func TestParseAppointmentDate(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	t.Run("bare calendar date", func(t *testing.T) {
		parsed, err := ParseAppointmentDate("2026-09-07", jakarta)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 9, 7, 0, 0, 0, 0, jakarta), parsed)
	})

	t.Run("RFC 3339 timestamp truncates to midnight", func(t *testing.T) {
		parsed, err := ParseAppointmentDate("2026-09-07T15:04:05Z", time.UTC)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), parsed)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := ParseAppointmentDate("07/09/2026", time.UTC)
		assert.Error(t, err)
	})
}

func TestTruncateToDate(t *testing.T) {
	instant := time.Date(2026, 9, 7, 18, 45, 12, 999, time.UTC)
	assert.Equal(t, time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), TruncateToDate(instant, time.UTC))
}
