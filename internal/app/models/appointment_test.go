package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlotStart(t *testing.T) {
	assert.Equal(t, "10:00", SlotStart("10:00-10:30"))
	assert.Equal(t, "10:00", SlotStart("10:00"))
}

func TestStartsAt(t *testing.T) {
	appointment := &Appointment{
		Date: time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		Slot: "10:00-10:30",
	}
	assert.Equal(t, time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC), appointment.StartsAt(time.UTC))
}

func TestIsActive(t *testing.T) {
	active := []string{"pending", "approved"}
	for _, status := range active {
		appointment := &Appointment{Status: status}
		assert.True(t, appointment.IsActive(), status)
	}

	inactive := []string{"rejected", "cancelled", "completed"}
	for _, status := range inactive {
		appointment := &Appointment{Status: status}
		assert.False(t, appointment.IsActive(), status)
	}
}

func TestAvailableOn(t *testing.T) {
	doctor := &Doctor{AvailableDays: []string{"monday", "wednesday"}}
	assert.True(t, doctor.AvailableOn("monday"))
	assert.False(t, doctor.AvailableOn("tuesday"))
}
