package utils

import (
	"medibook-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotValidation(t *testing.T) {
	base := requests.CreateAppointment{
		DoctorID: "64f0c0ffee0c0ffee0c0ffee",
		Date:     "2026-09-07",
		Reason:   "checkup",
	}

	valid := []string{"09:00-09:30", "00:00-23:59", "17:30-18:00"}
	for _, slot := range valid {
		request := base
		request.Slot = slot
		assert.NoError(t, ValidateStruct(&request), slot)
	}

	invalid := []string{"9:00-9:30", "09:00", "09:00 - 09:30", "25:00-25:30", "09:60-10:00", ""}
	for _, slot := range invalid {
		request := base
		request.Slot = slot
		assert.Error(t, ValidateStruct(&request), slot)
	}
}

func TestRoleValidation(t *testing.T) {
	signup := requests.Signup{
		Name:     "Pat",
		Email:    "pat@example.com",
		Password: "secret123",
	}

	t.Run("patient and doctor are acceptable", func(t *testing.T) {
		request := signup
		request.Role = "patient"
		assert.NoError(t, ValidateStruct(&request))
	})

	t.Run("admin cannot self-register", func(t *testing.T) {
		request := signup
		request.Role = "admin"
		assert.Error(t, ValidateStruct(&request))
	})
}

func TestWeekdayValidation(t *testing.T) {
	profile := requests.DoctorProfile{
		Specialization:  "cardiology",
		Qualification:   []string{"MBBS"},
		ClinicName:      "City Clinic",
		ExperienceYears: 4,
		ConsultationFee: 500,
		TimeSlots:       []requests.TimeWindow{{Start: "09:00", End: "17:00"}},
	}

	t.Run("lowercase weekday names", func(t *testing.T) {
		request := profile
		request.AvailableDays = []string{"monday", "friday"}
		assert.NoError(t, ValidateStruct(&request))
	})

	t.Run("capitalized names are rejected", func(t *testing.T) {
		request := profile
		request.AvailableDays = []string{"Monday"}
		assert.Error(t, ValidateStruct(&request))
	})
}
