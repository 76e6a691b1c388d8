package utils

import (
	"medibook-service/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var slotPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d-([01]\d|2[0-3]):[0-5]\d$`)

func init() {
	validate = validator.New()
	validate.RegisterValidation("role", validateRole)
	validate.RegisterValidation("slot", validateSlot)
	validate.RegisterValidation("weekday", validateWeekday)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.RolePatient || value == constvars.RoleDoctor
}

// validateSlot accepts the canonical "HH:MM-HH:MM" slot form only; the slot is
// an exact-match key downstream, so its shape is pinned here.
func validateSlot(fl validator.FieldLevel) bool {
	return slotPattern.MatchString(fl.Field().String())
}

func validateWeekday(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, day := range constvars.WeekdayNames {
		if value == day {
			return true
		}
	}
	return false
}
