package appointments

import (
	"context"
	"errors"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ValidateAvailability checks that the doctor can take a booking for the
// given date and slot, and returns the resolved doctor. The checks run in
// order: the doctor exists, is verified and active, works on that weekday,
// and the slot's start falls inside one of the configured windows. Whether
// the slot is already taken is a separate concern handled by the conflict
// guard.
func (uc *AppointmentUsecase) ValidateAvailability(ctx context.Context, doctorID primitive.ObjectID, date time.Time, slot string) (*models.Doctor, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotExist(errors.New("doctor id does not resolve"))
	}
	if !doctor.IsVerified || !doctor.IsActive {
		return nil, exceptions.ErrDoctorUnavailable(errors.New("doctor unverified or inactive"))
	}

	weekday := utils.WeekdayName(date.In(uc.Clock.Location()))
	if !doctor.AvailableOn(weekday) {
		return nil, exceptions.ErrDayUnavailable(errors.New("weekday not in availableDays"))
	}

	slotStart := models.SlotStart(slot)
	for _, window := range doctor.TimeSlots {
		if utils.IsTimeWithinWindow(slotStart, window.Start, window.End) {
			return doctor, nil
		}
	}
	return nil, exceptions.ErrInvalidSlot(errors.New("slot start outside all windows"))
}
