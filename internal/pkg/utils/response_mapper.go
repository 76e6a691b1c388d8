package utils

import (
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/responses"
)

func MapUserResponse(user *models.User) *responses.User {
	if user == nil {
		return nil
	}
	return &responses.User{
		ID:        user.ID.Hex(),
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Phone:     user.Phone,
		Age:       user.Age,
		Gender:    user.Gender,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}

func MapDoctorResponse(doctor *models.Doctor, owner *models.User) *responses.Doctor {
	if doctor == nil {
		return nil
	}
	windows := make([]responses.TimeWindow, 0, len(doctor.TimeSlots))
	for _, window := range doctor.TimeSlots {
		windows = append(windows, responses.TimeWindow{Start: window.Start, End: window.End})
	}
	response := &responses.Doctor{
		ID:              doctor.ID.Hex(),
		User:            MapUserResponse(owner),
		Specialization:  doctor.Specialization,
		ExperienceYears: doctor.ExperienceYears,
		Qualification:   doctor.Qualification,
		ClinicName:      doctor.ClinicName,
		ConsultationFee: doctor.ConsultationFee,
		AvailableDays:   doctor.AvailableDays,
		TimeSlots:       windows,
		IsVerified:      doctor.IsVerified,
		IsActive:        doctor.IsActive,
		Rating:          doctor.Rating,
		TotalReviews:    doctor.TotalReviews,
		Bio:             doctor.Bio,
		CreatedAt:       doctor.CreatedAt,
	}
	if doctor.Address.City != "" {
		response.Address = &responses.Address{
			Street:  doctor.Address.Street,
			City:    doctor.Address.City,
			State:   doctor.Address.State,
			Pincode: doctor.Address.Pincode,
			Country: doctor.Address.Country,
		}
	}
	return response
}

func MapAppointmentResponse(appointment *models.Appointment, patient *models.User, doctor *models.Doctor, doctorOwner *models.User) *responses.Appointment {
	if appointment == nil {
		return nil
	}
	return &responses.Appointment{
		ID:                 appointment.ID.Hex(),
		Patient:            MapUserResponse(patient),
		Doctor:             MapDoctorResponse(doctor, doctorOwner),
		Date:               appointment.Date.Format(constvars.AppointmentDateLayout),
		Slot:               appointment.Slot,
		Status:             appointment.Status,
		Reason:             appointment.Reason,
		Notes:              appointment.Notes,
		Prescription:       appointment.Prescription,
		CancellationReason: appointment.CancellationReason,
		CreatedBy:          appointment.CreatedBy,
		CreatedAt:          appointment.CreatedAt,
		UpdatedAt:          appointment.UpdatedAt,
	}
}

func MapNotificationResponse(notification *models.Notification) responses.Notification {
	meta := responses.NotificationMeta{}
	if !notification.Meta.AppointmentID.IsZero() {
		meta.AppointmentID = notification.Meta.AppointmentID.Hex()
	}
	if !notification.Meta.DoctorID.IsZero() {
		meta.DoctorID = notification.Meta.DoctorID.Hex()
	}
	if !notification.Meta.PatientID.IsZero() {
		meta.PatientID = notification.Meta.PatientID.Hex()
	}
	return responses.Notification{
		ID:        notification.ID.Hex(),
		Type:      notification.Type,
		Title:     notification.Title,
		Message:   notification.Message,
		IsRead:    notification.IsRead,
		Meta:      meta,
		CreatedAt: notification.CreatedAt,
	}
}

func MapReviewResponse(review *models.Review, patient *models.User) responses.Review {
	return responses.Review{
		ID:            review.ID.Hex(),
		DoctorID:      review.Doctor.Hex(),
		Patient:       MapUserResponse(patient),
		AppointmentID: review.Appointment.Hex(),
		Rating:        review.Rating,
		Comment:       review.Comment,
		CreatedAt:     review.CreatedAt,
	}
}
