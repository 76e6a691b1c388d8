package requests

type CreateReview struct {
	AppointmentID string `json:"appointmentId" validate:"required"`
	Rating        int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment       string `json:"comment,omitempty" validate:"omitempty,max=500"`
}
