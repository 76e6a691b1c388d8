package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/appointments"
	"medibook-service/internal/app/services/core/doctors"
	"medibook-service/internal/app/services/core/reviews"
	"medibook-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	doctorController *doctors.DoctorController,
	appointmentController *appointments.AppointmentController,
	reviewController *reviews.ReviewController,
) {
	router.Get("/", doctorController.FindPublic)

	// The doctor's own routes come before the id wildcard so "me" never
	// parses as a doctor id.
	router.Route("/me", func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Use(middlewares.RequireRole(constvars.RoleDoctor))
		r.Get("/profile", doctorController.GetOwnProfile)
		r.Put("/profile", doctorController.UpdateOwnProfile)
		r.Get("/appointments", appointmentController.FindAll)
	})

	router.Get("/{doctorID}", doctorController.FindPublicByID)
	router.Get("/{doctorID}/reviews", reviewController.FindForDoctor)
}
