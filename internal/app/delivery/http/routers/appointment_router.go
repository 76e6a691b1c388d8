package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/appointments"
	"medibook-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	router.Use(middlewares.Authenticate)

	router.With(middlewares.RequireRole(constvars.RolePatient)).Post("/", appointmentController.Create)
	router.With(middlewares.RequireRole(constvars.RolePatient, constvars.RoleDoctor)).Get("/", appointmentController.FindAll)
	router.Get("/{appointmentID}", appointmentController.FindByID)

	router.With(middlewares.RequireRole(constvars.RoleDoctor)).Patch("/{appointmentID}/approve", appointmentController.Approve)
	router.With(middlewares.RequireRole(constvars.RoleDoctor)).Patch("/{appointmentID}/reject", appointmentController.Reject)
	router.With(middlewares.RequireRole(constvars.RoleDoctor)).Patch("/{appointmentID}/complete", appointmentController.Complete)
	router.With(middlewares.RequireRole(constvars.RolePatient, constvars.RoleDoctor)).Patch("/{appointmentID}/cancel", appointmentController.Cancel)
}
