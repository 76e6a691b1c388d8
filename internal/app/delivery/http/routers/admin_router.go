package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/admin"
	"medibook-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(router chi.Router, middlewares *middlewares.Middlewares, adminController *admin.AdminController) {
	router.Use(middlewares.Authenticate)
	router.Use(middlewares.RequireRole(constvars.RoleAdmin))

	router.Get("/dashboard/stats", adminController.DashboardStats)

	router.Get("/doctors", adminController.FindDoctors)
	router.Post("/doctors", adminController.CreateDoctor)
	router.Get("/doctors/{doctorID}", adminController.FindDoctorByID)
	router.Put("/doctors/{doctorID}", adminController.UpdateDoctor)
	router.Patch("/doctors/{doctorID}/verify", adminController.VerifyDoctor)

	router.Get("/patients", adminController.FindPatients)
	router.Get("/appointments", adminController.FindAppointments)
}
