package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/patients"
	"medibook-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *patients.PatientController) {
	router.Use(middlewares.Authenticate)
	router.Use(middlewares.RequireRole(constvars.RolePatient))
	router.Put("/me/profile", patientController.UpdateProfile)
}
