package routers

import (
	"fmt"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/admin"
	"medibook-service/internal/app/services/core/appointments"
	"medibook-service/internal/app/services/core/auth"
	"medibook-service/internal/app/services/core/doctors"
	"medibook-service/internal/app/services/core/notifications"
	"medibook-service/internal/app/services/core/patients"
	"medibook-service/internal/app/services/core/reviews"
	"medibook-service/internal/pkg/constvars"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	patientController *patients.PatientController,
	doctorController *doctors.DoctorController,
	appointmentController *appointments.AppointmentController,
	notificationController *notifications.NotificationController,
	reviewController *reviews.ReviewController,
	adminController *admin.AdminController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))
	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Get("/health", healthHandler)

			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/doctors", func(r chi.Router) {
				attachDoctorRoutes(r, middlewares, doctorController, appointmentController, reviewController)
			})

			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, middlewares, patientController)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, middlewares, appointmentController)
			})

			r.Route("/notifications", func(r chi.Router) {
				attachNotificationRoutes(r, middlewares, notificationController)
			})

			r.Route("/reviews", func(r chi.Router) {
				attachReviewRoutes(r, middlewares, reviewController)
			})

			r.Route("/admin", func(r chi.Router) {
				attachAdminRoutes(r, middlewares, adminController)
			})
		})
	})
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(constvars.StatusOK)
	w.Write([]byte(`{"success":true,"message":"ok"}`))
}
