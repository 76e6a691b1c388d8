package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/reviews"
	"medibook-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachReviewRoutes(router chi.Router, middlewares *middlewares.Middlewares, reviewController *reviews.ReviewController) {
	router.With(middlewares.Authenticate, middlewares.RequireRole(constvars.RolePatient)).Post("/", reviewController.Create)
}
