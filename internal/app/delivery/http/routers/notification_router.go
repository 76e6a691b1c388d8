package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/notifications"

	"github.com/go-chi/chi/v5"
)

func attachNotificationRoutes(router chi.Router, middlewares *middlewares.Middlewares, notificationController *notifications.NotificationController) {
	router.Use(middlewares.Authenticate)
	router.Get("/", notificationController.FindAll)
	router.Patch("/read-all", notificationController.MarkAllRead)
	router.Patch("/{notificationID}/read", notificationController.MarkRead)
}
