package routers

import (
	"serenia-service/internal/app/delivery/http/middlewares"
	"serenia-service/internal/app/services/core/notifications"

	"github.com/go-chi/chi/v5"
)

func attachNotificationRoutes(router chi.Router, middlewares *middlewares.Middlewares, notificationController *notifications.NotificationController) {
	router.Get("/", notificationController.FindNotificationsByRecipientID)
	router.Get("/unread-count", notificationController.CountUnreadByRecipientID)
	router.Post("/read", notificationController.MarkAllRead)
}
