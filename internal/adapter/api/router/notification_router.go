package router

import (
	"github.com/labstack/echo/v4"

	"altanzam/internal/adapter/api/handler"
	"altanzam/internal/adapter/api/middleware"
)

func SetupNotificationRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	notificationHandler := handler.GetNotificationHandler()

	notifications := e.Group("/v1/notifications", authMiddleware.Authenticate)
	notifications.GET("", notificationHandler.ListNotifications)
	notifications.PATCH("/read-all", notificationHandler.MarkAllRead)
	notifications.PATCH("/:id/read", notificationHandler.MarkRead)
	notifications.DELETE("/:id", notificationHandler.DeleteNotification)
}
