package router

import (
	"github.com/labstack/echo/v4"

	"altanzam/internal/adapter/api/handler"
	"altanzam/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	notificationHandler := handler.GetNotificationHandler()
	orderHandler := handler.GetOrderHandler()

	admin := e.Group("/v1/admin", authMiddleware.Authenticate, adminMiddleware.AdminOnly)
	admin.POST("/notifications", notificationHandler.CreateGlobal)
	admin.PATCH("/orders/:id/status", orderHandler.UpdateStatus)
}
