package router

import (
	"github.com/labstack/echo/v4"

	"altanzam/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, writeLimiter *middleware.RateLimiter) {
	SetupAuthRouter(e)
	SetupCatalogRouter(e, authMiddleware, writeLimiter)
	SetupOrderRouter(e, authMiddleware)
	SetupNotificationRouter(e, authMiddleware)
	SetupSavedItemRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware)
	SetupReferenceRouter(e)
	SetupAdminRouter(e, authMiddleware, adminMiddleware)
	SetupWebSocketRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
