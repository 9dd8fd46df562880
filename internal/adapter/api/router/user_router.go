package router

import (
	"github.com/labstack/echo/v4"

	"altanzam/internal/adapter/api/handler"
	"altanzam/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	me := e.Group("/v1/users/me", authMiddleware.Authenticate)
	me.GET("", userHandler.GetProfile)
	me.PATCH("", userHandler.UpdateProfile)
	me.PUT("/password", userHandler.ChangePassword)
	me.POST("/photo", userHandler.UploadPhoto)
	me.POST("/fcm-tokens", userHandler.RegisterPushToken)
	me.DELETE("/fcm-tokens", userHandler.RemovePushToken)
}
