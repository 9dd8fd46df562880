package router

import (
	"github.com/labstack/echo/v4"

	"altanzam/internal/adapter/api/handler"
	"altanzam/internal/adapter/api/middleware"
)

func SetupSavedItemRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	savedItemHandler := handler.GetSavedItemHandler()

	saved := e.Group("/v1/saved", authMiddleware.Authenticate)
	saved.GET("", savedItemHandler.ListSavedItems)
	saved.POST("/:category/:id", savedItemHandler.SaveItem)
	saved.DELETE("/:category/:id", savedItemHandler.RemoveItem)
}
