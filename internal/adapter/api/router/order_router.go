package router

import (
	"github.com/labstack/echo/v4"

	"altanzam/internal/adapter/api/handler"
	"altanzam/internal/adapter/api/middleware"
)

func SetupOrderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	orderHandler := handler.GetOrderHandler()

	orders := e.Group("/v1/orders", authMiddleware.Authenticate)
	orders.GET("", orderHandler.ListOrders)
	orders.GET("/:id", orderHandler.GetOrder)
	orders.DELETE("/:id", orderHandler.DeleteOrder)
	orders.PATCH("/:id/status", orderHandler.UpdateStatus)
}
