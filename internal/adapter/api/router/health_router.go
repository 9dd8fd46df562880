package router

import (
	"github.com/labstack/echo/v4"

	"altanzam/internal/adapter/api/handler"
	"altanzam/pkg/metrics"
)

func SetupHealthRouter(e *echo.Echo) {
	healthHandler := handler.GetHealthHandler()
	e.GET("/health", healthHandler.CheckHealth)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
}
