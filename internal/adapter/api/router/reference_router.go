package router

import (
	"github.com/labstack/echo/v4"

	"altanzam/internal/adapter/api/handler"
)

func SetupReferenceRouter(e *echo.Echo) {
	referenceHandler := handler.GetReferenceHandler()

	e.GET("/v1/cities", referenceHandler.ListCities)
	e.GET("/v1/banners", referenceHandler.ListBanners)
	e.GET("/v1/app-version", referenceHandler.GetAppVersion)
}
