package router

import (
	"github.com/labstack/echo/v4"

	"altanzam/internal/adapter/api/handler"
	"altanzam/internal/adapter/api/middleware"
)

// SetupCatalogRouter registers browsing plus the per-item review and order
// routes. Review and order submission are rate limited.
func SetupCatalogRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, writeLimiter *middleware.RateLimiter) {
	catalogHandler := handler.GetCatalogHandler()
	reviewHandler := handler.GetReviewHandler()
	orderHandler := handler.GetOrderHandler()

	e.GET("/v1/categories", catalogHandler.ListCategories)

	services := e.Group("/v1/services")
	services.GET("/:category", catalogHandler.ListItems, authMiddleware.OptionalAuth)
	services.GET("/:category/:id", catalogHandler.GetItem, authMiddleware.OptionalAuth)

	services.GET("/:category/:id/reviews", reviewHandler.ListReviews)
	services.GET("/:category/:id/reviews/me", reviewHandler.GetMyReview, authMiddleware.Authenticate)
	services.POST("/:category/:id/reviews", reviewHandler.SubmitReview, authMiddleware.Authenticate, writeLimiter.Limit)

	services.POST("/:category/:id/orders", orderHandler.CreateOrder, authMiddleware.Authenticate, writeLimiter.Limit)
}
