package handler

import (
	"github.com/labstack/echo/v4"

	"altanzam/internal/adapter/api/middleware"
	"altanzam/internal/domain/entity"
	"altanzam/internal/usecase"
)

var (
	authHandler         *AuthHandler
	userHandler         *UserHandler
	catalogHandler      *CatalogHandler
	reviewHandler       *ReviewHandler
	orderHandler        *OrderHandler
	notificationHandler *NotificationHandler
	savedItemHandler    *SavedItemHandler
	referenceHandler    *ReferenceHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	catalogUseCase *usecase.CatalogUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	orderUseCase *usecase.OrderUseCase,
	notificationUseCase *usecase.NotificationUseCase,
	savedItemUseCase *usecase.SavedItemUseCase,
	referenceUseCase *usecase.ReferenceUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase, authUseCase)
	catalogHandler = NewCatalogHandler(catalogUseCase, savedItemUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase, catalogUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
	notificationHandler = NewNotificationHandler(notificationUseCase)
	savedItemHandler = NewSavedItemHandler(savedItemUseCase)
	referenceHandler = NewReferenceHandler(referenceUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetCatalogHandler() *CatalogHandler {
	return catalogHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetNotificationHandler() *NotificationHandler {
	return notificationHandler
}

func GetSavedItemHandler() *SavedItemHandler {
	return savedItemHandler
}

func GetReferenceHandler() *ReferenceHandler {
	return referenceHandler
}

func currentSession(c echo.Context) entity.Session {
	return middleware.GetSession(c)
}
