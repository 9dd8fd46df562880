package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"altanzam/internal/usecase"
	"altanzam/pkg/response"
)

type NotificationHandler struct {
	notificationUseCase *usecase.NotificationUseCase
}

func NewNotificationHandler(notificationUseCase *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
	}
}

func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	list, err := h.notificationUseCase.ListNotifications(c.Request().Context(), currentSession(c), limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, list)
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	if err := h.notificationUseCase.MarkRead(c.Request().Context(), currentSession(c), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"read": true})
}

func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	count, err := h.notificationUseCase.MarkAllRead(c.Request().Context(), currentSession(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]int{"marked": count})
}

func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	if err := h.notificationUseCase.DeleteNotification(c.Request().Context(), currentSession(c), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *NotificationHandler) CreateGlobal(c echo.Context) error {
	var req usecase.CreateGlobalNotificationInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	notification, err := h.notificationUseCase.CreateGlobal(c.Request().Context(), currentSession(c), req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, notification)
}
