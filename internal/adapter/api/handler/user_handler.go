package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"altanzam/internal/domain/entity"
	"altanzam/internal/usecase"
	"altanzam/pkg/errors"
	"altanzam/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
	authUseCase *usecase.AuthUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase, authUseCase *usecase.AuthUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		authUseCase: authUseCase,
	}
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	user, err := h.userUseCase.EnsureProfile(c.Request().Context(), currentSession(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req entity.ProfileUpdate
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), currentSession(c), req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,password"`
}

func (h *UserHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.authUseCase.ChangePassword(c.Request().Context(), currentSession(c), req.CurrentPassword, req.NewPassword); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Password updated"})
}

// UploadPhoto accepts a multipart "file" field.
func (h *UserHandler) UploadPhoto(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.UploadError("No file provided", err))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.UploadError("Failed to open file", err))
	}
	defer file.Close()

	user, err := h.userUseCase.UploadPhoto(c.Request().Context(), currentSession(c), file, fileHeader.Size)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

type pushTokenRequest struct {
	Token string `json:"token" validate:"required,max=4096"`
}

func (h *UserHandler) RegisterPushToken(c echo.Context) error {
	var req pushTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.userUseCase.RegisterPushToken(c.Request().Context(), currentSession(c), req.Token); err != nil {
		return response.Error(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *UserHandler) RemovePushToken(c echo.Context) error {
	var req pushTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.userUseCase.RemovePushToken(c.Request().Context(), currentSession(c), req.Token); err != nil {
		return response.Error(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
