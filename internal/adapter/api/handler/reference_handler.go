package handler

import (
	"github.com/labstack/echo/v4"

	"altanzam/internal/usecase"
	"altanzam/pkg/response"
)

type ReferenceHandler struct {
	referenceUseCase *usecase.ReferenceUseCase
}

func NewReferenceHandler(referenceUseCase *usecase.ReferenceUseCase) *ReferenceHandler {
	return &ReferenceHandler{
		referenceUseCase: referenceUseCase,
	}
}

func (h *ReferenceHandler) ListCities(c echo.Context) error {
	cities, err := h.referenceUseCase.Cities(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, cities)
}

func (h *ReferenceHandler) ListBanners(c echo.Context) error {
	banners, err := h.referenceUseCase.Banners(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, banners)
}

func (h *ReferenceHandler) GetAppVersion(c echo.Context) error {
	version, err := h.referenceUseCase.AppVersion(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, version)
}
