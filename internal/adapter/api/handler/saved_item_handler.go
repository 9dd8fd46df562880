package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"altanzam/internal/usecase"
	"altanzam/pkg/response"
	"altanzam/pkg/utils"
)

type SavedItemHandler struct {
	savedItemUseCase *usecase.SavedItemUseCase
}

func NewSavedItemHandler(savedItemUseCase *usecase.SavedItemUseCase) *SavedItemHandler {
	return &SavedItemHandler{
		savedItemUseCase: savedItemUseCase,
	}
}

func (h *SavedItemHandler) ListSavedItems(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	items, total, err := h.savedItemUseCase.ListItems(c.Request().Context(), currentSession(c), pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, items, total, pagination.Page, pagination.PageSize)
}

func (h *SavedItemHandler) SaveItem(c echo.Context) error {
	saved, err := h.savedItemUseCase.SaveItem(c.Request().Context(), currentSession(c), c.Param("category"), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, saved)
}

func (h *SavedItemHandler) RemoveItem(c echo.Context) error {
	if err := h.savedItemUseCase.RemoveItem(c.Request().Context(), currentSession(c), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
