package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"altanzam/internal/domain/entity"
	"altanzam/internal/usecase"
	"altanzam/pkg/errors"
	"altanzam/pkg/response"
)

type CatalogHandler struct {
	catalogUseCase   *usecase.CatalogUseCase
	savedItemUseCase *usecase.SavedItemUseCase
}

func NewCatalogHandler(catalogUseCase *usecase.CatalogUseCase, savedItemUseCase *usecase.SavedItemUseCase) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase:   catalogUseCase,
		savedItemUseCase: savedItemUseCase,
	}
}

func (h *CatalogHandler) ListCategories(c echo.Context) error {
	return response.Success(c, h.catalogUseCase.Categories())
}

func (h *CatalogHandler) ListItems(c echo.Context) error {
	limit := 0
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			return response.Error(c, errors.BadRequest("Invalid limit value", nil))
		}
	}

	items, err := h.catalogUseCase.ListItems(c.Request().Context(), usecase.ListItemsInput{
		Category: c.Param("category"),
		City:     c.QueryParam("city"),
		Search:   c.QueryParam("q"),
		View:     c.QueryParam("view"),
		Limit:    limit,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, items)
}

type itemDetail struct {
	*entity.ServiceItem
	Saved bool `json:"saved"`
}

func (h *CatalogHandler) GetItem(c echo.Context) error {
	ctx := c.Request().Context()

	item, err := h.catalogUseCase.GetItem(ctx, c.Param("category"), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	saved, err := h.savedItemUseCase.IsSaved(ctx, currentSession(c), item.ID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, itemDetail{ServiceItem: item, Saved: saved})
}
