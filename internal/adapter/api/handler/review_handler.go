package handler

import (
	"github.com/labstack/echo/v4"

	"altanzam/internal/usecase"
	"altanzam/pkg/response"
	"altanzam/pkg/utils"
)

type ReviewHandler struct {
	reviewUseCase  *usecase.ReviewUseCase
	catalogUseCase *usecase.CatalogUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase, catalogUseCase *usecase.CatalogUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase:  reviewUseCase,
		catalogUseCase: catalogUseCase,
	}
}

type submitReviewRequest struct {
	Rating  int    `json:"rating" validate:"min=1,max=10"`
	Comment string `json:"comment" validate:"max=2000"`
}

// SubmitReview returns the item's updated aggregate.
func (h *ReviewHandler) SubmitReview(c echo.Context) error {
	var req submitReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	aggregate, err := h.reviewUseCase.SubmitReview(c.Request().Context(), currentSession(c), usecase.SubmitReviewInput{
		Category: c.Param("category"),
		ItemID:   c.Param("id"),
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"average_rating":   aggregate.Average(),
		"review_count":     aggregate.ReviewCount,
		"total_rating_sum": aggregate.TotalRatingSum,
	})
}

func (h *ReviewHandler) ListReviews(c echo.Context) error {
	ctx := c.Request().Context()

	item, err := h.catalogUseCase.GetItem(ctx, c.Param("category"), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	pagination := utils.GetPaginationParams(c)
	reviews, total, err := h.reviewUseCase.ListReviews(ctx, item.ID, pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, reviews, total, pagination.Page, pagination.PageSize)
}

func (h *ReviewHandler) GetMyReview(c echo.Context) error {
	ctx := c.Request().Context()

	item, err := h.catalogUseCase.GetItem(ctx, c.Param("category"), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.GetMyReview(ctx, currentSession(c), item.ID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, review)
}
