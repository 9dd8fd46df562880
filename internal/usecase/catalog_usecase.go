package usecase

import (
	"context"
	"strings"

	"altanzam/internal/domain/entity"
	"altanzam/internal/domain/repository"
	"altanzam/pkg/errors"
)

const (
	ViewCarousel = "carousel"
	ViewGrid     = "grid"

	carouselLimit = 8
	gridLimit     = 60
	maxListLimit  = 100
)

type CatalogUseCase struct {
	itemRepo repository.ItemRepository
}

func NewCatalogUseCase(itemRepo repository.ItemRepository) *CatalogUseCase {
	return &CatalogUseCase{
		itemRepo: itemRepo,
	}
}

type ListItemsInput struct {
	Category string
	City     string
	Search   string
	View     string
	Limit    int
}

func (uc *CatalogUseCase) Categories() []entity.Category {
	return entity.Categories()
}

// ListItems queries a category, then narrows it by city and search term in
// memory. Carousels show the best rated items first.
func (uc *CatalogUseCase) ListItems(ctx context.Context, input ListItemsInput) ([]*entity.ServiceItem, error) {
	category, ok := entity.CategoryBySlug(input.Category)
	if !ok {
		return nil, errors.Validation("Unknown category: " + input.Category)
	}

	limit := input.Limit
	if limit <= 0 {
		limit = gridLimit
		if input.View == ViewCarousel {
			limit = carouselLimit
		}
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	// City can live under any of the category's city keys, so it is
	// matched on the mapped view rather than in the store query.
	city := strings.TrimSpace(input.City)
	if strings.EqualFold(city, "all") {
		city = ""
	}

	items, err := uc.itemRepo.ListByCategory(ctx, category.Slug, nil)
	if err != nil {
		return nil, err
	}

	views := make([]*entity.ServiceItem, 0, len(items))
	for _, item := range items {
		view := category.Map(item)
		if city != "" && !strings.EqualFold(view.City, city) {
			continue
		}
		if view.Matches(input.Search) {
			views = append(views, view)
		}
	}

	if input.View == ViewCarousel {
		entity.SortServiceItems(views)
	}

	if len(views) > limit {
		views = views[:limit]
	}

	return views, nil
}

// GetItem loads one item and checks it belongs to the category.
func (uc *CatalogUseCase) GetItem(ctx context.Context, categorySlug, id string) (*entity.ServiceItem, error) {
	category, ok := entity.CategoryBySlug(categorySlug)
	if !ok {
		return nil, errors.Validation("Unknown category: " + categorySlug)
	}

	item, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.CategoryName != category.Slug {
		return nil, errors.NotFound("Service item", nil)
	}

	return category.Map(item), nil
}
