package repository

import (
	"context"

	"altanzam/internal/domain/entity"
)

type ItemRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	// ListByCategory returns the category's items. filter holds equality
	// constraints keyed by document path (e.g. "data.city").
	ListByCategory(ctx context.Context, category string, filter map[string]interface{}) ([]*entity.Item, error)
}
