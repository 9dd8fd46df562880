package repository

import (
	"context"

	"altanzam/internal/domain/entity"
)

type SavedItemRepository interface {
	Save(ctx context.Context, userID string, item *entity.SavedItem) error
	Remove(ctx context.Context, userID, itemID string) error
	Exists(ctx context.Context, userID, itemID string) (bool, error)
	// List returns saved items newest first.
	List(ctx context.Context, userID string, limit, offset int) ([]*entity.SavedItem, int64, error)
}
