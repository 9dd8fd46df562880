package repository

import (
	"context"

	"altanzam/internal/domain/entity"
)

// ReviewTx is the view of the store inside a review transaction. Every read
// must happen before the first write.
type ReviewTx interface {
	GetItem(itemID string) (*entity.Item, error)
	// GetReview returns nil without error when the user has not reviewed the item.
	GetReview(itemID, userID string) (*entity.Review, error)
	SetReview(review *entity.Review) error
	SetItemAggregate(itemID string, agg entity.RatingAggregate) error
}

type ReviewRepository interface {
	// RunTransaction runs fn atomically. If fn returns an error nothing it
	// wrote is kept.
	RunTransaction(ctx context.Context, fn func(ctx context.Context, tx ReviewTx) error) error
	ListByItem(ctx context.Context, itemID string, limit, offset int) ([]*entity.Review, int64, error)
	GetByUser(ctx context.Context, itemID, userID string) (*entity.Review, error)
}
