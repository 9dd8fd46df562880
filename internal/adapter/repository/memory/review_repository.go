package memory

import (
	"context"
	"sort"

	"altanzam/internal/domain/entity"
	"altanzam/internal/domain/repository"
	"altanzam/pkg/errors"
)

type reviewRepository struct {
	store *Store
}

func NewReviewRepository(store *Store) repository.ReviewRepository {
	return &reviewRepository{store: store}
}

type reviewTx struct {
	store *Store
	buf   *txBuffer
}

func (tx *reviewTx) GetItem(itemID string) (*entity.Item, error) {
	item, ok := tx.store.items[itemID]
	if !ok {
		return nil, errors.NotFound("Service item document", nil)
	}
	return copyItem(item), nil
}

func (tx *reviewTx) GetReview(itemID, userID string) (*entity.Review, error) {
	review, ok := tx.store.reviews[itemID][userID]
	if !ok {
		return nil, nil
	}
	cp := *review
	return &cp, nil
}

func (tx *reviewTx) SetReview(review *entity.Review) error {
	cp := *review
	tx.buf.add(func() {
		byUser, ok := tx.store.reviews[cp.ItemID]
		if !ok {
			byUser = make(map[string]*entity.Review)
			tx.store.reviews[cp.ItemID] = byUser
		}
		byUser[cp.UserID] = &cp
	})
	return nil
}

func (tx *reviewTx) SetItemAggregate(itemID string, agg entity.RatingAggregate) error {
	tx.buf.add(func() {
		item, ok := tx.store.items[itemID]
		if !ok {
			return
		}
		item.ReviewCount = agg.ReviewCount
		item.TotalRatingSum = agg.TotalRatingSum
		item.AverageRating = agg.AverageRating
	})
	return nil
}

func (r *reviewRepository) RunTransaction(ctx context.Context, fn func(ctx context.Context, tx repository.ReviewTx) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	buf := &txBuffer{}
	if err := fn(ctx, &reviewTx{store: r.store, buf: buf}); err != nil {
		return err
	}
	buf.commit()
	return nil
}

func (r *reviewRepository) ListByItem(ctx context.Context, itemID string, limit, offset int) ([]*entity.Review, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	reviews := make([]*entity.Review, 0, len(r.store.reviews[itemID]))
	for _, review := range r.store.reviews[itemID] {
		cp := *review
		reviews = append(reviews, &cp)
	}

	sort.Slice(reviews, func(i, j int) bool {
		return reviews[i].UpdatedAt.After(reviews[j].UpdatedAt)
	})

	return window(reviews, limit, offset), int64(len(reviews)), nil
}

func (r *reviewRepository) GetByUser(ctx context.Context, itemID, userID string) (*entity.Review, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	review, ok := r.store.reviews[itemID][userID]
	if !ok {
		return nil, errors.NotFound("Review", nil)
	}
	cp := *review
	return &cp, nil
}
