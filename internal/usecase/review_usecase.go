package usecase

import (
	"context"
	"strings"
	"time"

	"altanzam/internal/domain/entity"
	"altanzam/internal/domain/repository"
	"altanzam/pkg/errors"
	"altanzam/pkg/logger"
	"altanzam/pkg/metrics"
)

const anonymousReviewer = "Anonymous"

type ReviewUseCase struct {
	reviewRepo repository.ReviewRepository
	now        func() time.Time
}

func NewReviewUseCase(reviewRepo repository.ReviewRepository) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo: reviewRepo,
		now:        time.Now,
	}
}

type SubmitReviewInput struct {
	Category string
	ItemID   string
	Rating   int
	Comment  string
}

// SubmitReview upserts the caller's review and folds it into the item's
// rating aggregate in one transaction. A re-submission adjusts the aggregate
// by the rating difference only.
func (uc *ReviewUseCase) SubmitReview(ctx context.Context, session entity.Session, input SubmitReviewInput) (*entity.RatingAggregate, error) {
	if !session.Authenticated() {
		return nil, errors.AuthRequired("Please sign in to leave a review")
	}
	if !entity.ValidRating(input.Rating) {
		return nil, errors.Validation("Please select a rating from 1 to 10")
	}

	comment := strings.TrimSpace(input.Comment)
	userName := session.DisplayName
	if userName == "" {
		userName = anonymousReviewer
	}

	var (
		result  entity.RatingAggregate
		created bool
	)

	err := uc.reviewRepo.RunTransaction(ctx, func(ctx context.Context, tx repository.ReviewTx) error {
		item, err := tx.GetItem(input.ItemID)
		if err != nil {
			return err
		}
		if input.Category != "" && item.CategoryName != input.Category {
			return errors.NotFound("Service item document", nil)
		}

		prior, err := tx.GetReview(input.ItemID, session.UID)
		if err != nil {
			return err
		}

		now := uc.now()
		category, _ := entity.CategoryBySlug(item.CategoryName)
		review := &entity.Review{
			ItemID:       input.ItemID,
			ItemType:     category.ItemType,
			UserID:       session.UID,
			UserName:     userName,
			UserPhotoURL: session.PhotoURL,
			Rating:       input.Rating,
			Comment:      comment,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if prior != nil {
			review.CreatedAt = prior.CreatedAt
		}

		if err := tx.SetReview(review); err != nil {
			return err
		}

		result = item.Aggregate().Apply(prior, input.Rating)
		created = prior == nil

		return tx.SetItemAggregate(input.ItemID, result)
	})
	if err != nil {
		if errors.Is(err, errors.CodeNotFound) {
			return nil, err
		}
		logger.Error("Review transaction failed for item %s: %v", input.ItemID, err)
		return nil, errors.TransactionFailure("Failed to submit review", err)
	}

	outcome := "updated"
	if created {
		outcome = "created"
	}
	metrics.ReviewsSubmitted.WithLabelValues(outcome).Inc()

	return &result, nil
}

func (uc *ReviewUseCase) ListReviews(ctx context.Context, itemID string, page, limit int) ([]*entity.Review, int64, error) {
	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}
	return uc.reviewRepo.ListByItem(ctx, itemID, limit, offset)
}

func (uc *ReviewUseCase) GetMyReview(ctx context.Context, session entity.Session, itemID string) (*entity.Review, error) {
	if !session.Authenticated() {
		return nil, errors.AuthRequired("Please sign in to see your review")
	}
	return uc.reviewRepo.GetByUser(ctx, itemID, session.UID)
}
