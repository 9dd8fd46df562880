package repository

import (
	"context"

	"cloud.google.com/go/firestore"

	"altanzam/internal/domain/entity"
	"altanzam/internal/domain/repository"
	"altanzam/pkg/errors"
	"altanzam/pkg/metrics"
)

type firestoreReviewRepository struct {
	client *firestore.Client
}

func NewFirestoreReviewRepository(client *firestore.Client) repository.ReviewRepository {
	return &firestoreReviewRepository{
		client: client,
	}
}

func (r *firestoreReviewRepository) itemRef(itemID string) *firestore.DocumentRef {
	return r.client.Collection(entriesCollection).Doc(itemID)
}

func (r *firestoreReviewRepository) reviewRef(itemID, userID string) *firestore.DocumentRef {
	return r.itemRef(itemID).Collection(reviewsCollection).Doc(userID)
}

type firestoreReviewTx struct {
	repo *firestoreReviewRepository
	tx   *firestore.Transaction
}

func (t *firestoreReviewTx) GetItem(itemID string) (*entity.Item, error) {
	doc, err := t.tx.Get(t.repo.itemRef(itemID))
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Service item document", err)
		}
		return nil, err
	}

	var item entity.Item
	if err := doc.DataTo(&item); err != nil {
		return nil, errors.Internal("Failed to parse service item data", err)
	}
	item.ID = doc.Ref.ID
	return &item, nil
}

func (t *firestoreReviewTx) GetReview(itemID, userID string) (*entity.Review, error) {
	doc, err := t.tx.Get(t.repo.reviewRef(itemID, userID))
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	var review entity.Review
	if err := doc.DataTo(&review); err != nil {
		return nil, errors.Internal("Failed to parse review data", err)
	}
	return &review, nil
}

func (t *firestoreReviewTx) SetReview(review *entity.Review) error {
	return t.tx.Set(t.repo.reviewRef(review.ItemID, review.UserID), review)
}

func (t *firestoreReviewTx) SetItemAggregate(itemID string, agg entity.RatingAggregate) error {
	return t.tx.Update(t.repo.itemRef(itemID), []firestore.Update{
		{Path: "reviewCount", Value: agg.ReviewCount},
		{Path: "totalRatingSum", Value: agg.TotalRatingSum},
		{Path: "averageRating", Value: agg.AverageRating},
	})
}

func (r *firestoreReviewRepository) RunTransaction(ctx context.Context, fn func(ctx context.Context, tx repository.ReviewTx) error) error {
	return metrics.RecordStoreTime("review.transaction", func() error {
		return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
			return fn(ctx, &firestoreReviewTx{repo: r, tx: tx})
		})
	})
}

func (r *firestoreReviewRepository) ListByItem(ctx context.Context, itemID string, limit, offset int) ([]*entity.Review, int64, error) {
	query := r.itemRef(itemID).Collection(reviewsCollection).OrderBy("updatedAt", firestore.Desc)

	// Get total count
	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count reviews", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var reviews []*entity.Review
	err = collect(query.Documents(ctx), func(doc *firestore.DocumentSnapshot) error {
		var review entity.Review
		if err := doc.DataTo(&review); err != nil {
			return err
		}
		reviews = append(reviews, &review)
		return nil
	})
	if err != nil {
		return nil, 0, errors.Internal("Failed to list reviews", err)
	}

	return reviews, total, nil
}

func (r *firestoreReviewRepository) GetByUser(ctx context.Context, itemID, userID string) (*entity.Review, error) {
	doc, err := r.reviewRef(itemID, userID).Get(ctx)
	if err != nil {
		return nil, storeError(err, "Review", "get review", itemID+"/"+userID)
	}

	var review entity.Review
	if err := doc.DataTo(&review); err != nil {
		return nil, errors.Internal("Failed to parse review data", err)
	}
	return &review, nil
}
