package repository

import (
	"context"

	"cloud.google.com/go/firestore"

	"altanzam/internal/domain/entity"
	"altanzam/internal/domain/repository"
	"altanzam/pkg/errors"
)

type firestoreSavedItemRepository struct {
	client *firestore.Client
}

func NewFirestoreSavedItemRepository(client *firestore.Client) repository.SavedItemRepository {
	return &firestoreSavedItemRepository{
		client: client,
	}
}

func (r *firestoreSavedItemRepository) collection(userID string) *firestore.CollectionRef {
	return r.client.Collection(usersCollection).Doc(userID).Collection(savedItemsCollection)
}

func (r *firestoreSavedItemRepository) Save(ctx context.Context, userID string, item *entity.SavedItem) error {
	if _, err := r.collection(userID).Doc(item.ItemID).Set(ctx, item); err != nil {
		return errors.Internal("Failed to save item", err)
	}
	return nil
}

func (r *firestoreSavedItemRepository) Remove(ctx context.Context, userID, itemID string) error {
	_, err := r.collection(userID).Doc(itemID).Delete(ctx, firestore.Exists)
	if err != nil {
		return storeError(err, "Saved item", "remove saved item", itemID)
	}
	return nil
}

func (r *firestoreSavedItemRepository) Exists(ctx context.Context, userID, itemID string) (bool, error) {
	_, err := r.collection(userID).Doc(itemID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, errors.Internal("Failed to check saved item", err)
	}
	return true, nil
}

func (r *firestoreSavedItemRepository) List(ctx context.Context, userID string, limit, offset int) ([]*entity.SavedItem, int64, error) {
	query := r.collection(userID).OrderBy("savedAt", firestore.Desc)

	// Get total count
	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count saved items", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var items []*entity.SavedItem
	err = collect(query.Documents(ctx), func(doc *firestore.DocumentSnapshot) error {
		var item entity.SavedItem
		if err := doc.DataTo(&item); err != nil {
			return err
		}
		items = append(items, &item)
		return nil
	})
	if err != nil {
		return nil, 0, errors.Internal("Failed to list saved items", err)
	}

	return items, total, nil
}
