package repository

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"

	"altanzam/internal/domain/entity"
	"altanzam/internal/domain/repository"
	"altanzam/pkg/errors"
	"altanzam/pkg/metrics"
)

type firestoreItemRepository struct {
	client *firestore.Client
}

func NewFirestoreItemRepository(client *firestore.Client) repository.ItemRepository {
	return &firestoreItemRepository{
		client: client,
	}
}

func (r *firestoreItemRepository) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	var item entity.Item
	err := metrics.RecordStoreTime("item.get", func() error {
		doc, err := r.client.Collection(entriesCollection).Doc(id).Get(ctx)
		if err != nil {
			return storeError(err, "Service item", "get service item", id)
		}
		if err := doc.DataTo(&item); err != nil {
			return errors.Internal("Failed to parse service item data", err)
		}
		item.ID = doc.Ref.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *firestoreItemRepository) ListByCategory(ctx context.Context, category string, filter map[string]interface{}) ([]*entity.Item, error) {
	// Equality filters only, so no composite index is needed. Ordering is
	// done after the read.
	query := r.client.Collection(entriesCollection).Where("categoryName", "==", category)
	for path, value := range filter {
		query = query.Where(path, "==", value)
	}

	var items []*entity.Item
	err := metrics.RecordStoreTime("item.list", func() error {
		return collect(query.Documents(ctx), func(doc *firestore.DocumentSnapshot) error {
			var item entity.Item
			if err := doc.DataTo(&item); err != nil {
				return err
			}
			item.ID = doc.Ref.ID
			items = append(items, &item)
			return nil
		})
	})
	if err != nil {
		return nil, errors.Internal("Failed to list service items", err)
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	return items, nil
}
