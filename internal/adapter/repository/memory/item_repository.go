package memory

import (
	"context"
	"sort"

	"altanzam/internal/domain/entity"
	"altanzam/internal/domain/repository"
	"altanzam/pkg/errors"
)

type itemRepository struct {
	store *Store
}

func NewItemRepository(store *Store) repository.ItemRepository {
	return &itemRepository{store: store}
}

func (r *itemRepository) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.items[id]
	if !ok {
		return nil, errors.NotFound("Service item", nil)
	}
	return copyItem(item), nil
}

func (r *itemRepository) ListByCategory(ctx context.Context, category string, filter map[string]interface{}) ([]*entity.Item, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var items []*entity.Item
	for _, item := range r.store.items {
		if item.CategoryName != category {
			continue
		}

		match := true
		for path, want := range filter {
			got, ok := itemField(item, path)
			if !ok || got != want {
				match = false
				break
			}
		}

		if match {
			items = append(items, copyItem(item))
		}
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	return items, nil
}
