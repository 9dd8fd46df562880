package memory

import (
	"context"
	"sort"

	"altanzam/internal/domain/entity"
	"altanzam/internal/domain/repository"
	"altanzam/pkg/errors"
)

type savedItemRepository struct {
	store *Store
}

func NewSavedItemRepository(store *Store) repository.SavedItemRepository {
	return &savedItemRepository{store: store}
}

func (r *savedItemRepository) Save(ctx context.Context, userID string, item *entity.SavedItem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	byID, ok := r.store.saved[userID]
	if !ok {
		byID = make(map[string]*entity.SavedItem)
		r.store.saved[userID] = byID
	}
	cp := *item
	byID[item.ItemID] = &cp
	return nil
}

func (r *savedItemRepository) Remove(ctx context.Context, userID, itemID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.saved[userID][itemID]; !ok {
		return errors.NotFound("Saved item", nil)
	}
	delete(r.store.saved[userID], itemID)
	return nil
}

func (r *savedItemRepository) Exists(ctx context.Context, userID, itemID string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	_, ok := r.store.saved[userID][itemID]
	return ok, nil
}

func (r *savedItemRepository) List(ctx context.Context, userID string, limit, offset int) ([]*entity.SavedItem, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	list := make([]*entity.SavedItem, 0, len(r.store.saved[userID]))
	for _, item := range r.store.saved[userID] {
		cp := *item
		list = append(list, &cp)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].SavedAt.After(list[j].SavedAt)
	})

	return window(list, limit, offset), int64(len(list)), nil
}
