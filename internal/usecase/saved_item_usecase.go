package usecase

import (
	"context"
	"time"

	"altanzam/internal/domain/entity"
	"altanzam/internal/domain/repository"
	"altanzam/pkg/errors"
)

type SavedItemUseCase struct {
	savedRepo repository.SavedItemRepository
	catalog   *CatalogUseCase
	notifier  *Notifier
	now       func() time.Time
}

func NewSavedItemUseCase(savedRepo repository.SavedItemRepository, catalog *CatalogUseCase, notifier *Notifier) *SavedItemUseCase {
	return &SavedItemUseCase{
		savedRepo: savedRepo,
		catalog:   catalog,
		notifier:  notifier,
		now:       time.Now,
	}
}

// SaveItem bookmarks an item with a snapshot of its display fields. Saving
// again refreshes the snapshot.
func (uc *SavedItemUseCase) SaveItem(ctx context.Context, session entity.Session, category, itemID string) (*entity.SavedItem, error) {
	if !session.Authenticated() {
		return nil, errors.AuthRequired("Please sign in to save items")
	}

	view, err := uc.catalog.GetItem(ctx, category, itemID)
	if err != nil {
		return nil, err
	}

	saved := entity.NewSavedItem(view, uc.now())
	if err := uc.savedRepo.Save(ctx, session.UID, saved); err != nil {
		return nil, err
	}

	uc.notifier.Publish(session.UID, entity.TopicSavedItems, entity.EventCreated, saved)
	return saved, nil
}

func (uc *SavedItemUseCase) RemoveItem(ctx context.Context, session entity.Session, itemID string) error {
	if !session.Authenticated() {
		return errors.AuthRequired("Please sign in to manage saved items")
	}

	if err := uc.savedRepo.Remove(ctx, session.UID, itemID); err != nil {
		return err
	}

	uc.notifier.Publish(session.UID, entity.TopicSavedItems, entity.EventDeleted, map[string]interface{}{
		"item_id": itemID,
	})
	return nil
}

func (uc *SavedItemUseCase) ListItems(ctx context.Context, session entity.Session, page, limit int) ([]*entity.SavedItem, int64, error) {
	if !session.Authenticated() {
		return nil, 0, errors.AuthRequired("Please sign in to see saved items")
	}

	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}
	return uc.savedRepo.List(ctx, session.UID, limit, offset)
}

// IsSaved is false for guests.
func (uc *SavedItemUseCase) IsSaved(ctx context.Context, session entity.Session, itemID string) (bool, error) {
	if !session.Authenticated() {
		return false, nil
	}
	return uc.savedRepo.Exists(ctx, session.UID, itemID)
}
