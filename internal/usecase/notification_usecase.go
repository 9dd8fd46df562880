package usecase

import (
	"context"
	"sort"
	"time"

	"altanzam/internal/domain/entity"
	"altanzam/internal/domain/repository"
	"altanzam/pkg/errors"
)

const defaultNotificationLimit = 50

type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
	notifier         *Notifier
	now              func() time.Time
}

func NewNotificationUseCase(notificationRepo repository.NotificationRepository, notifier *Notifier) *NotificationUseCase {
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
		notifier:         notifier,
		now:              time.Now,
	}
}

type NotificationList struct {
	Items       []*entity.Notification `json:"items"`
	UnreadCount int                    `json:"unread_count"`
}

// ListNotifications merges the user's own notifications with global ones,
// newest first. Global read state comes from the user's read markers.
func (uc *NotificationUseCase) ListNotifications(ctx context.Context, session entity.Session, limit int) (*NotificationList, error) {
	if !session.Authenticated() {
		return nil, errors.AuthRequired("Please sign in to see notifications")
	}
	if limit <= 0 || limit > defaultNotificationLimit {
		limit = defaultNotificationLimit
	}

	own, err := uc.notificationRepo.ListForUser(ctx, session.UID, limit)
	if err != nil {
		return nil, err
	}
	global, err := uc.notificationRepo.ListGlobal(ctx, limit)
	if err != nil {
		return nil, err
	}
	readGlobal, err := uc.notificationRepo.ReadGlobalIDs(ctx, session.UID)
	if err != nil {
		return nil, err
	}

	for _, n := range global {
		n.IsGlobal = true
		n.Read = readGlobal[n.ID]
	}

	merged := append(own, global...)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.After(merged[j].Date)
	})
	if len(merged) > limit {
		merged = merged[:limit]
	}

	list := &NotificationList{Items: merged}
	for _, n := range merged {
		if !n.Read {
			list.UnreadCount++
		}
	}
	return list, nil
}

func (uc *NotificationUseCase) MarkRead(ctx context.Context, session entity.Session, id string) error {
	if !session.Authenticated() {
		return errors.AuthRequired("Please sign in to manage notifications")
	}

	err := uc.notificationRepo.MarkRead(ctx, session.UID, id)
	if errors.Is(err, errors.CodeNotFound) {
		err = uc.notificationRepo.MarkGlobalRead(ctx, session.UID, id)
	}
	if err != nil {
		return err
	}

	uc.notifier.Publish(session.UID, entity.TopicNotifications, entity.EventUpdated, map[string]interface{}{
		"id":   id,
		"read": true,
	})
	return nil
}

// MarkAllRead marks every listed notification read and returns how many
// changed.
func (uc *NotificationUseCase) MarkAllRead(ctx context.Context, session entity.Session) (int, error) {
	list, err := uc.ListNotifications(ctx, session, defaultNotificationLimit)
	if err != nil {
		return 0, err
	}

	marked := 0
	for _, n := range list.Items {
		if n.Read {
			continue
		}
		if n.IsGlobal {
			err = uc.notificationRepo.MarkGlobalRead(ctx, session.UID, n.ID)
		} else {
			err = uc.notificationRepo.MarkRead(ctx, session.UID, n.ID)
		}
		if err != nil {
			return marked, err
		}
		marked++
	}

	if marked > 0 {
		uc.notifier.Publish(session.UID, entity.TopicNotifications, entity.EventUpdated, map[string]interface{}{
			"all_read": true,
		})
	}
	return marked, nil
}

// DeleteNotification removes one of the user's own notifications. Global
// notifications cannot be deleted by users.
func (uc *NotificationUseCase) DeleteNotification(ctx context.Context, session entity.Session, id string) error {
	if !session.Authenticated() {
		return errors.AuthRequired("Please sign in to manage notifications")
	}

	if _, err := uc.notificationRepo.GetForUser(ctx, session.UID, id); err != nil {
		if !errors.Is(err, errors.CodeNotFound) {
			return err
		}
		if _, gerr := uc.notificationRepo.GetGlobal(ctx, id); gerr == nil {
			return errors.Forbidden("Global notifications cannot be deleted", nil)
		}
		return err
	}

	if err := uc.notificationRepo.Delete(ctx, session.UID, id); err != nil {
		return err
	}

	uc.notifier.Publish(session.UID, entity.TopicNotifications, entity.EventDeleted, map[string]interface{}{
		"id": id,
	})
	return nil
}

type CreateGlobalNotificationInput struct {
	TitleKey                string            `json:"title_key" validate:"required"`
	DescriptionKey          string            `json:"description_key" validate:"required"`
	DescriptionPlaceholders map[string]string `json:"description_placeholders"`
	ItemType                entity.ItemType   `json:"item_type"`
	Link                    string            `json:"link"`
	ImageURL                string            `json:"image_url" validate:"omitempty,url"`
}

func (uc *NotificationUseCase) CreateGlobal(ctx context.Context, session entity.Session, input CreateGlobalNotificationInput) (*entity.Notification, error) {
	if !session.Authenticated() {
		return nil, errors.AuthRequired("Please sign in")
	}
	if !session.IsAdmin() {
		return nil, errors.Forbidden("Admin access required", nil)
	}
	if input.TitleKey == "" || input.DescriptionKey == "" {
		return nil, errors.Validation("Title and description keys are required")
	}

	n := &entity.Notification{
		TitleKey:                input.TitleKey,
		DescriptionKey:          input.DescriptionKey,
		DescriptionPlaceholders: input.DescriptionPlaceholders,
		Date:                    uc.now(),
		ItemType:                input.ItemType,
		Link:                    input.Link,
		ImageURL:                input.ImageURL,
		IsGlobal:                true,
	}
	if err := uc.notificationRepo.CreateGlobal(ctx, n); err != nil {
		return nil, err
	}

	uc.notifier.Broadcast(entity.TopicNotifications, entity.EventCreated, n)
	return n, nil
}
