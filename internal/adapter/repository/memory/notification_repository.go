package memory

import (
	"context"

	"github.com/google/uuid"

	"altanzam/internal/domain/entity"
	"altanzam/internal/domain/repository"
	"altanzam/pkg/errors"
)

type notificationRepository struct {
	store *Store
}

func NewNotificationRepository(store *Store) repository.NotificationRepository {
	return &notificationRepository{store: store}
}

func (r *notificationRepository) CreateForUser(ctx context.Context, userID string, n *entity.Notification) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	byID, ok := r.store.notifications[userID]
	if !ok {
		byID = make(map[string]*entity.Notification)
		r.store.notifications[userID] = byID
	}
	byID[n.ID] = copyNotification(n)
	return nil
}

func (r *notificationRepository) GetForUser(ctx context.Context, userID, id string) (*entity.Notification, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	n, ok := r.store.notifications[userID][id]
	if !ok {
		return nil, errors.NotFound("Notification", nil)
	}
	return copyNotification(n), nil
}

func (r *notificationRepository) ListForUser(ctx context.Context, userID string, limit int) ([]*entity.Notification, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	list := make([]*entity.Notification, 0, len(r.store.notifications[userID]))
	for _, n := range r.store.notifications[userID] {
		list = append(list, copyNotification(n))
	}
	sortNotifications(list)
	return window(list, limit, 0), nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, userID, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	n, ok := r.store.notifications[userID][id]
	if !ok {
		return errors.NotFound("Notification", nil)
	}
	n.Read = true
	return nil
}

func (r *notificationRepository) Delete(ctx context.Context, userID, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.notifications[userID][id]; !ok {
		return errors.NotFound("Notification", nil)
	}
	delete(r.store.notifications[userID], id)
	return nil
}

func (r *notificationRepository) CreateGlobal(ctx context.Context, n *entity.Notification) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	n.IsGlobal = true
	r.store.globals[n.ID] = copyNotification(n)
	return nil
}

func (r *notificationRepository) GetGlobal(ctx context.Context, id string) (*entity.Notification, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	n, ok := r.store.globals[id]
	if !ok {
		return nil, errors.NotFound("Notification", nil)
	}
	return copyNotification(n), nil
}

func (r *notificationRepository) ListGlobal(ctx context.Context, limit int) ([]*entity.Notification, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	list := make([]*entity.Notification, 0, len(r.store.globals))
	for _, n := range r.store.globals {
		list = append(list, copyNotification(n))
	}
	sortNotifications(list)
	return window(list, limit, 0), nil
}

func (r *notificationRepository) MarkGlobalRead(ctx context.Context, userID, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.globals[id]; !ok {
		return errors.NotFound("Notification", nil)
	}
	read, ok := r.store.readGlobals[userID]
	if !ok {
		read = make(map[string]bool)
		r.store.readGlobals[userID] = read
	}
	read[id] = true
	return nil
}

func (r *notificationRepository) ReadGlobalIDs(ctx context.Context, userID string) (map[string]bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	ids := make(map[string]bool, len(r.store.readGlobals[userID]))
	for id := range r.store.readGlobals[userID] {
		ids[id] = true
	}
	return ids, nil
}
