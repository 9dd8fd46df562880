package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"altanzam/internal/domain/entity"
	"altanzam/internal/domain/repository"
	"altanzam/pkg/errors"
)

type firestoreNotificationRepository struct {
	client *firestore.Client
}

func NewFirestoreNotificationRepository(client *firestore.Client) repository.NotificationRepository {
	return &firestoreNotificationRepository{
		client: client,
	}
}

func (r *firestoreNotificationRepository) userCollection(userID string) *firestore.CollectionRef {
	return r.client.Collection(usersCollection).Doc(userID).Collection(notificationsCollection)
}

func (r *firestoreNotificationRepository) list(ctx context.Context, query firestore.Query, limit int, global bool) ([]*entity.Notification, error) {
	query = query.OrderBy("date", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	var list []*entity.Notification
	err := collect(query.Documents(ctx), func(doc *firestore.DocumentSnapshot) error {
		var n entity.Notification
		if err := doc.DataTo(&n); err != nil {
			return err
		}
		n.ID = doc.Ref.ID
		n.IsGlobal = global
		list = append(list, &n)
		return nil
	})
	if err != nil {
		return nil, errors.Internal("Failed to list notifications", err)
	}
	return list, nil
}

func (r *firestoreNotificationRepository) get(ctx context.Context, ref *firestore.DocumentRef, global bool) (*entity.Notification, error) {
	doc, err := ref.Get(ctx)
	if err != nil {
		return nil, storeError(err, "Notification", "get notification", ref.ID)
	}

	var n entity.Notification
	if err := doc.DataTo(&n); err != nil {
		return nil, errors.Internal("Failed to parse notification data", err)
	}
	n.ID = doc.Ref.ID
	n.IsGlobal = global
	return &n, nil
}

func (r *firestoreNotificationRepository) CreateForUser(ctx context.Context, userID string, n *entity.Notification) error {
	ref := r.userCollection(userID).NewDoc()
	n.ID = ref.ID
	if _, err := ref.Create(ctx, n); err != nil {
		return errors.Internal("Failed to create notification", err)
	}
	return nil
}

func (r *firestoreNotificationRepository) GetForUser(ctx context.Context, userID, id string) (*entity.Notification, error) {
	return r.get(ctx, r.userCollection(userID).Doc(id), false)
}

func (r *firestoreNotificationRepository) ListForUser(ctx context.Context, userID string, limit int) ([]*entity.Notification, error) {
	return r.list(ctx, r.userCollection(userID).Query, limit, false)
}

func (r *firestoreNotificationRepository) MarkRead(ctx context.Context, userID, id string) error {
	_, err := r.userCollection(userID).Doc(id).Update(ctx, []firestore.Update{
		{Path: "read", Value: true},
	})
	if err != nil {
		return storeError(err, "Notification", "mark notification read", id)
	}
	return nil
}

func (r *firestoreNotificationRepository) Delete(ctx context.Context, userID, id string) error {
	_, err := r.userCollection(userID).Doc(id).Delete(ctx, firestore.Exists)
	if err != nil {
		return storeError(err, "Notification", "delete notification", id)
	}
	return nil
}

func (r *firestoreNotificationRepository) CreateGlobal(ctx context.Context, n *entity.Notification) error {
	ref := r.client.Collection(notificationsCollection).NewDoc()
	n.ID = ref.ID
	n.IsGlobal = true
	if _, err := ref.Create(ctx, n); err != nil {
		return errors.Internal("Failed to create global notification", err)
	}
	return nil
}

func (r *firestoreNotificationRepository) GetGlobal(ctx context.Context, id string) (*entity.Notification, error) {
	return r.get(ctx, r.client.Collection(notificationsCollection).Doc(id), true)
}

func (r *firestoreNotificationRepository) ListGlobal(ctx context.Context, limit int) ([]*entity.Notification, error) {
	return r.list(ctx, r.client.Collection(notificationsCollection).Query, limit, true)
}

func (r *firestoreNotificationRepository) MarkGlobalRead(ctx context.Context, userID, id string) error {
	if _, err := r.GetGlobal(ctx, id); err != nil {
		return err
	}

	ref := r.client.Collection(usersCollection).Doc(userID).Collection(readGlobalsCollection).Doc(id)
	if _, err := ref.Set(ctx, map[string]interface{}{"readAt": time.Now()}); err != nil {
		return errors.Internal("Failed to mark global notification read", err)
	}
	return nil
}

func (r *firestoreNotificationRepository) ReadGlobalIDs(ctx context.Context, userID string) (map[string]bool, error) {
	query := r.client.Collection(usersCollection).Doc(userID).Collection(readGlobalsCollection).Select()

	ids := make(map[string]bool)
	err := collect(query.Documents(ctx), func(doc *firestore.DocumentSnapshot) error {
		ids[doc.Ref.ID] = true
		return nil
	})
	if err != nil {
		return nil, errors.Internal("Failed to read global notification state", err)
	}
	return ids, nil
}
