package repository

import (
	"context"

	"altanzam/internal/domain/entity"
)

type NotificationRepository interface {
	// Per-user notifications
	CreateForUser(ctx context.Context, userID string, n *entity.Notification) error
	GetForUser(ctx context.Context, userID, id string) (*entity.Notification, error)
	ListForUser(ctx context.Context, userID string, limit int) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, userID, id string) error
	Delete(ctx context.Context, userID, id string) error

	// Global notifications
	CreateGlobal(ctx context.Context, n *entity.Notification) error
	GetGlobal(ctx context.Context, id string) (*entity.Notification, error)
	ListGlobal(ctx context.Context, limit int) ([]*entity.Notification, error)
	MarkGlobalRead(ctx context.Context, userID, id string) error
	ReadGlobalIDs(ctx context.Context, userID string) (map[string]bool, error)
}
