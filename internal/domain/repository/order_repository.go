package repository

import (
	"context"
	"time"

	"altanzam/internal/domain/entity"
)

// OrderTx is the view of the store inside an order transaction.
type OrderTx interface {
	GetUser(userID string) (*entity.User, error)
	// CreateOrder assigns order.ID.
	CreateOrder(order *entity.Order) error
	// CreateNotification assigns n.ID.
	CreateNotification(userID string, n *entity.Notification) error
	// IncrementPoints adds points and stamps the user updated at at.
	IncrementPoints(userID string, points int, at time.Time) error
}

type OrderRepository interface {
	RunTransaction(ctx context.Context, fn func(ctx context.Context, tx OrderTx) error) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	// ListByUser returns orders newest first. An empty status matches all.
	ListByUser(ctx context.Context, userID string, status entity.OrderStatus, limit, offset int) ([]*entity.Order, int64, error)
	// Update reads the order, applies mutate and writes it back atomically.
	// mutate owns every field, UpdatedAt included.
	Update(ctx context.Context, id string, mutate func(order *entity.Order) error) (*entity.Order, error)
	Delete(ctx context.Context, id string) error
}
