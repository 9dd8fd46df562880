package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"altanzam/internal/domain/entity"
	"altanzam/internal/domain/repository"
	"altanzam/pkg/errors"
	"altanzam/pkg/metrics"
)

type firestoreOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &firestoreOrderRepository{
		client: client,
	}
}

type firestoreOrderTx struct {
	client *firestore.Client
	tx     *firestore.Transaction
}

func (t *firestoreOrderTx) GetUser(userID string) (*entity.User, error) {
	doc, err := t.tx.Get(t.client.Collection(usersCollection).Doc(userID))
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("User", err)
		}
		return nil, err
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user data", err)
	}
	return &user, nil
}

func (t *firestoreOrderTx) CreateOrder(order *entity.Order) error {
	ref := t.client.Collection(ordersCollection).NewDoc()
	order.ID = ref.ID
	return t.tx.Create(ref, order)
}

func (t *firestoreOrderTx) CreateNotification(userID string, n *entity.Notification) error {
	ref := t.client.Collection(usersCollection).Doc(userID).Collection(notificationsCollection).NewDoc()
	n.ID = ref.ID
	return t.tx.Create(ref, n)
}

func (t *firestoreOrderTx) IncrementPoints(userID string, points int, at time.Time) error {
	return t.tx.Update(t.client.Collection(usersCollection).Doc(userID), []firestore.Update{
		{Path: "points", Value: firestore.Increment(points)},
		{Path: "updatedAt", Value: at},
	})
}

func (r *firestoreOrderRepository) RunTransaction(ctx context.Context, fn func(ctx context.Context, tx repository.OrderTx) error) error {
	return metrics.RecordStoreTime("order.transaction", func() error {
		return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
			return fn(ctx, &firestoreOrderTx{client: r.client, tx: tx})
		})
	})
}

func (r *firestoreOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	doc, err := r.client.Collection(ordersCollection).Doc(id).Get(ctx)
	if err != nil {
		return nil, storeError(err, "Order", "get order", id)
	}

	var order entity.Order
	if err := doc.DataTo(&order); err != nil {
		return nil, errors.Internal("Failed to parse order data", err)
	}
	order.ID = doc.Ref.ID
	return &order, nil
}

func (r *firestoreOrderRepository) ListByUser(ctx context.Context, userID string, status entity.OrderStatus, limit, offset int) ([]*entity.Order, int64, error) {
	query := r.client.Collection(ordersCollection).Where("userId", "==", userID)
	if status != "" {
		query = query.Where("status", "==", string(status))
	}
	query = query.OrderBy("orderDate", firestore.Desc)

	// Get total count
	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count orders", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var orders []*entity.Order
	err = collect(query.Documents(ctx), func(doc *firestore.DocumentSnapshot) error {
		var order entity.Order
		if err := doc.DataTo(&order); err != nil {
			return err
		}
		order.ID = doc.Ref.ID
		orders = append(orders, &order)
		return nil
	})
	if err != nil {
		return nil, 0, errors.Internal("Failed to list orders", err)
	}

	return orders, total, nil
}

func (r *firestoreOrderRepository) Update(ctx context.Context, id string, mutate func(order *entity.Order) error) (*entity.Order, error) {
	ref := r.client.Collection(ordersCollection).Doc(id)
	var updated entity.Order

	err := metrics.RecordStoreTime("order.update", func() error {
		return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
			doc, err := tx.Get(ref)
			if err != nil {
				if isNotFound(err) {
					return errors.NotFound("Order", err)
				}
				return err
			}

			var order entity.Order
			if err := doc.DataTo(&order); err != nil {
				return errors.Internal("Failed to parse order data", err)
			}
			order.ID = doc.Ref.ID

			if err := mutate(&order); err != nil {
				return err
			}

			updated = order
			return tx.Set(ref, &order)
		})
	})
	if err != nil {
		if _, ok := errors.As(err); ok {
			return nil, err
		}
		return nil, errors.Internal("Failed to update order", err)
	}

	return &updated, nil
}

func (r *firestoreOrderRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(ordersCollection).Doc(id).Delete(ctx, firestore.Exists)
	if err != nil {
		return storeError(err, "Order", "delete order", id)
	}
	return nil
}
