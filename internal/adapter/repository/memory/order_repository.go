package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"altanzam/internal/domain/entity"
	"altanzam/internal/domain/repository"
	"altanzam/pkg/errors"
)

type orderRepository struct {
	store *Store
}

func NewOrderRepository(store *Store) repository.OrderRepository {
	return &orderRepository{store: store}
}

type orderTx struct {
	store *Store
	buf   *txBuffer
}

func (tx *orderTx) GetUser(userID string) (*entity.User, error) {
	user, ok := tx.store.users[userID]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return copyUser(user), nil
}

func (tx *orderTx) CreateOrder(order *entity.Order) error {
	order.ID = uuid.New().String()
	cp := *order
	tx.buf.add(func() {
		tx.store.orders[cp.ID] = &cp
	})
	return nil
}

func (tx *orderTx) CreateNotification(userID string, n *entity.Notification) error {
	n.ID = uuid.New().String()
	cp := copyNotification(n)
	tx.buf.add(func() {
		byID, ok := tx.store.notifications[userID]
		if !ok {
			byID = make(map[string]*entity.Notification)
			tx.store.notifications[userID] = byID
		}
		byID[cp.ID] = cp
	})
	return nil
}

func (tx *orderTx) IncrementPoints(userID string, points int, at time.Time) error {
	if _, ok := tx.store.users[userID]; !ok {
		return errors.NotFound("User", nil)
	}
	tx.buf.add(func() {
		user := tx.store.users[userID]
		user.Points += points
		user.UpdatedAt = at
	})
	return nil
}

func (r *orderRepository) RunTransaction(ctx context.Context, fn func(ctx context.Context, tx repository.OrderTx) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	buf := &txBuffer{}
	if err := fn(ctx, &orderTx{store: r.store, buf: buf}); err != nil {
		return err
	}
	buf.commit()
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	order, ok := r.store.orders[id]
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}
	cp := *order
	return &cp, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID string, status entity.OrderStatus, limit, offset int) ([]*entity.Order, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var orders []*entity.Order
	for _, order := range r.store.orders {
		if order.UserID != userID {
			continue
		}
		if status != "" && order.Status != status {
			continue
		}
		cp := *order
		orders = append(orders, &cp)
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].OrderDate.After(orders[j].OrderDate)
	})

	return window(orders, limit, offset), int64(len(orders)), nil
}

func (r *orderRepository) Update(ctx context.Context, id string, mutate func(order *entity.Order) error) (*entity.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.orders[id]
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}

	cp := *stored
	if err := mutate(&cp); err != nil {
		return nil, err
	}
	r.store.orders[id] = &cp

	out := cp
	return &out, nil
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.orders[id]; !ok {
		return errors.NotFound("Order", nil)
	}
	delete(r.store.orders, id)
	return nil
}
