package usecase

import (
	"context"
	"time"

	"altanzam/internal/domain/entity"
	"altanzam/internal/domain/repository"
	"altanzam/pkg/errors"
	"altanzam/pkg/logger"
	"altanzam/pkg/metrics"
)

type OrderUseCase struct {
	orderRepo repository.OrderRepository
	itemRepo  repository.ItemRepository
	userRepo  repository.UserRepository
	notifier  *Notifier
	now       func() time.Time
}

func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	notifier *Notifier,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo: orderRepo,
		itemRepo:  itemRepo,
		userRepo:  userRepo,
		notifier:  notifier,
		now:       time.Now,
	}
}

type CreateOrderInput struct {
	Category string
	ItemID   string
}

// RevealContactAndOrder creates the order, the user's notification and the
// points credit in one transaction. Contact-reveal categories disclose the
// provider's contacts on the order; the rest record a booking request.
func (uc *OrderUseCase) RevealContactAndOrder(ctx context.Context, session entity.Session, input CreateOrderInput) (*entity.Order, error) {
	if !session.Authenticated() {
		return nil, errors.AuthRequired("Please sign in to place an order")
	}

	item, err := uc.itemRepo.GetByID(ctx, input.ItemID)
	if err != nil {
		if errors.Is(err, errors.CodeNotFound) {
			return nil, err
		}
		return nil, errors.OrderCreationFailed(err)
	}

	category, ok := entity.CategoryBySlug(item.CategoryName)
	if !ok || (input.Category != "" && input.Category != item.CategoryName) {
		return nil, errors.NotFound("Service item", nil)
	}
	view := category.Map(item)

	if _, _, err := uc.userRepo.CreateIfAbsent(ctx, newUserFromSession(session, uc.now())); err != nil {
		return nil, errors.OrderCreationFailed(err)
	}

	var (
		order        *entity.Order
		notification *entity.Notification
	)

	err = uc.orderRepo.RunTransaction(ctx, func(ctx context.Context, tx repository.OrderTx) error {
		if _, err := tx.GetUser(session.UID); err != nil {
			return err
		}

		now := uc.now()
		order = buildOrder(session.UID, category, view, now)
		notification = buildOrderNotification(category, view, now)

		if err := tx.CreateOrder(order); err != nil {
			return err
		}
		if err := tx.CreateNotification(session.UID, notification); err != nil {
			return err
		}
		return tx.IncrementPoints(session.UID, entity.OrderRewardPoints, now)
	})
	if err != nil {
		logger.Error("Order transaction failed for user %s item %s: %v", session.UID, input.ItemID, err)
		return nil, errors.OrderCreationFailed(err)
	}

	metrics.OrdersCreated.WithLabelValues(string(category.ItemType)).Inc()
	logger.Info("Order %s created (%s) for user %s", order.ID, order.Status, session.UID)

	uc.notifier.Publish(session.UID, entity.TopicOrders, entity.EventCreated, order)
	uc.notifier.Deliver(ctx, session.UID, notification)

	return order, nil
}

func buildOrder(userID string, category entity.Category, view *entity.ServiceItem, now time.Time) *entity.Order {
	order := &entity.Order{
		UserID:      userID,
		ServiceType: category.ItemType,
		ServiceID:   view.ID,
		ServiceName: view.Name,
		OrderDate:   now,
		Status:      category.Flow.InitialStatus(),
		ImageURL:    view.ImageURL,
		UpdatedAt:   now,
	}
	if view.Price != "" {
		price := view.Price
		order.Amount = &price
	}
	if category.Flow == entity.FlowContactReveal {
		order.ContactInfoRevealed = true
		order.ContactPhone = view.Contact.Phone
		order.ContactWechatID = view.Contact.WechatID
		order.ContactWechatQRImageURL = view.Contact.WechatQRImageURL
	}
	return order
}

func buildOrderNotification(category entity.Category, view *entity.ServiceItem, now time.Time) *entity.Notification {
	n := &entity.Notification{
		TitleKey:       entity.NotificationBookingTitle,
		DescriptionKey: entity.NotificationBookingDescription,
		DescriptionPlaceholders: map[string]string{
			"serviceName": view.Name,
		},
		Date:     now,
		Read:     false,
		ItemType: category.ItemType,
		Link:     entity.OrdersLink,
		ImageURL: view.ImageURL,
	}

	if category.Flow == entity.FlowContactReveal {
		n.TitleKey = entity.NotificationContactRevealedTitle
		n.DescriptionKey = entity.NotificationContactRevealedDescription
		if category.ItemType == entity.ItemTypeTranslator {
			n.DescriptionKey = entity.NotificationTranslatorContactDesc
			n.DescriptionPlaceholders["phone"] = view.Contact.Phone
			n.DescriptionPlaceholders["wechatId"] = view.Contact.WechatID
		}
	}
	return n
}

func (uc *OrderUseCase) ListOrders(ctx context.Context, session entity.Session, status string, page, limit int) ([]*entity.Order, int64, error) {
	if !session.Authenticated() {
		return nil, 0, errors.AuthRequired("Please sign in to see your orders")
	}

	filter := entity.OrderStatus(status)
	if filter != "" && !filter.Valid() {
		return nil, 0, errors.Validation("Unknown order status: " + status)
	}

	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}
	return uc.orderRepo.ListByUser(ctx, session.UID, filter, limit, offset)
}

func (uc *OrderUseCase) GetOrder(ctx context.Context, session entity.Session, id string) (*entity.Order, error) {
	if !session.Authenticated() {
		return nil, errors.AuthRequired("Please sign in to see your orders")
	}

	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.UserID != session.UID && !session.IsAdmin() {
		return nil, errors.Forbidden("You do not have permission to view this order", nil)
	}
	return order, nil
}

// UpdateStatus applies a status transition. Owners may only cancel or
// complete their orders; admins may apply any legal transition.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, session entity.Session, id string, next entity.OrderStatus) (*entity.Order, error) {
	if !session.Authenticated() {
		return nil, errors.AuthRequired("Please sign in to manage your orders")
	}
	if !next.Valid() {
		return nil, errors.Validation("Unknown order status: " + string(next))
	}

	admin := session.IsAdmin()
	if !admin && next != entity.OrderStatusCancelled && next != entity.OrderStatusCompleted {
		return nil, errors.Forbidden("Orders can only be cancelled or completed", nil)
	}

	order, err := uc.orderRepo.Update(ctx, id, func(order *entity.Order) error {
		if !admin && order.UserID != session.UID {
			return errors.Forbidden("You do not have permission to update this order", nil)
		}
		if !order.Status.CanTransitionTo(next) {
			return errors.InvalidTransition(string(order.Status), string(next))
		}
		order.Status = next
		order.UpdatedAt = uc.now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notifier.Publish(order.UserID, entity.TopicOrders, entity.EventUpdated, order)
	return order, nil
}

func (uc *OrderUseCase) DeleteOrder(ctx context.Context, session entity.Session, id string) error {
	if !session.Authenticated() {
		return errors.AuthRequired("Please sign in to manage your orders")
	}

	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order.UserID != session.UID {
		return errors.Forbidden("You do not have permission to delete this order", nil)
	}

	if err := uc.orderRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.notifier.Publish(session.UID, entity.TopicOrders, entity.EventDeleted, map[string]interface{}{
		"id": id,
	})
	return nil
}
