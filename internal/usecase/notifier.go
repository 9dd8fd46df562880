package usecase

import (
	"context"

	"altanzam/internal/domain/entity"
	"altanzam/internal/domain/repository"
	"altanzam/pkg/logger"
	"altanzam/pkg/metrics"
)

// Notifier delivers committed changes to live subscribers and push devices.
// Delivery failures are logged and never returned.
type Notifier struct {
	userRepo  repository.UserRepository
	publisher EventPublisher
	push      PushSender
}

// NewNotifier accepts nil publisher or push to disable that channel.
func NewNotifier(userRepo repository.UserRepository, publisher EventPublisher, push PushSender) *Notifier {
	return &Notifier{
		userRepo:  userRepo,
		publisher: publisher,
		push:      push,
	}
}

func (n *Notifier) Publish(userID, topic, eventType string, data interface{}) {
	if n == nil || n.publisher == nil {
		return
	}
	n.publisher.Publish(userID, topic, eventType, data)
}

func (n *Notifier) Broadcast(topic, eventType string, data interface{}) {
	if n == nil || n.publisher == nil {
		return
	}
	n.publisher.Broadcast(topic, eventType, data)
}

// Deliver publishes a new per-user notification and pushes it to the user's
// registered devices. Tokens the push service rejects are pruned.
func (n *Notifier) Deliver(ctx context.Context, userID string, notification *entity.Notification) {
	n.Publish(userID, entity.TopicNotifications, entity.EventCreated, notification)

	if n == nil || n.push == nil {
		return
	}

	user, err := n.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Warn("Push skipped for user %s: %v", userID, err)
		return
	}
	if len(user.FCMTokens) == 0 {
		return
	}

	unregistered, err := n.push.SendData(ctx, user.FCMTokens, notification.PushData())
	if err != nil {
		metrics.PushesSent.WithLabelValues("failed").Inc()
		logger.Warn("Push delivery to user %s failed: %v", userID, err)
		return
	}
	metrics.PushesSent.WithLabelValues("sent").Inc()

	if len(unregistered) > 0 {
		if err := n.userRepo.RemoveFCMTokens(ctx, userID, unregistered...); err != nil {
			logger.Warn("Failed to prune %d push tokens for user %s: %v", len(unregistered), userID, err)
		}
	}
}
