package websocket

import (
	"sync"
	"time"

	"altanzam/internal/domain/entity"
	"altanzam/pkg/logger"
)

const defaultBuffer = 32

// Subscription receives events for one user on a fixed set of topics.
type Subscription struct {
	UserID string
	topics map[string]bool
	events chan entity.Event
}

// Events is closed when the subscription is cancelled.
func (s *Subscription) Events() <-chan entity.Event {
	return s.events
}

func (s *Subscription) wants(topic string) bool {
	return s.topics[topic]
}

// Hub fans events out to live subscriptions.
type Hub struct {
	mu     sync.RWMutex
	subs   map[*Subscription]struct{}
	buffer int
	now    func() time.Time
}

func NewHub() *Hub {
	return &Hub{
		subs:   make(map[*Subscription]struct{}),
		buffer: defaultBuffer,
		now:    time.Now,
	}
}

// Subscribe registers a subscription. Unknown topics are ignored; with no
// valid topics the subscription gets every topic. cancel is safe to call more
// than once.
func (h *Hub) Subscribe(userID string, topics ...string) (*Subscription, func()) {
	sub := &Subscription{
		UserID: userID,
		topics: make(map[string]bool),
		events: make(chan entity.Event, h.buffer),
	}
	for _, t := range topics {
		if entity.ValidTopic(t) {
			sub.topics[t] = true
		}
	}
	if len(sub.topics) == 0 {
		for _, t := range []string{entity.TopicNotifications, entity.TopicOrders, entity.TopicSavedItems} {
			sub.topics[t] = true
		}
	}

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()
	logger.Debug("Subscription opened for %s", userID)

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, sub)
			close(sub.events)
			h.mu.Unlock()
			logger.Debug("Subscription closed for %s", userID)
		})
	}
	return sub, cancel
}

// Publish delivers an event to the user's subscriptions on topic.
func (h *Hub) Publish(userID, topic, eventType string, data interface{}) {
	h.dispatch(func(s *Subscription) bool { return s.UserID == userID }, topic, eventType, data)
}

// Broadcast delivers an event to every subscription on topic.
func (h *Hub) Broadcast(topic, eventType string, data interface{}) {
	h.dispatch(func(*Subscription) bool { return true }, topic, eventType, data)
}

func (h *Hub) dispatch(match func(*Subscription) bool, topic, eventType string, data interface{}) {
	event := entity.Event{
		Topic:  topic,
		Type:   eventType,
		Data:   data,
		SentAt: h.now(),
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subs {
		if !sub.wants(topic) || !match(sub) {
			continue
		}
		select {
		case sub.events <- event:
		default:
			logger.Warn("Dropping %s.%s event for slow subscriber %s", topic, eventType, sub.UserID)
		}
	}
}

// Count reports the number of open subscriptions.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
