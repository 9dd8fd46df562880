package entity

import "time"

// Live subscription topics.
const (
	TopicNotifications = "notifications"
	TopicOrders        = "orders"
	TopicSavedItems    = "savedItems"
)

const (
	EventCreated = "created"
	EventUpdated = "updated"
	EventDeleted = "deleted"
)

func ValidTopic(topic string) bool {
	switch topic {
	case TopicNotifications, TopicOrders, TopicSavedItems:
		return true
	}
	return false
}

// Event is one message delivered to a live subscription.
type Event struct {
	Topic  string      `json:"topic"`
	Type   string      `json:"type"`
	Data   interface{} `json:"data"`
	SentAt time.Time   `json:"sent_at"`
}
