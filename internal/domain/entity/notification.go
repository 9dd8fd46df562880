package entity

import "time"

// Localization keys; the client owns the string tables.
const (
	NotificationContactRevealedTitle       = "notifications.orderContactRevealed.title"
	NotificationContactRevealedDescription = "notifications.orderContactRevealed.description"
	NotificationTranslatorContactDesc      = "notifications.translatorContactRevealed.description"
	NotificationBookingTitle               = "notifications.orderBooked.title"
	NotificationBookingDescription         = "notifications.orderBooked.description"

	OrdersLink = "/orders"
)

type Notification struct {
	ID                      string            `json:"id" firestore:"-"`
	TitleKey                string            `json:"title_key" firestore:"titleKey"`
	DescriptionKey          string            `json:"description_key" firestore:"descriptionKey"`
	DescriptionPlaceholders map[string]string `json:"description_placeholders,omitempty" firestore:"descriptionPlaceholders,omitempty"`
	Date                    time.Time         `json:"date" firestore:"date"`
	Read                    bool              `json:"read" firestore:"read"`
	ItemType                ItemType          `json:"item_type,omitempty" firestore:"itemType,omitempty"`
	Link                    string            `json:"link,omitempty" firestore:"link,omitempty"`
	ImageURL                string            `json:"image_url,omitempty" firestore:"imageUrl,omitempty"`
	IsGlobal                bool              `json:"is_global" firestore:"isGlobal"`
}

// PushData flattens the notification into an FCM data payload.
func (n *Notification) PushData() map[string]string {
	data := map[string]string{
		"notificationId": n.ID,
		"titleKey":       n.TitleKey,
		"descriptionKey": n.DescriptionKey,
		"link":           n.Link,
		"itemType":       string(n.ItemType),
	}
	if n.ImageURL != "" {
		data["imageUrl"] = n.ImageURL
	}
	for k, v := range n.DescriptionPlaceholders {
		data["placeholder."+k] = v
	}
	return data
}
