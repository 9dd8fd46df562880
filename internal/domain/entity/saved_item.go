package entity

import (
	"time"
)

// SavedItem is a user's bookmark: a snapshot of the item's display fields at
// save time.
type SavedItem struct {
	ItemID        string    `json:"item_id" firestore:"itemId"`
	Category      string    `json:"category" firestore:"categoryName"`
	ItemType      ItemType  `json:"item_type" firestore:"itemType"`
	Name          string    `json:"name" firestore:"name"`
	Description   string    `json:"description,omitempty" firestore:"description,omitempty"`
	City          string    `json:"city,omitempty" firestore:"city,omitempty"`
	ImageURL      string    `json:"image_url,omitempty" firestore:"imageUrl,omitempty"`
	Price         string    `json:"price,omitempty" firestore:"price,omitempty"`
	AverageRating *float64  `json:"average_rating" firestore:"averageRating"`
	SavedAt       time.Time `json:"saved_at" firestore:"savedAt"`
}

func NewSavedItem(view *ServiceItem, savedAt time.Time) *SavedItem {
	return &SavedItem{
		ItemID:        view.ID,
		Category:      view.Category,
		ItemType:      view.ItemType,
		Name:          view.Name,
		Description:   view.Description,
		City:          view.City,
		ImageURL:      view.ImageURL,
		Price:         view.Price,
		AverageRating: view.AverageRating,
		SavedAt:       savedAt,
	}
}
