package entity

import (
	"time"
)

// Review is one user's rating of an item, stored under the item keyed by the
// user id so each user has at most one.
type Review struct {
	ItemID       string    `json:"item_id" firestore:"itemId"`
	ItemType     ItemType  `json:"item_type" firestore:"itemType"`
	UserID       string    `json:"user_id" firestore:"userId"`
	UserName     string    `json:"user_name" firestore:"userName"`
	UserPhotoURL string    `json:"user_photo_url,omitempty" firestore:"userPhotoUrl"`
	Rating       int       `json:"rating" firestore:"rating"` // 1-10
	Comment      string    `json:"comment" firestore:"comment"`
	CreatedAt    time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt    time.Time `json:"updated_at" firestore:"updatedAt"`
}
