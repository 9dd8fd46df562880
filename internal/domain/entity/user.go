package entity

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID          string    `json:"uid" firestore:"uid"`
	Email       string    `json:"email" firestore:"email"`
	DisplayName string    `json:"display_name" firestore:"displayName"`
	PhotoURL    string    `json:"photo_url,omitempty" firestore:"photoURL"`
	PhoneNumber string    `json:"phone_number,omitempty" firestore:"phoneNumber"`
	FirstName   string    `json:"first_name,omitempty" firestore:"firstName"`
	LastName    string    `json:"last_name,omitempty" firestore:"lastName"`
	DateOfBirth string    `json:"date_of_birth,omitempty" firestore:"dateOfBirth"` // YYYY-MM-DD
	Gender      string    `json:"gender,omitempty" firestore:"gender"`
	Address     string    `json:"address,omitempty" firestore:"address"`
	FCMTokens   []string  `json:"-" firestore:"fcmTokens"`
	Points      int       `json:"points" firestore:"points"`
	Role        string    `json:"role" firestore:"role"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}

// Session is the signed-in caller, built from the verified ID token and
// passed explicitly into use cases.
type Session struct {
	UID         string
	Email       string
	DisplayName string
	PhotoURL    string
	Role        string
}

func (s Session) Authenticated() bool {
	return s.UID != ""
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// ProfileUpdate carries the user-editable profile fields. Nil fields are left
// untouched.
type ProfileUpdate struct {
	DisplayName *string `json:"display_name" validate:"omitempty,min=1,max=80"`
	PhotoURL    *string `json:"photo_url" validate:"omitempty,url"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=32"`
	FirstName   *string `json:"first_name" validate:"omitempty,max=80"`
	LastName    *string `json:"last_name" validate:"omitempty,max=80"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender      *string `json:"gender" validate:"omitempty,oneof=male female other"`
	Address     *string `json:"address" validate:"omitempty,max=255"`
}

func (p ProfileUpdate) Empty() bool {
	return p.DisplayName == nil && p.PhotoURL == nil && p.PhoneNumber == nil &&
		p.FirstName == nil && p.LastName == nil && p.DateOfBirth == nil &&
		p.Gender == nil && p.Address == nil
}

// ApplyTo copies the set fields onto u.
func (p ProfileUpdate) ApplyTo(u *User) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&u.DisplayName, p.DisplayName)
	set(&u.PhotoURL, p.PhotoURL)
	set(&u.PhoneNumber, p.PhoneNumber)
	set(&u.FirstName, p.FirstName)
	set(&u.LastName, p.LastName)
	set(&u.DateOfBirth, p.DateOfBirth)
	set(&u.Gender, p.Gender)
	set(&u.Address, p.Address)
}
