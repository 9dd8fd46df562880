package usecase

import (
	"context"
	"time"
)

// AuthToken is what a successful password sign-in returns.
type AuthToken struct {
	UID          string `json:"uid"`
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

type IdentityProvider interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	SignInWithEmailPassword(ctx context.Context, email, password string) (*AuthToken, error)
	UpdateUserPassword(ctx context.Context, uid, newPassword string) error
	// UpdateUserProfile mirrors profile fields into the identity record. Nil
	// values are left alone.
	UpdateUserProfile(ctx context.Context, uid string, displayName, photoURL *string) error
}

type PushSender interface {
	// SendData delivers a data message to every token and returns the tokens
	// the push service reported as no longer registered.
	SendData(ctx context.Context, tokens []string, data map[string]string) (unregistered []string, err error)
}

// EventPublisher fans events out to live subscriptions.
type EventPublisher interface {
	Publish(userID, topic, eventType string, data interface{})
	Broadcast(topic, eventType string, data interface{})
}

type Cache interface {
	// Get decodes the cached value into dst. found is false on a miss.
	Get(ctx context.Context, key string, dst interface{}) (found bool, err error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}
