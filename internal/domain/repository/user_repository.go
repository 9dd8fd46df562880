package repository

import (
	"context"

	"altanzam/internal/domain/entity"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// CreateIfAbsent stores user unless a document already exists and returns
	// the stored document. created reports whether a write happened.
	CreateIfAbsent(ctx context.Context, user *entity.User) (stored *entity.User, created bool, err error)
	UpdateProfile(ctx context.Context, id string, update entity.ProfileUpdate) error
	AddFCMToken(ctx context.Context, id, token string) error
	RemoveFCMTokens(ctx context.Context, id string, tokens ...string) error
}
