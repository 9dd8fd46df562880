package memory

import (
	"context"
	"time"

	"altanzam/internal/domain/entity"
	"altanzam/internal/domain/repository"
	"altanzam/pkg/errors"
)

type userRepository struct {
	store *Store
}

func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return copyUser(user), nil
}

func (r *userRepository) CreateIfAbsent(ctx context.Context, user *entity.User) (*entity.User, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if existing, ok := r.store.users[user.ID]; ok {
		return copyUser(existing), false, nil
	}
	r.store.users[user.ID] = copyUser(user)
	return copyUser(user), true, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, id string, update entity.ProfileUpdate) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.users[id]
	if !ok {
		return errors.NotFound("User", nil)
	}
	update.ApplyTo(user)
	user.UpdatedAt = time.Now()
	return nil
}

func (r *userRepository) AddFCMToken(ctx context.Context, id, token string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.users[id]
	if !ok {
		return errors.NotFound("User", nil)
	}
	for _, t := range user.FCMTokens {
		if t == token {
			return nil
		}
	}
	user.FCMTokens = append(user.FCMTokens, token)
	return nil
}

func (r *userRepository) RemoveFCMTokens(ctx context.Context, id string, tokens ...string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.users[id]
	if !ok {
		return errors.NotFound("User", nil)
	}

	drop := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		drop[t] = true
	}
	kept := user.FCMTokens[:0]
	for _, t := range user.FCMTokens {
		if !drop[t] {
			kept = append(kept, t)
		}
	}
	user.FCMTokens = kept
	return nil
}
