package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"altanzam/internal/domain/entity"
	"altanzam/internal/domain/repository"
	"altanzam/pkg/errors"
)

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

func (r *firestoreUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	doc, err := r.client.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		return nil, storeError(err, "User", "get user", id)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user data", err)
	}
	user.ID = doc.Ref.ID

	return &user, nil
}

func (r *firestoreUserRepository) CreateIfAbsent(ctx context.Context, user *entity.User) (*entity.User, bool, error) {
	_, err := r.client.Collection(usersCollection).Doc(user.ID).Create(ctx, user)
	if err == nil {
		return user, true, nil
	}
	if status.Code(err) != codes.AlreadyExists {
		return nil, false, errors.Internal("Failed to create user", err)
	}

	existing, err := r.GetByID(ctx, user.ID)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (r *firestoreUserRepository) UpdateProfile(ctx context.Context, id string, update entity.ProfileUpdate) error {
	// Only set fields are written so existing values are never blanked.
	updates := []firestore.Update{
		{Path: "updatedAt", Value: time.Now()},
	}
	add := func(path string, v *string) {
		if v != nil {
			updates = append(updates, firestore.Update{Path: path, Value: *v})
		}
	}
	add("displayName", update.DisplayName)
	add("photoURL", update.PhotoURL)
	add("phoneNumber", update.PhoneNumber)
	add("firstName", update.FirstName)
	add("lastName", update.LastName)
	add("dateOfBirth", update.DateOfBirth)
	add("gender", update.Gender)
	add("address", update.Address)

	if _, err := r.client.Collection(usersCollection).Doc(id).Update(ctx, updates); err != nil {
		return storeError(err, "User", "update user", id)
	}
	return nil
}

func (r *firestoreUserRepository) AddFCMToken(ctx context.Context, id, token string) error {
	_, err := r.client.Collection(usersCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "fcmTokens", Value: firestore.ArrayUnion(token)},
	})
	if err != nil {
		return storeError(err, "User", "add push token", id)
	}
	return nil
}

func (r *firestoreUserRepository) RemoveFCMTokens(ctx context.Context, id string, tokens ...string) error {
	if len(tokens) == 0 {
		return nil
	}

	values := make([]interface{}, len(tokens))
	for i, t := range tokens {
		values[i] = t
	}

	_, err := r.client.Collection(usersCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "fcmTokens", Value: firestore.ArrayRemove(values...)},
	})
	if err != nil {
		return storeError(err, "User", "remove push tokens", id)
	}
	return nil
}
