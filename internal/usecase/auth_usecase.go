package usecase

import (
	"context"
	"strings"
	"time"
	"unicode"

	"altanzam/internal/domain/entity"
	"altanzam/internal/domain/repository"
	"altanzam/pkg/errors"
	"altanzam/pkg/logger"
)

const minPasswordLength = 8

type AuthUseCase struct {
	userRepo repository.UserRepository
	identity IdentityProvider
	now      func() time.Time
}

func NewAuthUseCase(userRepo repository.UserRepository, identity IdentityProvider) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		identity: identity,
		now:      time.Now,
	}
}

type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
}

type AuthResult struct {
	User  *entity.User `json:"user"`
	Token *AuthToken   `json:"token"`
}

// ValidatePassword enforces at least eight characters with an upper case
// letter, a lower case letter and a digit.
func ValidatePassword(password string) bool {
	if len(password) < minPasswordLength {
		return false
	}
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if email == "" {
		return nil, errors.Validation("Email is required")
	}
	if !ValidatePassword(input.Password) {
		return nil, errors.Validation("Password must be at least 8 characters and contain upper case, lower case and a digit")
	}

	uid, err := uc.identity.CreateUser(ctx, email, input.Password, strings.TrimSpace(input.DisplayName))
	if err != nil {
		if _, ok := errors.As(err); ok {
			return nil, err
		}
		return nil, errors.Internal("Failed to create user in authentication provider", err)
	}

	now := uc.now()
	user, _, err := uc.userRepo.CreateIfAbsent(ctx, &entity.User{
		ID:          uid,
		Email:       email,
		DisplayName: strings.TrimSpace(input.DisplayName),
		FCMTokens:   []string{},
		Role:        entity.RoleUser,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, errors.Internal("Failed to create user record", err)
	}

	token, err := uc.identity.SignInWithEmailPassword(ctx, email, input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	logger.Info("Registered user %s", uid)
	return &AuthResult{User: user, Token: token}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	token, err := uc.identity.SignInWithEmailPassword(ctx, email, password)
	if err != nil {
		logger.Debug("Login failed for %s: %v", email, err)
		return nil, errors.Unauthorized("Invalid email or password", err)
	}

	now := uc.now()
	user, _, err := uc.userRepo.CreateIfAbsent(ctx, &entity.User{
		ID:        token.UID,
		Email:     email,
		FCMTokens: []string{},
		Role:      entity.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, Token: token}, nil
}

// ChangePassword re-authenticates with the current password before setting
// the new one.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, session entity.Session, currentPassword, newPassword string) error {
	if !session.Authenticated() {
		return errors.AuthRequired("Please sign in")
	}
	if !ValidatePassword(newPassword) {
		return errors.Validation("Password must be at least 8 characters and contain upper case, lower case and a digit")
	}
	if session.Email == "" {
		return errors.BadRequest("Account has no email password sign-in", nil)
	}

	if _, err := uc.identity.SignInWithEmailPassword(ctx, session.Email, currentPassword); err != nil {
		return errors.Unauthorized("Current password is incorrect", err)
	}

	if err := uc.identity.UpdateUserPassword(ctx, session.UID, newPassword); err != nil {
		return errors.Internal("Failed to update password", err)
	}
	return nil
}
