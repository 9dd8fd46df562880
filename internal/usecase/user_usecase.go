package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"altanzam/internal/domain/entity"
	"altanzam/internal/domain/repository"
	"altanzam/internal/domain/service"
	"altanzam/pkg/errors"
	"altanzam/pkg/logger"
)

var allowedPhotoTypes = []string{"image/jpeg", "image/png", "image/webp"}

type UserUseCase struct {
	userRepo       repository.UserRepository
	identity       IdentityProvider
	files          service.FileUploadService
	maxUploadBytes int64
	now            func() time.Time
}

// NewUserUseCase accepts a nil files service when uploads are not configured.
func NewUserUseCase(
	userRepo repository.UserRepository,
	identity IdentityProvider,
	files service.FileUploadService,
	maxUploadBytes int64,
) *UserUseCase {
	return &UserUseCase{
		userRepo:       userRepo,
		identity:       identity,
		files:          files,
		maxUploadBytes: maxUploadBytes,
		now:            time.Now,
	}
}

func newUserFromSession(session entity.Session, now time.Time) *entity.User {
	role := session.Role
	if role == "" {
		role = entity.RoleUser
	}
	return &entity.User{
		ID:          session.UID,
		Email:       session.Email,
		DisplayName: session.DisplayName,
		PhotoURL:    session.PhotoURL,
		FCMTokens:   []string{},
		Points:      0,
		Role:        role,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// EnsureProfile returns the caller's profile, creating it on first use.
func (uc *UserUseCase) EnsureProfile(ctx context.Context, session entity.Session) (*entity.User, error) {
	if !session.Authenticated() {
		return nil, errors.AuthRequired("Please sign in")
	}

	user, created, err := uc.userRepo.CreateIfAbsent(ctx, newUserFromSession(session, uc.now()))
	if err != nil {
		return nil, err
	}
	if created {
		logger.Info("Created profile for user %s", session.UID)
	}
	return user, nil
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, session entity.Session, update entity.ProfileUpdate) (*entity.User, error) {
	if !session.Authenticated() {
		return nil, errors.AuthRequired("Please sign in")
	}
	if update.Empty() {
		return nil, errors.Validation("No profile fields to update")
	}
	if update.DisplayName != nil {
		name := strings.TrimSpace(*update.DisplayName)
		if name == "" {
			return nil, errors.Validation("Display name cannot be empty")
		}
		update.DisplayName = &name
	}

	if _, err := uc.EnsureProfile(ctx, session); err != nil {
		return nil, err
	}
	if err := uc.userRepo.UpdateProfile(ctx, session.UID, update); err != nil {
		return nil, err
	}

	uc.mirrorIdentity(ctx, session.UID, update.DisplayName, update.PhotoURL)

	return uc.userRepo.GetByID(ctx, session.UID)
}

// mirrorIdentity keeps the identity record's name and photo in step with the
// profile. Failures are logged only.
func (uc *UserUseCase) mirrorIdentity(ctx context.Context, uid string, displayName, photoURL *string) {
	if uc.identity == nil || (displayName == nil && photoURL == nil) {
		return
	}
	if err := uc.identity.UpdateUserProfile(ctx, uid, displayName, photoURL); err != nil {
		logger.Warn("Failed to mirror profile of user %s to identity provider: %v", uid, err)
	}
}

// UploadPhoto checks size and sniffed content type, stores the image and
// points the profile photo at it.
func (uc *UserUseCase) UploadPhoto(ctx context.Context, session entity.Session, file io.Reader, size int64) (*entity.User, error) {
	if !session.Authenticated() {
		return nil, errors.AuthRequired("Please sign in")
	}
	if uc.files == nil {
		return nil, errors.UploadError("File uploads are not configured", nil)
	}

	maxMB := uc.maxUploadBytes / (1024 * 1024)
	if size > uc.maxUploadBytes {
		return nil, errors.UploadError(fmt.Sprintf("File is larger than %d MB", maxMB), nil)
	}

	data, err := io.ReadAll(io.LimitReader(file, uc.maxUploadBytes+1))
	if err != nil {
		return nil, errors.UploadError("Failed to read upload", err)
	}
	if int64(len(data)) > uc.maxUploadBytes {
		return nil, errors.UploadError(fmt.Sprintf("File is larger than %d MB", maxMB), nil)
	}
	if len(data) == 0 {
		return nil, errors.UploadError("File is empty", nil)
	}

	mtype := mimetype.Detect(data)
	if !mimetype.EqualsAny(mtype.String(), allowedPhotoTypes...) {
		return nil, errors.UploadError("Only JPEG, PNG or WebP images are allowed", nil)
	}

	if _, err := uc.EnsureProfile(ctx, session); err != nil {
		return nil, err
	}

	url, err := uc.files.UploadFile(ctx, bytes.NewReader(data), mtype.String(), "public/avatars/"+session.UID)
	if err != nil {
		return nil, errors.UploadError("Failed to upload photo", err)
	}

	return uc.UpdateProfile(ctx, session, entity.ProfileUpdate{PhotoURL: &url})
}

func (uc *UserUseCase) RegisterPushToken(ctx context.Context, session entity.Session, token string) error {
	if strings.TrimSpace(token) == "" {
		return errors.Validation("Push token is required")
	}
	if _, err := uc.EnsureProfile(ctx, session); err != nil {
		return err
	}
	return uc.userRepo.AddFCMToken(ctx, session.UID, token)
}

func (uc *UserUseCase) RemovePushToken(ctx context.Context, session entity.Session, token string) error {
	if !session.Authenticated() {
		return errors.AuthRequired("Please sign in")
	}
	return uc.userRepo.RemoveFCMTokens(ctx, session.UID, token)
}
