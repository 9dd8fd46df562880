package usecase

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"altanzam/internal/domain/entity"
	"altanzam/internal/domain/repository"
	"altanzam/pkg/logger"
)

const (
	citiesCacheKey     = "reference:cities"
	bannersCacheKey    = "reference:banners"
	appVersionCacheKey = "reference:app_version"
)

type ReferenceUseCase struct {
	referenceRepo repository.ReferenceRepository
	cache         Cache
	ttl           time.Duration
	group         singleflight.Group
}

// NewReferenceUseCase reads through cache when it is non-nil. Concurrent
// misses for the same key share one store read.
func NewReferenceUseCase(referenceRepo repository.ReferenceRepository, cache Cache, ttl time.Duration) *ReferenceUseCase {
	return &ReferenceUseCase{
		referenceRepo: referenceRepo,
		cache:         cache,
		ttl:           ttl,
	}
}

func (uc *ReferenceUseCase) Cities(ctx context.Context) ([]*entity.City, error) {
	return readThrough(ctx, uc, citiesCacheKey, uc.referenceRepo.ListCities)
}

func (uc *ReferenceUseCase) Banners(ctx context.Context) ([]*entity.Banner, error) {
	return readThrough(ctx, uc, bannersCacheKey, uc.referenceRepo.ListBanners)
}

func (uc *ReferenceUseCase) AppVersion(ctx context.Context) (*entity.AppVersion, error) {
	return readThrough(ctx, uc, appVersionCacheKey, uc.referenceRepo.GetAppVersion)
}

func readThrough[T any](ctx context.Context, uc *ReferenceUseCase, key string, load func(context.Context) (T, error)) (T, error) {
	if uc.cache != nil {
		var hit T
		found, err := uc.cache.Get(ctx, key, &hit)
		if err != nil {
			logger.Warn("Cache read for %s failed: %v", key, err)
		} else if found {
			return hit, nil
		}
	}

	v, err, _ := uc.group.Do(key, func() (interface{}, error) {
		value, err := load(ctx)
		if err != nil {
			return nil, err
		}
		if uc.cache != nil {
			if err := uc.cache.Set(ctx, key, value, uc.ttl); err != nil {
				logger.Warn("Cache write for %s failed: %v", key, err)
			}
		}
		return value, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
