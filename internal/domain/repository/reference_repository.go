package repository

import (
	"context"

	"altanzam/internal/domain/entity"
)

type ReferenceRepository interface {
	ListCities(ctx context.Context) ([]*entity.City, error)
	// ListBanners returns active banners in display order.
	ListBanners(ctx context.Context) ([]*entity.Banner, error)
	GetAppVersion(ctx context.Context) (*entity.AppVersion, error)
}
