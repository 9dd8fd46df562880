package memory

import (
	"context"
	"sort"

	"altanzam/internal/domain/entity"
	"altanzam/internal/domain/repository"
	"altanzam/pkg/errors"
)

type referenceRepository struct {
	store *Store
}

func NewReferenceRepository(store *Store) repository.ReferenceRepository {
	return &referenceRepository{store: store}
}

func (r *referenceRepository) ListCities(ctx context.Context) ([]*entity.City, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	cities := make([]*entity.City, 0, len(r.store.cities))
	for _, c := range r.store.cities {
		cp := *c
		cities = append(cities, &cp)
	}
	sort.SliceStable(cities, func(i, j int) bool { return cities[i].Order < cities[j].Order })
	return cities, nil
}

func (r *referenceRepository) ListBanners(ctx context.Context) ([]*entity.Banner, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	banners := make([]*entity.Banner, 0, len(r.store.banners))
	for _, b := range r.store.banners {
		if !b.Active {
			continue
		}
		cp := *b
		banners = append(banners, &cp)
	}
	sort.SliceStable(banners, func(i, j int) bool { return banners[i].Order < banners[j].Order })
	return banners, nil
}

func (r *referenceRepository) GetAppVersion(ctx context.Context) (*entity.AppVersion, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.appVersion == nil {
		return nil, errors.NotFound("App version", nil)
	}
	cp := *r.store.appVersion
	return &cp, nil
}
