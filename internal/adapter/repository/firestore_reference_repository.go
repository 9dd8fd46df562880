package repository

import (
	"context"

	"cloud.google.com/go/firestore"

	"altanzam/internal/domain/entity"
	"altanzam/internal/domain/repository"
	"altanzam/pkg/errors"
)

type firestoreReferenceRepository struct {
	client *firestore.Client
}

func NewFirestoreReferenceRepository(client *firestore.Client) repository.ReferenceRepository {
	return &firestoreReferenceRepository{
		client: client,
	}
}

func (r *firestoreReferenceRepository) ListCities(ctx context.Context) ([]*entity.City, error) {
	query := r.client.Collection(citiesCollection).OrderBy("order", firestore.Asc)

	var cities []*entity.City
	err := collect(query.Documents(ctx), func(doc *firestore.DocumentSnapshot) error {
		var city entity.City
		if err := doc.DataTo(&city); err != nil {
			return err
		}
		city.ID = doc.Ref.ID
		cities = append(cities, &city)
		return nil
	})
	if err != nil {
		return nil, errors.Internal("Failed to list cities", err)
	}
	return cities, nil
}

func (r *firestoreReferenceRepository) ListBanners(ctx context.Context) ([]*entity.Banner, error) {
	query := r.client.Collection(bannersCollection).
		Where("active", "==", true).
		OrderBy("order", firestore.Asc)

	var banners []*entity.Banner
	err := collect(query.Documents(ctx), func(doc *firestore.DocumentSnapshot) error {
		var banner entity.Banner
		if err := doc.DataTo(&banner); err != nil {
			return err
		}
		banner.ID = doc.Ref.ID
		banners = append(banners, &banner)
		return nil
	})
	if err != nil {
		return nil, errors.Internal("Failed to list banners", err)
	}
	return banners, nil
}

func (r *firestoreReferenceRepository) GetAppVersion(ctx context.Context) (*entity.AppVersion, error) {
	doc, err := r.client.Collection(appVersionCollection).Doc(appVersionDoc).Get(ctx)
	if err != nil {
		return nil, storeError(err, "App version", "get app version", appVersionDoc)
	}

	var v entity.AppVersion
	if err := doc.DataTo(&v); err != nil {
		return nil, errors.Internal("Failed to parse app version data", err)
	}
	return &v, nil
}
