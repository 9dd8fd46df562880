package repository

import (
	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"altanzam/pkg/errors"
	"altanzam/pkg/logger"
)

const (
	entriesCollection       = "entries"
	reviewsCollection       = "reviews"
	ordersCollection        = "orders"
	usersCollection         = "users"
	notificationsCollection = "notifications"
	readGlobalsCollection   = "readGlobalNotifications"
	savedItemsCollection    = "savedItems"
	citiesCollection        = "cities"
	bannersCollection       = "banners"
	appVersionCollection    = "app_version"
	appVersionDoc           = "live"
)

// storeError maps a Firestore error to an AppError, keeping NotFound visible
// to callers.
func storeError(err error, resource, operation, docID string) error {
	if status.Code(err) == codes.NotFound {
		return errors.NotFound(resource, err)
	}
	logger.LogStoreError(operation, docID, err)
	return errors.Internal("Failed to "+operation, err)
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// collect drains iter, decoding every document with decode.
func collect(iter *firestore.DocumentIterator, decode func(doc *firestore.DocumentSnapshot) error) error {
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return err
		}
		if err := decode(doc); err != nil {
			return err
		}
	}
}
