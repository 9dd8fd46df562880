package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"altanzam/internal/domain/entity"
	"altanzam/internal/domain/repository"
	"altanzam/pkg/errors"
)

func TestReviewTransactionDiscardsWritesOnError(t *testing.T) {
	store := NewStore()
	store.PutItem(&entity.Item{ID: "i1", CategoryName: "hotels"})
	repo := NewReviewRepository(store)

	err := repo.RunTransaction(context.Background(), func(ctx context.Context, tx repository.ReviewTx) error {
		require.NoError(t, tx.SetReview(&entity.Review{ItemID: "i1", UserID: "u1", Rating: 5}))
		require.NoError(t, tx.SetItemAggregate("i1", entity.RatingAggregate{AverageRating: 5, ReviewCount: 1, TotalRatingSum: 5}))
		return fmt.Errorf("boom")
	})
	require.Error(t, err)

	_, err = repo.GetByUser(context.Background(), "i1", "u1")
	assert.True(t, errors.Is(err, errors.CodeNotFound))

	item, err := NewItemRepository(store).GetByID(context.Background(), "i1")
	require.NoError(t, err)
	assert.Equal(t, 0, item.ReviewCount)
}

func TestReviewTransactionCommits(t *testing.T) {
	store := NewStore()
	store.PutItem(&entity.Item{ID: "i1", CategoryName: "hotels"})
	repo := NewReviewRepository(store)

	err := repo.RunTransaction(context.Background(), func(ctx context.Context, tx repository.ReviewTx) error {
		prior, err := tx.GetReview("i1", "u1")
		require.NoError(t, err)
		assert.Nil(t, prior)

		if err := tx.SetReview(&entity.Review{ItemID: "i1", UserID: "u1", Rating: 5}); err != nil {
			return err
		}
		return tx.SetItemAggregate("i1", entity.RatingAggregate{AverageRating: 5, ReviewCount: 1, TotalRatingSum: 5})
	})
	require.NoError(t, err)

	review, err := repo.GetByUser(context.Background(), "i1", "u1")
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)

	item, _ := NewItemRepository(store).GetByID(context.Background(), "i1")
	assert.Equal(t, 5, item.TotalRatingSum)
}

func TestItemListByCategoryFilter(t *testing.T) {
	store := NewStore()
	store.PutItem(&entity.Item{ID: "a", CategoryName: "hotels", Data: map[string]interface{}{"city": "Beijing"}})
	store.PutItem(&entity.Item{ID: "b", CategoryName: "hotels", Data: map[string]interface{}{"city": "Erenhot"}})
	store.PutItem(&entity.Item{ID: "c", CategoryName: "markets", Data: map[string]interface{}{"city": "Beijing"}})
	repo := NewItemRepository(store)

	items, err := repo.ListByCategory(context.Background(), "hotels", nil)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = repo.ListByCategory(context.Background(), "hotels", map[string]interface{}{"data.city": "Beijing"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "a", items[0].ID)
}

func TestNotificationsNewestFirst(t *testing.T) {
	store := NewStore()
	repo := NewNotificationRepository(store)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.CreateForUser(ctx, "u1", &entity.Notification{ID: "old", Date: now.Add(-time.Hour)}))
	require.NoError(t, repo.CreateForUser(ctx, "u1", &entity.Notification{ID: "new", Date: now}))

	list, err := repo.ListForUser(ctx, "u1", 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "new", list[0].ID)

	require.NoError(t, repo.CreateGlobal(ctx, &entity.Notification{ID: "g1", Date: now}))
	require.NoError(t, repo.MarkGlobalRead(ctx, "u1", "g1"))
	read, err := repo.ReadGlobalIDs(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, read["g1"])
}

func TestUserFCMTokens(t *testing.T) {
	store := NewStore()
	repo := NewUserRepository(store)
	ctx := context.Background()

	_, created, err := repo.CreateIfAbsent(ctx, &entity.User{ID: "u1"})
	require.NoError(t, err)
	assert.True(t, created)

	_, created, err = repo.CreateIfAbsent(ctx, &entity.User{ID: "u1"})
	require.NoError(t, err)
	assert.False(t, created)

	require.NoError(t, repo.AddFCMToken(ctx, "u1", "t1"))
	require.NoError(t, repo.AddFCMToken(ctx, "u1", "t1"))
	require.NoError(t, repo.AddFCMToken(ctx, "u1", "t2"))
	require.NoError(t, repo.RemoveFCMTokens(ctx, "u1", "t1"))

	user, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"t2"}, user.FCMTokens)
}
