package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"altanzam/internal/domain/entity"
	"altanzam/pkg/errors"
)

func TestListItemsFilters(t *testing.T) {
	f := newFixture()
	f.store.PutItem(&entity.Item{ID: "hotel-2", CategoryName: "hotels", Data: map[string]interface{}{
		"hotelName": "Capital Inn", "city": "Beijing", "description": "Quiet rooms",
	}})
	uc := NewCatalogUseCase(f.items)
	ctx := context.Background()

	items, err := uc.ListItems(ctx, ListItemsInput{Category: "hotels"})
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = uc.ListItems(ctx, ListItemsInput{Category: "hotels", City: "Beijing"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Capital Inn", items[0].Name)

	items, err = uc.ListItems(ctx, ListItemsInput{Category: "hotels", City: "all", Search: "BORDER"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "hotel-1", items[0].ID)

	_, err = uc.ListItems(ctx, ListItemsInput{Category: "restaurants"})
	assert.True(t, errors.Is(err, errors.CodeValidation))
}

func TestListItemsCityMatchesAnyCityKey(t *testing.T) {
	f := newFixture()
	f.store.PutItem(&entity.Item{ID: "hotel-2", CategoryName: "hotels", Data: map[string]interface{}{
		"hotelName": "Grand", "location": "Beijing",
	}})
	f.store.PutItem(&entity.Item{ID: "flight-1", CategoryName: "flights", Data: map[string]interface{}{
		"airline": "Steppe Air", "city": "Ulaanbaatar",
	}})
	uc := NewCatalogUseCase(f.items)
	ctx := context.Background()

	items, err := uc.ListItems(ctx, ListItemsInput{Category: "hotels", City: "beijing"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "hotel-2", items[0].ID)
	assert.Equal(t, "Beijing", items[0].City)

	items, err = uc.ListItems(ctx, ListItemsInput{Category: "flights", City: "Ulaanbaatar"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "flight-1", items[0].ID)

	items, err = uc.ListItems(ctx, ListItemsInput{Category: "factories", City: "Hohhot"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "factory-1", items[0].ID)
}

func TestListItemsCarouselLimit(t *testing.T) {
	f := newFixture()
	for i := 0; i < 12; i++ {
		f.store.PutItem(&entity.Item{
			ID:             fmt.Sprintf("m%d", i),
			CategoryName:   "markets",
			ReviewCount:    1,
			TotalRatingSum: i%10 + 1,
			AverageRating:  float64(i%10 + 1),
			Data:           map[string]interface{}{"name": fmt.Sprintf("Market %d", i)},
		})
	}
	uc := NewCatalogUseCase(f.items)

	items, err := uc.ListItems(context.Background(), ListItemsInput{Category: "markets", View: ViewCarousel})
	require.NoError(t, err)
	require.Len(t, items, 8)
	require.NotNil(t, items[0].AverageRating)
	assert.Equal(t, 10.0, *items[0].AverageRating)

	items, err = uc.ListItems(context.Background(), ListItemsInput{Category: "markets"})
	require.NoError(t, err)
	assert.Len(t, items, 12)

	items, err = uc.ListItems(context.Background(), ListItemsInput{Category: "markets", Limit: 3})
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestGetItem(t *testing.T) {
	f := newFixture()
	uc := NewCatalogUseCase(f.items)

	view, err := uc.GetItem(context.Background(), "translators", "translator-1")
	require.NoError(t, err)
	assert.Equal(t, "Bold Translator", view.Name)
	assert.Nil(t, view.AverageRating)

	_, err = uc.GetItem(context.Background(), "hotels", "translator-1")
	assert.True(t, errors.Is(err, errors.CodeNotFound))
}
