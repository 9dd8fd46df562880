package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryBySlug(t *testing.T) {
	c, ok := CategoryBySlug("translators")
	require.True(t, ok)
	assert.Equal(t, ItemTypeTranslator, c.ItemType)
	assert.Equal(t, FlowContactReveal, c.Flow)

	c, ok = CategoryBySlug("wechat")
	require.True(t, ok)
	assert.Equal(t, ItemTypeWechatMerchant, c.ItemType)

	c, ok = CategoryBySlug("factories")
	require.True(t, ok)
	assert.Equal(t, FlowDirectBooking, c.Flow)

	_, ok = CategoryBySlug("restaurants")
	assert.False(t, ok)
}

func TestCategoryTableIsComplete(t *testing.T) {
	seen := make(map[ItemType]bool)
	for _, c := range Categories() {
		assert.False(t, seen[c.ItemType], "duplicate item type %s", c.ItemType)
		seen[c.ItemType] = true

		back, ok := CategoryForItemType(c.ItemType)
		require.True(t, ok)
		assert.Equal(t, c.Slug, back.Slug)
	}
	assert.Len(t, seen, 8)
}

func TestCategoryMapTranslator(t *testing.T) {
	c, _ := CategoryBySlug("translators")
	item := &Item{
		ID:             "t1",
		CategoryName:   "translators",
		ReviewCount:    2,
		TotalRatingSum: 17,
		AverageRating:  8.5,
		Data: map[string]interface{}{
			"name":        "Bat",
			"city":        "Beijing",
			"photoUrl":    "https://img/bat.png",
			"rate":        300,
			"phoneNumber": "+86 100",
			"wechatId":    "bat_wx",
			"languages":   []interface{}{"mn", "zh"},
		},
	}

	view := c.Map(item)

	assert.Equal(t, "Bat", view.Name)
	assert.Equal(t, "Beijing", view.City)
	assert.Equal(t, "https://img/bat.png", view.ImageURL)
	assert.Equal(t, "300", view.Price)
	assert.Equal(t, ItemTypeTranslator, view.ItemType)
	require.NotNil(t, view.AverageRating)
	assert.Equal(t, 8.5, *view.AverageRating)
	assert.Equal(t, "+86 100", view.Contact.Phone)
	assert.Equal(t, "bat_wx", view.Contact.WechatID)

	assert.Contains(t, view.Details, "languages")
	assert.NotContains(t, view.Details, "phoneNumber")
	assert.NotContains(t, view.Details, "wechatId")
}

func TestCategoryMapFallbackKeys(t *testing.T) {
	c, _ := CategoryBySlug("hotels")
	view := c.Map(&Item{ID: "h1", Data: map[string]interface{}{
		"name":      "",
		"hotelName": "Grand",
		"location":  "Erenhot",
	}})

	assert.Equal(t, "Grand", view.Name)
	assert.Equal(t, "Erenhot", view.City)
	assert.Nil(t, view.AverageRating)
	assert.Nil(t, view.Details)
}

func TestServiceItemMatches(t *testing.T) {
	view := &ServiceItem{Name: "Golden Hotel", Description: "Near the station", City: "Hohhot"}

	assert.True(t, view.Matches(""))
	assert.True(t, view.Matches("golden"))
	assert.True(t, view.Matches("STATION"))
	assert.True(t, view.Matches("hohhot"))
	assert.False(t, view.Matches("beijing"))
}

func TestSortServiceItems(t *testing.T) {
	high, low := 9.0, 4.5
	items := []*ServiceItem{
		{Name: "b"},
		{Name: "c", AverageRating: &low},
		{Name: "a"},
		{Name: "d", AverageRating: &high},
	}

	SortServiceItems(items)

	var names []string
	for _, it := range items {
		names = append(names, it.Name)
	}
	assert.Equal(t, []string{"d", "c", "a", "b"}, names)
}
