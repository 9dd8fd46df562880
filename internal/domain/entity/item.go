package entity

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

type ItemType string

const (
	ItemTypeTranslator     ItemType = "translator"
	ItemTypeHotel          ItemType = "hotel"
	ItemTypeMarket         ItemType = "market"
	ItemTypeFactory        ItemType = "factory"
	ItemTypeHospital       ItemType = "hospital"
	ItemTypeEmbassy        ItemType = "embassy"
	ItemTypeWechatMerchant ItemType = "wechat_merchant"
	ItemTypeFlight         ItemType = "flight"
)

// OrderFlow decides what an order against a category looks like.
type OrderFlow string

const (
	// FlowContactReveal discloses the provider's phone/WeChat on purchase.
	FlowContactReveal OrderFlow = "contact_reveal"
	// FlowDirectBooking records a booking request the provider confirms later.
	FlowDirectBooking OrderFlow = "direct_booking"
)

// Item is a listing document in the entries collection. Category-specific
// fields live in Data; the rating aggregate sits at the top level.
type Item struct {
	ID             string                 `json:"id" firestore:"-"`
	CategoryName   string                 `json:"category_name" firestore:"categoryName"`
	Data           map[string]interface{} `json:"data" firestore:"data"`
	ReviewCount    int                    `json:"review_count" firestore:"reviewCount"`
	TotalRatingSum int                    `json:"total_rating_sum" firestore:"totalRatingSum"`
	AverageRating  float64                `json:"average_rating" firestore:"averageRating"`
	CreatedAt      time.Time              `json:"created_at" firestore:"createdAt"`
}

func (i *Item) Aggregate() RatingAggregate {
	return RatingAggregate{
		AverageRating:  i.AverageRating,
		ReviewCount:    i.ReviewCount,
		TotalRatingSum: i.TotalRatingSum,
	}
}

// FieldMap lists, per view field, the data keys consulted in order. The first
// non-empty value wins.
type FieldMap struct {
	Name        []string
	Description []string
	City        []string
	Image       []string
	Price       []string
	Phone       []string
	WechatID    []string
	WechatQR    []string
}

type Category struct {
	Slug     string    `json:"slug"`
	ItemType ItemType  `json:"item_type"`
	Flow     OrderFlow `json:"flow"`
	Fields   FieldMap  `json:"-"`
}

func fields(name, city, image, price []string) FieldMap {
	return FieldMap{
		Name:        name,
		Description: []string{"description", "about"},
		City:        city,
		Image:       image,
		Price:       price,
		Phone:       []string{"phoneNumber", "phone", "contactPhone"},
		WechatID:    []string{"wechatId", "wechat"},
		WechatQR:    []string{"wechatQrImageUrl", "wechatQrUrl"},
	}
}

var categories = []Category{
	{Slug: "translators", ItemType: ItemTypeTranslator, Flow: FlowContactReveal,
		Fields: fields([]string{"name"}, []string{"city"}, []string{"photoUrl", "imageUrl"}, []string{"rate", "price"})},
	{Slug: "hotels", ItemType: ItemTypeHotel, Flow: FlowContactReveal,
		Fields: fields([]string{"name", "hotelName"}, []string{"city", "location"}, []string{"imageUrl", "mainImageUrl"}, []string{"price", "pricePerNight"})},
	{Slug: "wechat", ItemType: ItemTypeWechatMerchant, Flow: FlowContactReveal,
		Fields: fields([]string{"name", "merchantName"}, []string{"city"}, []string{"imageUrl", "avatarUrl"}, []string{"price"})},
	{Slug: "markets", ItemType: ItemTypeMarket, Flow: FlowDirectBooking,
		Fields: fields([]string{"name"}, []string{"city", "location"}, []string{"imageUrl"}, []string{"price"})},
	{Slug: "factories", ItemType: ItemTypeFactory, Flow: FlowDirectBooking,
		Fields: fields([]string{"name", "factoryName"}, []string{"city", "location"}, []string{"imageUrl"}, []string{"price", "minOrder"})},
	{Slug: "hospitals", ItemType: ItemTypeHospital, Flow: FlowDirectBooking,
		Fields: fields([]string{"name"}, []string{"city", "location"}, []string{"imageUrl"}, []string{"price", "consultationFee"})},
	{Slug: "embassies", ItemType: ItemTypeEmbassy, Flow: FlowDirectBooking,
		Fields: fields([]string{"name"}, []string{"city", "location"}, []string{"imageUrl"}, []string{"price", "serviceFee"})},
	{Slug: "flights", ItemType: ItemTypeFlight, Flow: FlowDirectBooking,
		Fields: fields([]string{"name", "airline"}, []string{"fromCity", "city"}, []string{"imageUrl", "airlineLogoUrl"}, []string{"price"})},
}

func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func CategoryBySlug(slug string) (Category, bool) {
	for _, c := range categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return Category{}, false
}

func CategoryForItemType(t ItemType) (Category, bool) {
	for _, c := range categories {
		if c.ItemType == t {
			return c, true
		}
	}
	return Category{}, false
}

// Contact holds the provider details an order discloses. It never appears in
// public listings.
type Contact struct {
	Phone            string `json:"phone,omitempty"`
	WechatID         string `json:"wechat_id,omitempty"`
	WechatQRImageURL string `json:"wechat_qr_image_url,omitempty"`
}

// ServiceItem is the display view of an Item, shared by every category.
type ServiceItem struct {
	ID            string                 `json:"id"`
	Category      string                 `json:"category"`
	ItemType      ItemType               `json:"item_type"`
	Name          string                 `json:"name"`
	Description   string                 `json:"description,omitempty"`
	City          string                 `json:"city,omitempty"`
	ImageURL      string                 `json:"image_url,omitempty"`
	Price         string                 `json:"price,omitempty"`
	AverageRating *float64               `json:"average_rating"`
	ReviewCount   int                    `json:"review_count"`
	Details       map[string]interface{} `json:"details,omitempty"`
	Contact       Contact                `json:"-"`
}

// Map turns an item of this category into its display view. Keys consumed by
// the view fields are removed from Details so contact data cannot leak.
func (c Category) Map(item *Item) *ServiceItem {
	f := c.Fields
	view := &ServiceItem{
		ID:            item.ID,
		Category:      c.Slug,
		ItemType:      c.ItemType,
		Name:          firstString(item.Data, f.Name),
		Description:   firstString(item.Data, f.Description),
		City:          firstString(item.Data, f.City),
		ImageURL:      firstString(item.Data, f.Image),
		Price:         firstString(item.Data, f.Price),
		AverageRating: item.Aggregate().Average(),
		ReviewCount:   item.ReviewCount,
		Contact: Contact{
			Phone:            firstString(item.Data, f.Phone),
			WechatID:         firstString(item.Data, f.WechatID),
			WechatQRImageURL: firstString(item.Data, f.WechatQR),
		},
	}

	consumed := make(map[string]bool)
	for _, keys := range [][]string{f.Name, f.Description, f.City, f.Image, f.Price, f.Phone, f.WechatID, f.WechatQR} {
		for _, k := range keys {
			consumed[k] = true
		}
	}

	for k, v := range item.Data {
		if consumed[k] {
			continue
		}
		if view.Details == nil {
			view.Details = make(map[string]interface{})
		}
		view.Details[k] = v
	}

	return view
}

// Matches reports whether the view contains term (case-insensitive) in its
// name, description or city. An empty term matches everything.
func (s *ServiceItem) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, field := range []string{s.Name, s.Description, s.City} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// SortServiceItems orders by rating (unrated last) then name.
func SortServiceItems(items []*ServiceItem) {
	sort.SliceStable(items, func(i, j int) bool {
		ai, aj := items[i].AverageRating, items[j].AverageRating
		switch {
		case ai != nil && aj == nil:
			return true
		case ai == nil && aj != nil:
			return false
		case ai != nil && aj != nil && *ai != *aj:
			return *ai > *aj
		}
		return items[i].Name < items[j].Name
	})
}

func firstString(data map[string]interface{}, keys []string) string {
	for _, k := range keys {
		v, ok := data[k]
		if !ok || v == nil {
			continue
		}
		var s string
		switch val := v.(type) {
		case string:
			s = val
		case int:
			s = strconv.Itoa(val)
		case int64:
			s = strconv.FormatInt(val, 10)
		case float64:
			s = strconv.FormatFloat(val, 'f', -1, 64)
		default:
			s = fmt.Sprint(val)
		}
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	return ""
}
