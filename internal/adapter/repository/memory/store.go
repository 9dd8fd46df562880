// Package memory is an in-process document store with the same repository
// contracts as the Firestore adapter. Transactions hold the store lock for
// their whole duration and buffer writes until the callback succeeds.
package memory

import (
	"sort"
	"strings"
	"sync"
	"time"

	"altanzam/internal/domain/entity"
	"altanzam/pkg/utils"
)

type Store struct {
	mu sync.Mutex

	items         map[string]*entity.Item
	reviews       map[string]map[string]*entity.Review // itemID -> userID
	orders        map[string]*entity.Order
	users         map[string]*entity.User
	notifications map[string]map[string]*entity.Notification // userID -> id
	globals       map[string]*entity.Notification
	readGlobals   map[string]map[string]bool
	saved         map[string]map[string]*entity.SavedItem

	cities     []*entity.City
	banners    []*entity.Banner
	appVersion *entity.AppVersion
}

func NewStore() *Store {
	return &Store{
		items:         make(map[string]*entity.Item),
		reviews:       make(map[string]map[string]*entity.Review),
		orders:        make(map[string]*entity.Order),
		users:         make(map[string]*entity.User),
		notifications: make(map[string]map[string]*entity.Notification),
		globals:       make(map[string]*entity.Notification),
		readGlobals:   make(map[string]map[string]bool),
		saved:         make(map[string]map[string]*entity.SavedItem),
	}
}

// PutItem seeds a catalog item.
func (s *Store) PutItem(item *entity.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := copyItem(item)
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now()
	}
	s.items[item.ID] = cp
}

// PutUser seeds a user document.
func (s *Store) PutUser(user *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = copyUser(user)
}

func (s *Store) PutCity(city *entity.City) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *city
	s.cities = append(s.cities, &cp)
}

func (s *Store) PutBanner(banner *entity.Banner) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *banner
	s.banners = append(s.banners, &cp)
}

func (s *Store) SetAppVersion(v *entity.AppVersion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *v
	s.appVersion = &cp
}

// txBuffer collects writes made inside a transaction.
type txBuffer struct {
	writes []func()
}

func (b *txBuffer) add(w func()) {
	b.writes = append(b.writes, w)
}

func (b *txBuffer) commit() {
	for _, w := range b.writes {
		w()
	}
}

func copyItem(item *entity.Item) *entity.Item {
	cp := *item
	if item.Data != nil {
		cp.Data = make(map[string]interface{}, len(item.Data))
		for k, v := range item.Data {
			cp.Data[k] = v
		}
	}
	return &cp
}

func copyUser(user *entity.User) *entity.User {
	cp := *user
	cp.FCMTokens = append([]string(nil), user.FCMTokens...)
	return &cp
}

func copyNotification(n *entity.Notification) *entity.Notification {
	cp := *n
	if n.DescriptionPlaceholders != nil {
		cp.DescriptionPlaceholders = make(map[string]string, len(n.DescriptionPlaceholders))
		for k, v := range n.DescriptionPlaceholders {
			cp.DescriptionPlaceholders[k] = v
		}
	}
	return &cp
}

// itemField resolves a document path such as "data.city" or "categoryName".
func itemField(item *entity.Item, path string) (interface{}, bool) {
	if key, ok := strings.CutPrefix(path, "data."); ok {
		v, found := item.Data[key]
		return v, found
	}
	switch path {
	case "categoryName":
		return item.CategoryName, true
	case "reviewCount":
		return item.ReviewCount, true
	}
	return nil, false
}

func sortNotifications(list []*entity.Notification) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Date.After(list[j].Date)
	})
}

func window[T any](list []T, limit, offset int) []T {
	start, end := utils.PageBounds(len(list), limit, offset)
	return list[start:end]
}
