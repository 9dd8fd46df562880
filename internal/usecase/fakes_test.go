package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"altanzam/internal/adapter/repository/memory"
	"altanzam/internal/domain/entity"
	"altanzam/internal/domain/repository"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type publishedEvent struct {
	UserID string
	Topic  string
	Type   string
	Data   interface{}
}

type fakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *fakePublisher) Publish(userID, topic, eventType string, data interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{UserID: userID, Topic: topic, Type: eventType, Data: data})
}

func (p *fakePublisher) Broadcast(topic, eventType string, data interface{}) {
	p.Publish("", topic, eventType, data)
}

func (p *fakePublisher) topics() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []string
	for _, e := range p.events {
		out = append(out, e.Topic+"."+e.Type)
	}
	return out
}

type fakePush struct {
	sent         []map[string]string
	tokens       [][]string
	unregistered []string
	err          error
}

func (p *fakePush) SendData(ctx context.Context, tokens []string, data map[string]string) ([]string, error) {
	if p.err != nil {
		return nil, p.err
	}
	p.sent = append(p.sent, data)
	p.tokens = append(p.tokens, tokens)
	return p.unregistered, nil
}

type fakeIdentity struct {
	passwords map[string]string // email -> password
	uids      map[string]string // email -> uid
	updated   map[string]string // uid -> new password
	profiles  map[string][2]*string
}

func newFakeIdentity() *fakeIdentity {
	return &fakeIdentity{
		passwords: make(map[string]string),
		uids:      make(map[string]string),
		updated:   make(map[string]string),
		profiles:  make(map[string][2]*string),
	}
}

func (f *fakeIdentity) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	if _, ok := f.uids[email]; ok {
		return "", fmt.Errorf("email exists")
	}
	uid := fmt.Sprintf("uid-%d", len(f.uids)+1)
	f.uids[email] = uid
	f.passwords[email] = password
	return uid, nil
}

func (f *fakeIdentity) SignInWithEmailPassword(ctx context.Context, email, password string) (*AuthToken, error) {
	if f.passwords[email] != password || password == "" {
		return nil, fmt.Errorf("INVALID_LOGIN_CREDENTIALS")
	}
	return &AuthToken{UID: f.uids[email], IDToken: "id-" + f.uids[email], RefreshToken: "refresh", ExpiresIn: 3600}, nil
}

func (f *fakeIdentity) UpdateUserPassword(ctx context.Context, uid, newPassword string) error {
	f.updated[uid] = newPassword
	return nil
}

func (f *fakeIdentity) UpdateUserProfile(ctx context.Context, uid string, displayName, photoURL *string) error {
	f.profiles[uid] = [2]*string{displayName, photoURL}
	return nil
}

type fakeCache struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (c *fakeCache) Get(ctx context.Context, key string, dst interface{}) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (c *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	c.sets++
	return nil
}

type fakeFiles struct {
	uploads []string
	err     error
}

func (f *fakeFiles) UploadFile(ctx context.Context, file io.Reader, contentType, folder string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if _, err := io.ReadAll(file); err != nil {
		return "", err
	}
	url := fmt.Sprintf("https://storage.test/%s/photo-%d", folder, len(f.uploads)+1)
	f.uploads = append(f.uploads, contentType)
	return url, nil
}

func (f *fakeFiles) DeleteFile(ctx context.Context, fileURL string) error { return nil }

func (f *fakeFiles) Close() error { return nil }

// failingPointsRepo wraps an order repository so the points credit inside
// the transaction fails.
type failingPointsRepo struct {
	repository.OrderRepository
}

type failingPointsTx struct {
	repository.OrderTx
}

func (failingPointsTx) IncrementPoints(userID string, points int, at time.Time) error {
	return fmt.Errorf("points service unavailable")
}

func (r failingPointsRepo) RunTransaction(ctx context.Context, fn func(ctx context.Context, tx repository.OrderTx) error) error {
	return r.OrderRepository.RunTransaction(ctx, func(ctx context.Context, tx repository.OrderTx) error {
		return fn(ctx, failingPointsTx{OrderTx: tx})
	})
}

type fixture struct {
	store     *memory.Store
	items     repository.ItemRepository
	reviews   repository.ReviewRepository
	orders    repository.OrderRepository
	users     repository.UserRepository
	notes     repository.NotificationRepository
	saved     repository.SavedItemRepository
	publisher *fakePublisher
	push      *fakePush
	notifier  *Notifier
}

func newFixture() *fixture {
	store := memory.NewStore()
	f := &fixture{
		store:     store,
		items:     memory.NewItemRepository(store),
		reviews:   memory.NewReviewRepository(store),
		orders:    memory.NewOrderRepository(store),
		users:     memory.NewUserRepository(store),
		notes:     memory.NewNotificationRepository(store),
		saved:     memory.NewSavedItemRepository(store),
		publisher: &fakePublisher{},
		push:      &fakePush{},
	}
	f.notifier = NewNotifier(f.users, f.publisher, f.push)

	store.PutItem(&entity.Item{
		ID:           "translator-1",
		CategoryName: "translators",
		CreatedAt:    fixedNow.Add(-time.Hour),
		Data: map[string]interface{}{
			"name":        "Bold Translator",
			"city":        "Beijing",
			"photoUrl":    "https://img/bold.png",
			"rate":        "300-400",
			"phoneNumber": "+86 138 0000 0000",
			"wechatId":    "bold_wx",
		},
	})
	store.PutItem(&entity.Item{
		ID:           "hotel-1",
		CategoryName: "hotels",
		CreatedAt:    fixedNow.Add(-2 * time.Hour),
		Data: map[string]interface{}{
			"name":        "Steppe Hotel",
			"city":        "Erenhot",
			"description": "Close to the border crossing",
			"price":       "220",
			"phoneNumber": "+86 139 1111 1111",
		},
	})
	store.PutItem(&entity.Item{
		ID:           "factory-1",
		CategoryName: "factories",
		CreatedAt:    fixedNow.Add(-3 * time.Hour),
		Data: map[string]interface{}{
			"factoryName": "Wool Works",
			"location":    "Hohhot",
			"phoneNumber": "+86 137 2222 2222",
		},
	})

	return f
}

func signedIn(uid string) entity.Session {
	return entity.Session{UID: uid, Email: uid + "@example.com", DisplayName: "User " + uid}
}
