package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"altanzam/internal/domain/entity"
	"altanzam/pkg/errors"
)

func newOrderUseCase(f *fixture) *OrderUseCase {
	uc := NewOrderUseCase(f.orders, f.items, f.users, f.notifier)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func TestRevealContactOnTranslator(t *testing.T) {
	f := newFixture()
	f.store.PutUser(&entity.User{ID: "a", Points: 0, FCMTokens: []string{"device-1"}})
	uc := newOrderUseCase(f)
	ctx := context.Background()

	order, err := uc.RevealContactAndOrder(ctx, signedIn("a"), CreateOrderInput{Category: "translators", ItemID: "translator-1"})
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, entity.OrderStatusContactRevealed, order.Status)
	assert.True(t, order.ContactInfoRevealed)
	assert.Equal(t, "+86 138 0000 0000", order.ContactPhone)
	assert.Equal(t, "bold_wx", order.ContactWechatID)
	assert.Equal(t, entity.ItemTypeTranslator, order.ServiceType)
	require.NotNil(t, order.Amount)
	assert.Equal(t, "300-400", *order.Amount)

	orders, total, err := f.orders.ListByUser(ctx, "a", "", 0, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, order.ID, orders[0].ID)

	notes, err := f.notes.ListForUser(ctx, "a", 10)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, entity.NotificationTranslatorContactDesc, notes[0].DescriptionKey)
	assert.Equal(t, "+86 138 0000 0000", notes[0].DescriptionPlaceholders["phone"])
	assert.Equal(t, "bold_wx", notes[0].DescriptionPlaceholders["wechatId"])
	assert.Equal(t, "Bold Translator", notes[0].DescriptionPlaceholders["serviceName"])
	assert.Equal(t, "/orders", notes[0].Link)
	assert.False(t, notes[0].Read)

	user, err := f.users.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 15, user.Points)

	assert.Equal(t, []string{"orders.created", "notifications.created"}, f.publisher.topics())
	require.Len(t, f.push.sent, 1)
	assert.Equal(t, []string{"device-1"}, f.push.tokens[0])
	assert.Equal(t, notes[0].ID, f.push.sent[0]["notificationId"])
}

func TestDirectBookingKeepsContactsHidden(t *testing.T) {
	f := newFixture()
	uc := newOrderUseCase(f)

	order, err := uc.RevealContactAndOrder(context.Background(), signedIn("a"), CreateOrderInput{ItemID: "factory-1"})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPendingConfirmation, order.Status)
	assert.False(t, order.ContactInfoRevealed)
	assert.Empty(t, order.ContactPhone)
	assert.Nil(t, order.Amount)
	assert.Equal(t, "Wool Works", order.ServiceName)

	// profile is created on demand and credited
	user, err := f.users.GetByID(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, 15, user.Points)
}

func TestOrderTransactionIsAtomic(t *testing.T) {
	f := newFixture()
	f.store.PutUser(&entity.User{ID: "a"})
	uc := NewOrderUseCase(failingPointsRepo{OrderRepository: f.orders}, f.items, f.users, f.notifier)
	ctx := context.Background()

	_, err := uc.RevealContactAndOrder(ctx, signedIn("a"), CreateOrderInput{ItemID: "translator-1"})
	assert.True(t, errors.Is(err, errors.CodeOrderCreationFailed))

	_, total, err := f.orders.ListByUser(ctx, "a", "", 0, 0)
	require.NoError(t, err)
	assert.Zero(t, total)

	notes, err := f.notes.ListForUser(ctx, "a", 10)
	require.NoError(t, err)
	assert.Empty(t, notes)

	user, _ := f.users.GetByID(ctx, "a")
	assert.Zero(t, user.Points)
	assert.Empty(t, f.publisher.topics())
	assert.Empty(t, f.push.sent)
}

func TestRevealContactPreconditions(t *testing.T) {
	f := newFixture()
	uc := newOrderUseCase(f)
	ctx := context.Background()

	_, err := uc.RevealContactAndOrder(ctx, entity.Session{}, CreateOrderInput{ItemID: "translator-1"})
	assert.True(t, errors.Is(err, errors.CodeAuthRequired))

	_, err = uc.RevealContactAndOrder(ctx, signedIn("a"), CreateOrderInput{ItemID: "nope"})
	assert.True(t, errors.Is(err, errors.CodeNotFound))

	_, err = uc.RevealContactAndOrder(ctx, signedIn("a"), CreateOrderInput{Category: "hotels", ItemID: "translator-1"})
	assert.True(t, errors.Is(err, errors.CodeNotFound))

	_, total, _ := f.orders.ListByUser(ctx, "a", "", 0, 0)
	assert.Zero(t, total)
}

func TestPushFailureDoesNotUndoOrder(t *testing.T) {
	f := newFixture()
	f.store.PutUser(&entity.User{ID: "a", FCMTokens: []string{"stale", "live"}})
	f.push.unregistered = []string{"stale"}
	uc := newOrderUseCase(f)
	ctx := context.Background()

	_, err := uc.RevealContactAndOrder(ctx, signedIn("a"), CreateOrderInput{ItemID: "hotel-1"})
	require.NoError(t, err)

	user, _ := f.users.GetByID(ctx, "a")
	assert.Equal(t, []string{"live"}, user.FCMTokens)

	f.push.err = fmt.Errorf("fcm down")
	_, err = uc.RevealContactAndOrder(ctx, signedIn("a"), CreateOrderInput{ItemID: "hotel-1"})
	require.NoError(t, err)

	user, _ = f.users.GetByID(ctx, "a")
	assert.Equal(t, 30, user.Points)
}

func TestOrderStatusUpdates(t *testing.T) {
	f := newFixture()
	uc := newOrderUseCase(f)
	ctx := context.Background()

	order, err := uc.RevealContactAndOrder(ctx, signedIn("a"), CreateOrderInput{ItemID: "factory-1"})
	require.NoError(t, err)

	// owners cannot confirm their own booking
	_, err = uc.UpdateStatus(ctx, signedIn("a"), order.ID, entity.OrderStatusConfirmed)
	assert.True(t, errors.Is(err, errors.CodeForbidden))

	// other users cannot touch it
	_, err = uc.UpdateStatus(ctx, signedIn("b"), order.ID, entity.OrderStatusCancelled)
	assert.True(t, errors.Is(err, errors.CodeForbidden))

	admin := entity.Session{UID: "admin", Role: entity.RoleAdmin}
	updated, err := uc.UpdateStatus(ctx, admin, order.ID, entity.OrderStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, updated.Status)

	_, err = uc.UpdateStatus(ctx, admin, order.ID, entity.OrderStatusContactRevealed)
	assert.True(t, errors.Is(err, errors.CodeInvalidTransition))

	updated, err = uc.UpdateStatus(ctx, signedIn("a"), order.ID, entity.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, updated.Status)

	_, err = uc.UpdateStatus(ctx, signedIn("a"), order.ID, entity.OrderStatusCancelled)
	assert.True(t, errors.Is(err, errors.CodeInvalidTransition))

	_, err = uc.UpdateStatus(ctx, admin, order.ID, entity.OrderStatus("shipped"))
	assert.True(t, errors.Is(err, errors.CodeValidation))
}

func TestOrderTimestampsUseInjectedClock(t *testing.T) {
	f := newFixture()
	f.store.PutUser(&entity.User{ID: "a"})
	uc := newOrderUseCase(f)
	ctx := context.Background()

	order, err := uc.RevealContactAndOrder(ctx, signedIn("a"), CreateOrderInput{ItemID: "factory-1"})
	require.NoError(t, err)

	user, err := f.users.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, fixedNow, user.UpdatedAt)

	later := fixedNow.Add(time.Hour)
	uc.now = func() time.Time { return later }

	updated, err := uc.UpdateStatus(ctx, signedIn("a"), order.ID, entity.OrderStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, later, updated.UpdatedAt)

	stored, err := f.orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, later, stored.UpdatedAt)
	assert.Equal(t, fixedNow, stored.OrderDate)
}

func TestListAndDeleteOrders(t *testing.T) {
	f := newFixture()
	uc := newOrderUseCase(f)
	ctx := context.Background()

	revealed, err := uc.RevealContactAndOrder(ctx, signedIn("a"), CreateOrderInput{ItemID: "translator-1"})
	require.NoError(t, err)
	_, err = uc.RevealContactAndOrder(ctx, signedIn("a"), CreateOrderInput{ItemID: "factory-1"})
	require.NoError(t, err)

	orders, total, err := uc.ListOrders(ctx, signedIn("a"), "contact_revealed", 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, revealed.ID, orders[0].ID)

	_, _, err = uc.ListOrders(ctx, signedIn("a"), "bogus", 1, 20)
	assert.True(t, errors.Is(err, errors.CodeValidation))

	_, err = uc.GetOrder(ctx, signedIn("b"), revealed.ID)
	assert.True(t, errors.Is(err, errors.CodeForbidden))

	err = uc.DeleteOrder(ctx, signedIn("b"), revealed.ID)
	assert.True(t, errors.Is(err, errors.CodeForbidden))

	require.NoError(t, uc.DeleteOrder(ctx, signedIn("a"), revealed.ID))

	err = uc.DeleteOrder(ctx, signedIn("a"), revealed.ID)
	assert.True(t, errors.Is(err, errors.CodeNotFound))

	_, total, err = uc.ListOrders(ctx, signedIn("a"), "", 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}
