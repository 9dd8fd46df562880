package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to OrderStatus
		allowed  bool
	}{
		{OrderStatusPendingPayment, OrderStatusPendingConfirmation, true},
		{OrderStatusPendingPayment, OrderStatusContactRevealed, true},
		{OrderStatusPendingConfirmation, OrderStatusConfirmed, true},
		{OrderStatusPendingConfirmation, OrderStatusContactRevealed, true},
		{OrderStatusConfirmed, OrderStatusCompleted, true},
		{OrderStatusContactRevealed, OrderStatusCompleted, true},
		{OrderStatusConfirmed, OrderStatusCancelled, true},
		{OrderStatusPendingPayment, OrderStatusCancelled, true},
		{OrderStatusPendingPayment, OrderStatusCompleted, false},
		{OrderStatusConfirmed, OrderStatusPendingConfirmation, false},
		{OrderStatusCompleted, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusConfirmed, false},
		{OrderStatusContactRevealed, OrderStatusContactRevealed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	assert.True(t, OrderStatusCompleted.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
	assert.False(t, OrderStatusContactRevealed.IsTerminal())
	assert.False(t, OrderStatus("shipped").Valid())
}

func TestOrderFlowInitialStatus(t *testing.T) {
	assert.Equal(t, OrderStatusContactRevealed, FlowContactReveal.InitialStatus())
	assert.Equal(t, OrderStatusPendingConfirmation, FlowDirectBooking.InitialStatus())
}
