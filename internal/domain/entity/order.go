package entity

import (
	"time"
)

type OrderStatus string

const (
	OrderStatusPendingPayment      OrderStatus = "pending_payment"
	OrderStatusPendingConfirmation OrderStatus = "pending_confirmation"
	OrderStatusConfirmed           OrderStatus = "confirmed"
	OrderStatusContactRevealed     OrderStatus = "contact_revealed"
	OrderStatusCancelled           OrderStatus = "cancelled"
	OrderStatusCompleted           OrderStatus = "completed"
)

// OrderRewardPoints is credited to the user with every order.
const OrderRewardPoints = 15

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPendingPayment:      {OrderStatusPendingConfirmation, OrderStatusContactRevealed, OrderStatusCancelled},
	OrderStatusPendingConfirmation: {OrderStatusConfirmed, OrderStatusContactRevealed, OrderStatusCancelled},
	OrderStatusConfirmed:           {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusContactRevealed:     {OrderStatusCompleted, OrderStatusCancelled},
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPendingPayment, OrderStatusPendingConfirmation, OrderStatusConfirmed,
		OrderStatusContactRevealed, OrderStatusCancelled, OrderStatusCompleted:
		return true
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// InitialStatus is the status an order starts in for the given flow.
func (f OrderFlow) InitialStatus() OrderStatus {
	if f == FlowContactReveal {
		return OrderStatusContactRevealed
	}
	return OrderStatusPendingConfirmation
}

type Order struct {
	ID                      string      `json:"id" firestore:"-"`
	UserID                  string      `json:"user_id" firestore:"userId"`
	ServiceType             ItemType    `json:"service_type" firestore:"serviceType"`
	ServiceID               string      `json:"service_id" firestore:"serviceId"`
	ServiceName             string      `json:"service_name" firestore:"serviceName"`
	OrderDate               time.Time   `json:"order_date" firestore:"orderDate"`
	Status                  OrderStatus `json:"status" firestore:"status"`
	Amount                  *string     `json:"amount" firestore:"amount"`
	ContactInfoRevealed     bool        `json:"contact_info_revealed" firestore:"contactInfoRevealed"`
	ContactPhone            string      `json:"contact_phone,omitempty" firestore:"contactPhone,omitempty"`
	ContactWechatID         string      `json:"contact_wechat_id,omitempty" firestore:"contactWechatId,omitempty"`
	ContactWechatQRImageURL string      `json:"contact_wechat_qr_image_url,omitempty" firestore:"contactWechatQrImageUrl,omitempty"`
	ImageURL                string      `json:"image_url,omitempty" firestore:"imageUrl,omitempty"`
	UpdatedAt               time.Time   `json:"updated_at" firestore:"updatedAt"`
}
