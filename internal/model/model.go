package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Images      []string        `json:"images"`
	Category    string          `json:"category"`
}

// CartItem is a product snapshot plus a quantity. A cart holds at most one
// entry per product id; adding an already-present product increments it.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

type OrderAddress struct {
	FullName         string `json:"full_name"`
	Phone            string `json:"phone"`
	AlternativePhone string `json:"alternative_phone,omitempty"`
	Governorate      string `json:"governorate"`
	AddressLine      string `json:"address_line"`
	DistinctiveMark  string `json:"distinctive_mark,omitempty"`
	Email            string `json:"email,omitempty"`
}

type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentVodafoneCash   PaymentMethod = "vodafone_cash"
	PaymentFawry          PaymentMethod = "fawry"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is immutable after creation except for Status. Items is a by-value
// snapshot of the cart at checkout; later catalog edits never touch it.
type Order struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id,omitempty"`
	Items         []CartItem      `json:"items"`
	Address       OrderAddress    `json:"address"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	ShippingCost  decimal.Decimal `json:"shipping_cost"`
	CreatedAt     time.Time       `json:"created_at"`
	Status        OrderStatus     `json:"status"`
}

// Governorate is static shipping reference data, never mutated at runtime.
type Governorate struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	ShippingCost decimal.Decimal `json:"shipping_cost"`
}
