package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/aaamo/storefront-api/internal/model"
)

// --- Product ---

type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Images      []string        `json:"images"`
	Category    string          `json:"category" binding:"required"`
}

type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Images      []string         `json:"images"`
	Category    *string          `json:"category"`
}

type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Images      []string        `json:"images"`
	Category    string          `json:"category"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
}

// --- Cart ---

type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	// Quantity omitted or zero means 1.
	Quantity int `json:"quantity" binding:"omitempty,min=1"`
}

type SetCartQuantityRequest struct {
	// Pointer so that zero (meaning "remove") survives binding.
	Quantity *int `json:"quantity" binding:"required"`
}

type CartItemResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Images   []string        `json:"images"`
	Category string          `json:"category"`
	Quantity int             `json:"quantity"`
}

type CartResponse struct {
	Items      []CartItemResponse `json:"items"`
	Total      decimal.Decimal    `json:"total"`
	ItemCount  int                `json:"item_count"`
	MinimumMet bool               `json:"minimum_met"`
}

// --- Checkout / orders ---

type AddressRequest struct {
	FullName         string `json:"full_name" binding:"required,min=3"`
	Phone            string `json:"phone" binding:"required"`
	AlternativePhone string `json:"alternative_phone"`
	Governorate      string `json:"governorate" binding:"required"`
	AddressLine      string `json:"address_line" binding:"required,min=10"`
	DistinctiveMark  string `json:"distinctive_mark"`
	Email            string `json:"email" binding:"omitempty,email"`
}

type CheckoutRequest struct {
	Address       AddressRequest `json:"address" binding:"required"`
	PaymentMethod string         `json:"payment_method" binding:"required,oneof=cash_on_delivery vodafone_cash fawry"`
	UserID        string         `json:"user_id"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending processing shipped delivered cancelled"`
}

type OrderResponse struct {
	ID            string             `json:"id"`
	UserID        string             `json:"user_id,omitempty"`
	Items         []CartItemResponse `json:"items"`
	Address       model.OrderAddress `json:"address"`
	PaymentMethod string             `json:"payment_method"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	ShippingCost  decimal.Decimal    `json:"shipping_cost"`
	CreatedAt     time.Time          `json:"created_at"`
	Status        string             `json:"status"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}

// --- Shipping ---

type GovernorateResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	ShippingCost decimal.Decimal `json:"shipping_cost"`
}

type ShippingQuoteResponse struct {
	Governorate string          `json:"governorate"`
	Cost        decimal.Decimal `json:"cost"`
	// Known is false when the governorate is not in the table; the cost is
	// then zero, meaning "not yet selected".
	Known bool `json:"known"`
}
