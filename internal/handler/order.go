package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aaamo/storefront-api/internal/dto"
	"github.com/aaamo/storefront-api/internal/model"
	"github.com/aaamo/storefront-api/internal/service"
)

type OrderHandler struct {
	orderService *service.OrderService
}

func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	address := model.OrderAddress{
		FullName:         req.Address.FullName,
		Phone:            req.Address.Phone,
		AlternativePhone: req.Address.AlternativePhone,
		Governorate:      req.Address.Governorate,
		AddressLine:      req.Address.AddressLine,
		DistinctiveMark:  req.Address.DistinctiveMark,
		Email:            req.Address.Email,
	}

	order, err := h.orderService.Checkout(c.Request.Context(), address, model.PaymentMethod(req.PaymentMethod), req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		case errors.Is(err, service.ErrBelowMinimumOrder):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "cart subtotal is below the minimum order value"})
		case errors.Is(err, service.ErrInvalidPhone):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid phone number"})
		case errors.Is(err, service.ErrUnknownGovernorate):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unknown governorate"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(order))
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.ListForUser(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, toOrderListResponse(orders))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orderService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

// ListAllOrders is the admin view; the admin middleware gates the route.
func (h *OrderHandler) ListAllOrders(c *gin.Context) {
	orders, err := h.orderService.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, toOrderListResponse(orders))
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), c.Param("id"), model.OrderStatus(req.Status))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

func toOrderResponse(order *model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:            order.ID,
		UserID:        order.UserID,
		Items:         toCartItemResponses(order.Items),
		Address:       order.Address,
		PaymentMethod: string(order.PaymentMethod),
		TotalAmount:   order.TotalAmount,
		ShippingCost:  order.ShippingCost,
		CreatedAt:     order.CreatedAt,
		Status:        string(order.Status),
	}
}

func toOrderListResponse(orders []model.Order) dto.OrderListResponse {
	items := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, toOrderResponse(&orders[i]))
	}
	return dto.OrderListResponse{Orders: items, Total: len(items)}
}
