package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aaamo/storefront-api/internal/dto"
	"github.com/aaamo/storefront-api/internal/shipping"
)

type ShippingHandler struct{}

func NewShippingHandler() *ShippingHandler {
	return &ShippingHandler{}
}

func (h *ShippingHandler) Governorates(c *gin.Context) {
	table := shipping.Governorates()
	out := make([]dto.GovernorateResponse, 0, len(table))
	for _, g := range table {
		out = append(out, dto.GovernorateResponse{ID: g.ID, Name: g.Name, ShippingCost: g.ShippingCost})
	}
	c.JSON(http.StatusOK, gin.H{"governorates": out})
}

func (h *ShippingHandler) Quote(c *gin.Context) {
	name := c.Query("governorate")
	cost, known := shipping.CostFor(name)
	c.JSON(http.StatusOK, dto.ShippingQuoteResponse{Governorate: name, Cost: cost, Known: known})
}
