package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/aaamo/storefront-api/internal/config"
	"github.com/aaamo/storefront-api/internal/kvstore"
)

type HealthHandler struct {
	store       kvstore.Store
	redisClient *redis.Client
	site        config.Site
}

func NewHealthHandler(store kvstore.Store, redisClient *redis.Client, site config.Site) *HealthHandler {
	return &HealthHandler{store: store, redisClient: redisClient, site: site}
}

func (h *HealthHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *HealthHandler) Readyz(c *gin.Context) {
	ctx := c.Request.Context()

	if _, _, err := h.store.Get(ctx, kvstore.KeyProducts); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "store": "unavailable"})
		return
	}

	resp := gin.H{"status": "ok", "store": "ready"}
	if h.redisClient != nil {
		if err := h.redisClient.Ping(ctx).Err(); err != nil {
			resp["cache"] = "unavailable"
		} else {
			resp["cache"] = "connected"
		}
	}
	c.JSON(http.StatusOK, resp)
}

// Meta serves the site identity strings the storefront shell renders.
func (h *HealthHandler) Meta(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"site_name":        h.site.Name,
		"site_description": h.site.Description,
	})
}
