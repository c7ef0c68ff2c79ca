package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"goahomes/api/internal/cache"
	"goahomes/api/internal/config"
	"goahomes/api/internal/models"
	"goahomes/api/internal/services"
	"goahomes/api/internal/utils"
)

// RestListingHandler handles REST requests for the property catalog.
type RestListingHandler struct {
	listingService services.IListingService
	rdb            *redis.Client
	cfg            *config.Config
}

// NewRestListingHandler creates a new RestListingHandler. rdb may be nil to
// disable response caching.
func NewRestListingHandler(listingService services.IListingService, rdb *redis.Client, cfg *config.Config) *RestListingHandler {
	return &RestListingHandler{
		listingService: listingService,
		rdb:            rdb,
		cfg:            cfg,
	}
}

// ListProperties handles GET /v1/properties
func (h *RestListingHandler) ListProperties(c *gin.Context) {
	query := services.NormalizeListingFilters(c.Request.URL.Query(), h.cfg.DefaultPageSize, h.cfg.MaxPageSize)

	result, err := h.listingService.ListListings(c.Request.Context(), query)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetProperty handles GET /v1/properties/:id
func (h *RestListingHandler) GetProperty(c *gin.Context) {
	listingID, err := utils.ParseSixID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing ID format"})
		return
	}

	ctx := c.Request.Context()
	cacheKey := cache.ListingKey(listingID.String())
	if h.rdb != nil {
		if payload, ok := cache.GetJSON(ctx, h.rdb, cacheKey); ok {
			c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(payload))
			return
		}
	}

	listing, err := h.listingService.FindListingByID(ctx, listingID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	if h.rdb != nil {
		if payload, err := json.Marshal(listing); err == nil {
			cache.SetJSON(ctx, h.rdb, cacheKey, string(payload), h.cfg.GetCacheTTL)
		}
	}
	c.JSON(http.StatusOK, listing)
}

// CreateProperty handles POST /v1/admin/properties
func (h *RestListingHandler) CreateProperty(c *gin.Context) {
	var draft models.ListingDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	listing, err := h.listingService.CreateListing(c.Request.Context(), &draft)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, listing)
}

// UpdateProperty handles PUT /v1/admin/properties/:id
func (h *RestListingHandler) UpdateProperty(c *gin.Context) {
	listingID, err := utils.ParseSixID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing ID format"})
		return
	}

	var draft models.ListingDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	listing, err := h.listingService.UpdateListing(c.Request.Context(), listingID, &draft)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	if h.rdb != nil {
		cache.Invalidate(c.Request.Context(), h.rdb, cache.ListingKey(listingID.String()))
	}
	c.JSON(http.StatusOK, listing)
}

// DeleteProperty handles DELETE /v1/admin/properties/:id
func (h *RestListingHandler) DeleteProperty(c *gin.Context) {
	listingID, err := utils.ParseSixID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing ID format"})
		return
	}

	if err := h.listingService.DeleteListing(c.Request.Context(), listingID); err != nil {
		writeServiceError(c, err)
		return
	}

	if h.rdb != nil {
		cache.Invalidate(c.Request.Context(), h.rdb, cache.ListingKey(listingID.String()))
	}
	c.Status(http.StatusNoContent)
}

// SeedProperties handles POST /v1/admin/seed
func (h *RestListingHandler) SeedProperties(c *gin.Context) {
	created, err := services.SeedSampleListings(c.Request.Context(), h.listingService)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"created": created})
}
