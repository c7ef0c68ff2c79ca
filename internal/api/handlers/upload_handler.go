package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"goahomes/api/internal/storage"
)

// UploadHandler issues presigned URLs for listing image uploads.
type UploadHandler struct {
	storageService storage.IS3Storage
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(storageService storage.IS3Storage) *UploadHandler {
	return &UploadHandler{storageService: storageService}
}

type presignRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// PresignUpload handles POST /v1/admin/uploads. Returns a short-lived PUT
// URL and the public URL to store on the listing once uploaded.
func (h *UploadHandler) PresignUpload(c *gin.Context) {
	if h.storageService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Image storage not configured"})
		return
	}

	var req presignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if strings.TrimSpace(req.Filename) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "filename is required"})
		return
	}
	if !allowedImageTypes[req.ContentType] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "contentType must be image/jpeg, image/png or image/webp"})
		return
	}

	uploadURL, publicURL, err := h.storageService.GeneratePresignedPutURL(c.Request.Context(), req.Filename, req.ContentType)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate upload URL"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"uploadUrl": uploadURL,
		"publicUrl": publicURL,
	})
}
