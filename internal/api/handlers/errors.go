package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"goahomes/api/internal/errs"
)

// writeServiceError maps a service-layer error onto an HTTP response.
func writeServiceError(c *gin.Context, err error) {
	var ve *errs.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": ve.Fields})
		return
	}
	var nf *errs.NotFoundError
	if errors.As(err, &nf) {
		c.JSON(http.StatusNotFound, gin.H{"error": nf.Error()})
		return
	}
	var ce *errs.ConflictError
	if errors.As(err, &ce) {
		c.JSON(http.StatusConflict, gin.H{"error": ce.Error()})
		return
	}
	if errs.IsStoreUnavailable(err) {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage temporarily unavailable"})
		return
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
