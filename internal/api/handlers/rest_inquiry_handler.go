package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"goahomes/api/internal/models"
	"goahomes/api/internal/services"
	"goahomes/api/internal/utils"
)

// RestInquiryHandler handles REST requests for listing inquiries.
type RestInquiryHandler struct {
	inquiryService services.IInquiryService
}

// NewRestInquiryHandler creates a new RestInquiryHandler.
func NewRestInquiryHandler(inquiryService services.IInquiryService) *RestInquiryHandler {
	return &RestInquiryHandler{inquiryService: inquiryService}
}

// CreateInquiry handles POST /v1/properties/:id/inquiries
func (h *RestInquiryHandler) CreateInquiry(c *gin.Context) {
	listingID, err := utils.ParseSixID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing ID format"})
		return
	}

	var draft models.InquiryDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	inquiry, err := h.inquiryService.CreateInquiry(c.Request.Context(), listingID, &draft)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, inquiry)
}
