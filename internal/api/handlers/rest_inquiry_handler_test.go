package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"goahomes/api/internal/api/handlers"
	"goahomes/api/internal/errs"
	"goahomes/api/internal/models"
	"goahomes/api/internal/utils"
)

func newInquiryRouter(mockSvc *MockInquiryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/v1/properties/:id/inquiries", handlers.NewRestInquiryHandler(mockSvc).CreateInquiry)
	return r
}

func TestRestInquiryHandler_Create_Success(t *testing.T) {
	mockSvc := new(MockInquiryService)
	r := newInquiryRouter(mockSvc)

	listingID := utils.NewSixID()
	inquiry := &models.Inquiry{
		Base:      models.Base{ID: utils.NewSixID()},
		ListingID: listingID,
		Name:      "Rohan",
	}
	mockSvc.On("CreateInquiry", mock.Anything, listingID, mock.AnythingOfType("*models.InquiryDraft")).
		Return(inquiry, nil)

	body, _ := json.Marshal(map[string]string{
		"name": "Rohan", "email": "rohan@example.com", "message": "Still available?",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/v1/properties/"+listingID.String()+"/inquiries", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestRestInquiryHandler_Create_ListingMissing(t *testing.T) {
	mockSvc := new(MockInquiryService)
	r := newInquiryRouter(mockSvc)

	listingID := utils.NewSixID()
	mockSvc.On("CreateInquiry", mock.Anything, listingID, mock.AnythingOfType("*models.InquiryDraft")).
		Return(nil, errs.NewNotFound("listing", listingID.String()))

	body, _ := json.Marshal(map[string]string{
		"name": "Rohan", "email": "rohan@example.com", "message": "Hello",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/v1/properties/"+listingID.String()+"/inquiries", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockSvc.AssertExpectations(t)
}
