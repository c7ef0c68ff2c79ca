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
)

func newUploadRouter(mockStorage *MockS3Storage) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/v1/admin/uploads", handlers.NewUploadHandler(mockStorage).PresignUpload)
	return r
}

func TestUploadHandler_Presign_Success(t *testing.T) {
	mockStorage := new(MockS3Storage)
	r := newUploadRouter(mockStorage)

	mockStorage.On("GeneratePresignedPutURL", mock.Anything, "villa.jpg", "image/jpeg").
		Return("https://s3.example.com/put-url", "https://cdn.example.com/listings/abc_villa.jpg", nil)

	body, _ := json.Marshal(map[string]string{
		"filename": "villa.jpg", "contentType": "image/jpeg",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/v1/admin/uploads", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var respBody map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &respBody))
	assert.Equal(t, "https://s3.example.com/put-url", respBody["uploadUrl"])
	assert.Equal(t, "https://cdn.example.com/listings/abc_villa.jpg", respBody["publicUrl"])
	mockStorage.AssertExpectations(t)
}

func TestUploadHandler_Presign_RejectsContentType(t *testing.T) {
	mockStorage := new(MockS3Storage)
	r := newUploadRouter(mockStorage)

	body, _ := json.Marshal(map[string]string{
		"filename": "script.exe", "contentType": "application/octet-stream",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/v1/admin/uploads", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockStorage.AssertNotCalled(t, "GeneratePresignedPutURL")
}
