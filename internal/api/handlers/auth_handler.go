package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"goahomes/api/internal/auth"
	"goahomes/api/internal/config"
)

// AuthHandler handles admin session login.
type AuthHandler struct {
	cfg *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /v1/auth/login. There is a single admin account,
// configured via environment.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	// Same response for unknown email and wrong password.
	if !strings.EqualFold(req.Email, h.cfg.AdminEmail) ||
		!auth.CheckPasswordHash(req.Password, h.cfg.AdminPasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := auth.GenerateJWT(h.cfg.AdminEmail, true, h.cfg.JwtSecret, h.cfg.JwtTTL)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"expiresIn": int(h.cfg.JwtTTL.Seconds()),
	})
}
