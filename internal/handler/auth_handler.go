package handler

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jengwei/trip-report/internal/middleware"
	"github.com/jengwei/trip-report/pkg/response"
)

const tokenTTL = 24 * time.Hour

// AuthHandler exchanges the configured API key for a bearer token
type AuthHandler struct {
	apiKey    string
	jwtSecret string
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(apiKey, jwtSecret string) *AuthHandler {
	return &AuthHandler{apiKey: apiKey, jwtSecret: jwtSecret}
}

type tokenRequest struct {
	APIKey string `json:"api_key" binding:"required"`
}

// IssueToken handles POST /api/v1/auth/token
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}

	if h.apiKey == "" || subtle.ConstantTimeCompare([]byte(req.APIKey), []byte(h.apiKey)) != 1 {
		response.Error(c, http.StatusUnauthorized, "Invalid API key", nil)
		return
	}

	token, err := middleware.IssueToken(h.jwtSecret, tokenTTL)
	if err != nil {
		response.InternalError(c, "Failed to issue token", err)
		return
	}

	response.Success(c, gin.H{"token": token, "expires_in": int(tokenTTL.Seconds())})
}
