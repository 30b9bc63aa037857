package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/domains/user"
	"blog-backend/internal/shared/response"
)

// AuthHandler handles HTTP requests for admin authentication
type AuthHandler struct {
	service user.Service
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(service user.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /api/admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req user.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	tokens, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "bad username or password")
			return
		}
		response.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// Refresh handles POST /api/admin/refresh
// The refresh token is presented as a bearer token; access tokens are
// rejected here.
func (h *AuthHandler) Refresh(c *gin.Context) {
	token, ok := bearerToken(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "missing authorization header")
		return
	}

	accessToken, err := h.service.Refresh(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, user.ErrInvalidToken) {
			response.Error(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		response.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": accessToken})
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}
