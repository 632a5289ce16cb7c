package handlers

import (
	"net/http"

	"homefinder-backend/internal/auth"
	"homefinder-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles admin authentication
type AuthHandler struct {
	authService *auth.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

// Login handles POST /api/admin/auth
// @Summary Authenticate as the site administrator
// @Description Exchange the admin credentials for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Admin credentials"
// @Success 200 {object} LoginResponse "Issued token"
// @Failure 400 {object} ErrorResponse "Missing credentials"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Router /api/admin/auth [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.NewInvalidInputError("email and password are required"))
		return
	}

	token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, LoginResponse{
		Token:     token,
		ExpiresIn: int64(auth.TokenTTL.Seconds()),
	})
}
