package auth

import (
	"net/http"
	"strings"

	apperrors "homefinder-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// RequireAuth rejects requests on the admin surface that do not carry a
// valid bearer token
func RequireAuth(service *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingToken.Error()})
			return
		}

		claims, err := service.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrInvalidToken.Error()})
			return
		}

		c.Set("admin_email", claims.Email)
		c.Next()
	}
}
