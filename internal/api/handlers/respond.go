package handlers

import (
	"net/http"

	apperrors "homefinder-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// respondError maps the typed error taxonomy onto HTTP statuses:
// validation and malformed input 400, authentication 401, not found 404,
// everything else (upstream included) 500 with the provider text kept for
// diagnostics.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err), apperrors.IsInvalidInput(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
