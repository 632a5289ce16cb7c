package handlers

import (
	"net/http"

	"homefinder-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AmenityHandler handles the amenity catalog endpoint
type AmenityHandler struct {
	amenityService service.AmenityServiceInterface
}

// NewAmenityHandler creates a new amenity handler
func NewAmenityHandler(amenityService service.AmenityServiceInterface) *AmenityHandler {
	return &AmenityHandler{
		amenityService: amenityService,
	}
}

// ListAmenities handles GET /api/admin/amenities
// @Summary List amenities
// @Description List the full amenity catalog ordered by name
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Amenity "Amenities"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/admin/amenities [get]
func (h *AmenityHandler) ListAmenities(c *gin.Context) {
	amenities, err := h.amenityService.ListAmenities()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, amenities)
}
