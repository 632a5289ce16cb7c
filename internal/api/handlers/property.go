package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"homefinder-backend/internal/database/models"
	"homefinder-backend/internal/repository"
	"homefinder-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PropertyHandler handles the public property endpoints
type PropertyHandler struct {
	propertyService service.PropertyServiceInterface
}

// NewPropertyHandler creates a new public property handler
func NewPropertyHandler(propertyService service.PropertyServiceInterface) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
	}
}

// ListProperties handles GET /api/properties
// @Summary List properties
// @Description List properties for public pages with optional location slugs and filters. Degrades to an empty list on backend failure.
// @Tags properties
// @Accept json
// @Produce json
// @Param featured query bool false "Only featured properties"
// @Param limit query int false "Maximum number of results" default(10)
// @Param state query string false "State slug"
// @Param city query string false "City slug"
// @Param neighborhood query string false "Neighborhood slug"
// @Param status query string false "Comma-separated status values"
// @Param bedrooms query string false "Comma-separated bedroom counts"
// @Param min_price query number false "Minimum price (applied against price_min)"
// @Param max_price query number false "Maximum price (applied against price_min)"
// @Success 200 {array} models.Property "Properties"
// @Router /api/properties [get]
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	filter := repository.PropertyFilter{
		StateSlug:        c.Query("state"),
		CitySlug:         c.Query("city"),
		NeighborhoodSlug: c.Query("neighborhood"),
	}

	if featured, err := strconv.ParseBool(c.Query("featured")); err == nil && featured {
		filter.Featured = &featured
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	filter.Limit = limit

	if raw := c.Query("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			status := models.PropertyStatus(strings.TrimSpace(s))
			if status.Valid() {
				filter.Statuses = append(filter.Statuses, status)
			}
		}
	}
	if raw := c.Query("bedrooms"); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			if n, err := strconv.Atoi(strings.TrimSpace(b)); err == nil {
				filter.Bedrooms = append(filter.Bedrooms, n)
			}
		}
	}
	if raw := c.Query("min_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinPrice = &v
		}
	}
	if raw := c.Query("max_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxPrice = &v
		}
	}

	c.JSON(http.StatusOK, h.propertyService.ListPublic(filter))
}

// GetPropertyBySlugPath handles GET /api/properties/:state/:city/:neighborhood/:slug
// @Summary Get a property by its location slug path
// @Description Fetch a single property addressed by state, city, neighborhood and property slugs
// @Tags properties
// @Accept json
// @Produce json
// @Param state path string true "State slug"
// @Param city path string true "City slug"
// @Param neighborhood path string true "Neighborhood slug"
// @Param slug path string true "Property slug"
// @Success 200 {object} models.Property "Property"
// @Failure 404 {object} ErrorResponse "Property not found"
// @Router /api/properties/{state}/{city}/{neighborhood}/{slug} [get]
func (h *PropertyHandler) GetPropertyBySlugPath(c *gin.Context) {
	property, err := h.propertyService.GetBySlugPath(
		c.Param("state"),
		c.Param("city"),
		c.Param("neighborhood"),
		c.Param("slug"),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, property)
}
