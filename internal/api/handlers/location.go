package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"homefinder-backend/internal/errors"
	"homefinder-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LocationHandler handles the location endpoints used by the admin forms
type LocationHandler struct {
	locationService service.LocationServiceInterface
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(locationService service.LocationServiceInterface) *LocationHandler {
	return &LocationHandler{
		locationService: locationService,
	}
}

// ListStates handles GET /api/admin/states
// @Summary List states
// @Description List all states ordered by name. Returns an empty list when the lookup fails.
// @Tags locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.State "States"
// @Router /api/admin/states [get]
func (h *LocationHandler) ListStates(c *gin.Context) {
	c.JSON(http.StatusOK, h.locationService.ListStates())
}

// ListCities handles GET /api/admin/cities?state_id=N
// @Summary List cities of a state
// @Tags locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param state_id query int true "State ID"
// @Success 200 {array} models.City "Cities"
// @Failure 400 {object} ErrorResponse "Missing or invalid state_id"
// @Router /api/admin/cities [get]
func (h *LocationHandler) ListCities(c *gin.Context) {
	stateID, err := parseQueryID(c, "state_id")
	if err != nil {
		respondError(c, err)
		return
	}

	cities, err := h.locationService.ListCitiesByState(stateID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cities)
}

// ListNeighborhoods handles GET /api/admin/neighborhoods?city_id=N
// @Summary List neighborhoods of a city
// @Tags locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param city_id query int true "City ID"
// @Success 200 {array} models.Neighborhood "Neighborhoods"
// @Failure 400 {object} ErrorResponse "Missing or invalid city_id"
// @Router /api/admin/neighborhoods [get]
func (h *LocationHandler) ListNeighborhoods(c *gin.Context) {
	cityID, err := parseQueryID(c, "city_id")
	if err != nil {
		respondError(c, err)
		return
	}

	neighborhoods, err := h.locationService.ListNeighborhoodsByCity(cityID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, neighborhoods)
}

// CreateNeighborhoodRequest is the payload for the neighborhood find-or-create endpoint.
type CreateNeighborhoodRequest struct {
	Name   string `json:"name" binding:"required"`
	CityID uint   `json:"city_id" binding:"required"`
}

// CreateNeighborhood handles POST /api/admin/neighborhoods
// @Summary Find or create a neighborhood
// @Description Returns the neighborhood with the given name in the city, creating it when absent. Name matching is case-insensitive.
// @Tags locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateNeighborhoodRequest true "Neighborhood name and city"
// @Success 200 {object} models.Neighborhood "Neighborhood"
// @Failure 400 {object} ErrorResponse "Invalid payload"
// @Router /api/admin/neighborhoods [post]
func (h *LocationHandler) CreateNeighborhood(c *gin.Context) {
	var req CreateNeighborhoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.NewInvalidInputError("name and city_id are required"))
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		respondError(c, errors.NewValidationError("name", "must not be blank"))
		return
	}

	neighborhood, err := h.locationService.FindOrCreateNeighborhood(req.Name, req.CityID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, neighborhood)
}

func parseQueryID(c *gin.Context, name string) (uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, errors.NewValidationError(name, "is required")
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError(name, "must be a positive integer")
	}
	return uint(id), nil
}
