package handlers

import (
	"net/http"

	"homefinder-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CEPHandler handles the postal-code lookup endpoints
type CEPHandler struct {
	locationService service.LocationServiceInterface
}

// NewCEPHandler creates a new CEP handler
func NewCEPHandler(locationService service.LocationServiceInterface) *CEPHandler {
	return &CEPHandler{
		locationService: locationService,
	}
}

// LookupCEP handles GET /api/admin/cep/:code
// @Summary Look up an address by CEP
// @Description Resolve a Brazilian postal code to its street, neighborhood, city and state
// @Tags locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "CEP, digits only or formatted"
// @Success 200 {object} cep.Address "Resolved address"
// @Failure 400 {object} ErrorResponse "Malformed CEP"
// @Failure 404 {object} ErrorResponse "CEP not found"
// @Failure 500 {object} ErrorResponse "Upstream lookup failure"
// @Router /api/admin/cep/{code} [get]
func (h *CEPHandler) LookupCEP(c *gin.Context) {
	address, err := h.locationService.ResolveCEP(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, address)
}

// ResolveCEPSelection handles GET /api/admin/cep/:code/selection
// @Summary Resolve a CEP to location form selections
// @Description Look up a CEP and map it onto existing state, city and neighborhood records. IDs are omitted for levels with no match, letting the caller fall back to manual selection.
// @Tags locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "CEP, digits only or formatted"
// @Success 200 {object} service.CEPSelectionResponse "Selection"
// @Failure 400 {object} ErrorResponse "Malformed CEP"
// @Failure 404 {object} ErrorResponse "CEP not found"
// @Failure 500 {object} ErrorResponse "Upstream lookup failure"
// @Router /api/admin/cep/{code}/selection [get]
func (h *CEPHandler) ResolveCEPSelection(c *gin.Context) {
	selection, err := h.locationService.ResolveCEPSelection(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, selection)
}
