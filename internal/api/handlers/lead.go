package handlers

import (
	"net/http"

	"homefinder-backend/internal/errors"
	"homefinder-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LeadHandler handles lead submission and listing
type LeadHandler struct {
	leadService service.LeadServiceInterface
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService service.LeadServiceInterface) *LeadHandler {
	return &LeadHandler{
		leadService: leadService,
	}
}

// SubmitLead handles POST /api/leads
// @Summary Submit a contact lead
// @Description Record a contact request from a visitor, optionally tied to a property
// @Tags leads
// @Accept json
// @Produce json
// @Param request body service.SubmitLeadRequest true "Lead details"
// @Success 201 {object} models.Lead "Stored lead"
// @Failure 400 {object} ErrorResponse "Invalid payload"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/leads [post]
func (h *LeadHandler) SubmitLead(c *gin.Context) {
	var req service.SubmitLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.NewInvalidInputError("invalid JSON body"))
		return
	}

	lead, err := h.leadService.Submit(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lead)
}

// ListLeads handles GET /api/leads
// @Summary List leads
// @Description List all leads, newest first, with the referenced property preloaded
// @Tags leads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Lead "Leads"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	leads, err := h.leadService.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, leads)
}
