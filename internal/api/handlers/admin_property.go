package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"homefinder-backend/internal/errors"
	"homefinder-backend/internal/logger"
	"homefinder-backend/internal/service"
	"homefinder-backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// maxUploadSize caps the total multipart payload at 64 MiB.
const maxUploadSize = 64 << 20

// AdminPropertyHandler handles the admin property CRUD endpoints
type AdminPropertyHandler struct {
	propertyService service.PropertyServiceInterface
}

// NewAdminPropertyHandler creates a new admin property handler
func NewAdminPropertyHandler(propertyService service.PropertyServiceInterface) *AdminPropertyHandler {
	return &AdminPropertyHandler{
		propertyService: propertyService,
	}
}

// PropertyWriteResponse is returned from create and update operations. Warnings
// lists attachment steps that failed without aborting the operation.
type PropertyWriteResponse struct {
	Property interface{} `json:"property"`
	Warnings []string    `json:"warnings,omitempty"`
}

// ListAllProperties handles GET /api/admin/properties
// @Summary List all properties
// @Description List every property regardless of status, newest first
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Property "Properties"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/admin/properties [get]
func (h *AdminPropertyHandler) ListAllProperties(c *gin.Context) {
	properties, err := h.propertyService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, properties)
}

// GetProperty handles GET /api/admin/properties/:id
// @Summary Get a property by ID
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Success 200 {object} models.Property "Property"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Property not found"
// @Router /api/admin/properties/{id} [get]
func (h *AdminPropertyHandler) GetProperty(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	property, err := h.propertyService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, property)
}

// CreateProperty handles POST /api/admin/properties
// @Summary Create a property
// @Description Create a property from a multipart form. The propertyData field carries the JSON payload; image files are attached as image_0, image_1 and so on.
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param propertyData formData string true "Property payload as JSON"
// @Success 201 {object} PropertyWriteResponse "Created property"
// @Failure 400 {object} ErrorResponse "Invalid payload"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/admin/properties [post]
func (h *AdminPropertyHandler) CreateProperty(c *gin.Context) {
	log := logger.WithContext(c.Request.Context())

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)
	if err := c.Request.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(c, errors.NewInvalidInputError("request body must be multipart/form-data"))
		return
	}

	var req service.CreatePropertyRequest
	if err := decodePropertyData(c, &req); err != nil {
		respondError(c, err)
		return
	}

	images, err := collectImageParts(c.Request.MultipartForm)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.propertyService.Create(c.Request.Context(), &req, images)
	if err != nil {
		respondError(c, err)
		return
	}

	if len(result.Warnings) > 0 {
		log.WithField("warnings", result.Warnings).Warn("Property created with incomplete attachments")
	}
	c.JSON(http.StatusCreated, PropertyWriteResponse{
		Property: result.Property,
		Warnings: result.Warnings,
	})
}

// UpdateProperty handles PUT /api/admin/properties/:id
// @Summary Update a property
// @Description Apply a partial update to a property. Only present fields are touched.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Param request body service.UpdatePropertyRequest true "Fields to update"
// @Success 200 {object} models.Property "Updated property"
// @Failure 400 {object} ErrorResponse "Invalid payload"
// @Failure 404 {object} ErrorResponse "Property not found"
// @Router /api/admin/properties/{id} [put]
func (h *AdminPropertyHandler) UpdateProperty(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req service.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.NewInvalidInputError("invalid JSON body"))
		return
	}

	property, err := h.propertyService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, property)
}

// DeleteProperty handles DELETE /api/admin/properties/:id
// @Summary Delete a property
// @Description Delete a property together with its stored images, amenity links and apartment details
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Success 200 {object} map[string]string "Deletion confirmation"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Property not found"
// @Router /api/admin/properties/{id} [delete]
func (h *AdminPropertyHandler) DeleteProperty(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.propertyService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "property deleted"})
}

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewInvalidInputError("id must be a positive integer")
	}
	return uint(id), nil
}

func decodePropertyData(c *gin.Context, dst interface{}) error {
	raw := c.PostForm("propertyData")
	if raw == "" {
		return errors.NewValidationError("propertyData", "is required")
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return errors.NewInvalidInputError("propertyData must be valid JSON")
	}
	return nil
}

// collectImageParts reads the indexed image_N file parts in order, stopping at
// the first missing index.
func collectImageParts(form *multipart.Form) ([]storage.ImageUpload, error) {
	if form == nil {
		return nil, nil
	}

	var uploads []storage.ImageUpload
	for i := 0; ; i++ {
		headers, ok := form.File[fmt.Sprintf("image_%d", i)]
		if !ok || len(headers) == 0 {
			break
		}
		header := headers[0]

		file, err := header.Open()
		if err != nil {
			return nil, errors.NewInvalidInputError(fmt.Sprintf("image_%d could not be read", i))
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, errors.NewInvalidInputError(fmt.Sprintf("image_%d could not be read", i))
		}

		uploads = append(uploads, storage.ImageUpload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return uploads, nil
}
