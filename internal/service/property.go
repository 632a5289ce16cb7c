package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"homefinder-backend/internal/database/models"
	apperrors "homefinder-backend/internal/errors"
	"homefinder-backend/internal/logger"
	"homefinder-backend/internal/repository"
	"homefinder-backend/internal/slug"
	"homefinder-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// PropertyService handles business logic for properties: validation, slug
// generation, neighborhood resolution and the non-transactional fan-out to
// images, amenity links and apartment details
type PropertyService struct {
	repo         repository.PropertyRepositoryInterface
	locationRepo repository.LocationRepositoryInterface
	amenityRepo  repository.AmenityRepositoryInterface
	storage      storage.ObjectStorage
	validator    *validator.Validate
}

// Ensure PropertyService implements PropertyServiceInterface
var _ PropertyServiceInterface = (*PropertyService)(nil)

// NewPropertyService creates a new property service
func NewPropertyService(
	repo repository.PropertyRepositoryInterface,
	locationRepo repository.LocationRepositoryInterface,
	amenityRepo repository.AmenityRepositoryInterface,
	objectStorage storage.ObjectStorage,
	validator *validator.Validate,
) *PropertyService {
	return &PropertyService{
		repo:         repo,
		locationRepo: locationRepo,
		amenityRepo:  amenityRepo,
		storage:      objectStorage,
		validator:    validator,
	}
}

// ApartmentDetailsRequest carries the optional one-to-one apartment figures
type ApartmentDetailsRequest struct {
	LandSize    *float64 `json:"land_size"`
	TowersCount *int     `json:"towers_count"`
	FloorsCount *int     `json:"floors_count"`
	UnitsCount  *int     `json:"units_count"`
}

// CreatePropertyRequest is the JSON-encoded metadata field of the multipart
// admin create request. Either NeighborhoodID or NeighborhoodName+CityID
// must identify the neighborhood; a name with no match is created on the
// spot.
type CreatePropertyRequest struct {
	Name             string                   `json:"name"`
	Description      string                   `json:"description"`
	Status           models.PropertyStatus    `json:"status"`
	PropertyType     models.PropertyType      `json:"property_type"`
	Address          string                   `json:"address"`
	NeighborhoodID   *uint                    `json:"neighborhood_id"`
	NeighborhoodName string                   `json:"neighborhood_name"`
	CityID           *uint                    `json:"city_id"`
	Bedrooms         int                      `json:"bedrooms"`
	Bathrooms        int                      `json:"bathrooms"`
	Suites           int                      `json:"suites"`
	ParkingSpots     int                      `json:"parking_spots"`
	AreaMin          float64                  `json:"area_min"`
	AreaMax          *float64                 `json:"area_max"`
	PriceMin         float64                  `json:"price_min"`
	PriceMax         *float64                 `json:"price_max"`
	Featured         bool                     `json:"featured"`
	SEOTitle         *string                  `json:"seo_title"`
	SEODescription   *string                  `json:"seo_description"`
	Amenities        []uint                   `json:"amenities"`
	ApartmentDetails *ApartmentDetailsRequest `json:"apartment_details"`
}

// UpdatePropertyRequest carries field-wise updates. Nil fields are left
// untouched; images and amenities have no update path here.
type UpdatePropertyRequest struct {
	Name           *string                `json:"name"`
	Description    *string                `json:"description"`
	Status         *models.PropertyStatus `json:"status"`
	PropertyType   *models.PropertyType   `json:"property_type"`
	Address        *string                `json:"address"`
	NeighborhoodID *uint                  `json:"neighborhood_id"`
	Bedrooms       *int                   `json:"bedrooms"`
	Bathrooms      *int                   `json:"bathrooms"`
	Suites         *int                   `json:"suites"`
	ParkingSpots   *int                   `json:"parking_spots"`
	AreaMin        *float64               `json:"area_min"`
	AreaMax        *float64               `json:"area_max"`
	PriceMin       *float64               `json:"price_min"`
	PriceMax       *float64               `json:"price_max"`
	Featured       *bool                  `json:"featured"`
	SEOTitle       *string                `json:"seo_title"`
	SEODescription *string                `json:"seo_description"`
}

// CreatePropertyResult is the outcome of a create. The property row commits
// before its attachments; when an image or amenity write fails afterwards
// the property still exists and the failure is reported as a warning, not
// rolled back.
type CreatePropertyResult struct {
	Property *models.Property `json:"property"`
	Warnings []string         `json:"warnings,omitempty"`
}

// Create validates the request, resolves the neighborhood, generates a
// unique slug, persists the property row and then best-effort persists
// images (via object storage), amenity links and apartment details.
func (s *PropertyService) Create(ctx context.Context, req *CreatePropertyRequest, images []storage.ImageUpload) (*CreatePropertyResult, error) {
	log := logger.WithContext(ctx)

	if err := s.validateCreate(req); err != nil {
		return nil, err
	}

	neighborhoodID, err := s.resolveNeighborhood(req)
	if err != nil {
		return nil, err
	}

	uniqueSlug, err := s.generateUniqueSlug(req.Name)
	if err != nil {
		return nil, apperrors.NewUpstreamError("database", err)
	}

	status := req.Status
	if status == "" {
		status = models.PropertyStatusLaunching
	}
	propertyType := req.PropertyType
	if propertyType == "" {
		propertyType = models.PropertyTypeApartment
	}

	property := &models.Property{
		Name:           strings.TrimSpace(req.Name),
		Slug:           uniqueSlug,
		Description:    strings.TrimSpace(req.Description),
		Status:         status,
		PropertyType:   propertyType,
		Address:        strings.TrimSpace(req.Address),
		NeighborhoodID: neighborhoodID,
		Bedrooms:       req.Bedrooms,
		Bathrooms:      req.Bathrooms,
		Suites:         req.Suites,
		ParkingSpots:   req.ParkingSpots,
		AreaMin:        req.AreaMin,
		AreaMax:        req.AreaMax,
		PriceMin:       req.PriceMin,
		PriceMax:       req.PriceMax,
		Featured:       req.Featured,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
	}

	if err := s.repo.Create(property); err != nil {
		return nil, apperrors.NewUpstreamError("database", fmt.Errorf("create property: %w", err))
	}

	result := &CreatePropertyResult{Property: property}

	// The writes below are independent of the committed property row.
	if len(images) > 0 {
		if err := s.attachImages(ctx, property, images); err != nil {
			log.WithError(err).Warnf("property %d created but image persistence failed", property.ID)
			result.Warnings = append(result.Warnings, fmt.Sprintf("images not saved: %v", err))
		}
	}

	if len(req.Amenities) > 0 {
		linkIDs, unknown, err := s.resolveAmenityIDs(req.Amenities)
		if err != nil {
			log.WithError(err).Warnf("property %d created but amenity lookup failed", property.ID)
			result.Warnings = append(result.Warnings, fmt.Sprintf("amenities not saved: %v", err))
		} else {
			if len(unknown) > 0 {
				log.Warnf("property %d references unknown amenity ids %v", property.ID, unknown)
				result.Warnings = append(result.Warnings, fmt.Sprintf("unknown amenity ids skipped: %v", unknown))
			}
			if len(linkIDs) > 0 {
				if err := s.repo.AddAmenityLinks(property.ID, linkIDs); err != nil {
					log.WithError(err).Warnf("property %d created but amenity links failed", property.ID)
					result.Warnings = append(result.Warnings, fmt.Sprintf("amenities not saved: %v", err))
				}
			}
		}
	}

	if req.ApartmentDetails != nil && propertyType == models.PropertyTypeApartment {
		details := &models.ApartmentDetails{
			PropertyID:  property.ID,
			LandSize:    req.ApartmentDetails.LandSize,
			TowersCount: req.ApartmentDetails.TowersCount,
			FloorsCount: req.ApartmentDetails.FloorsCount,
			UnitsCount:  req.ApartmentDetails.UnitsCount,
		}
		if err := s.repo.CreateApartmentDetails(details); err != nil {
			log.WithError(err).Warnf("property %d created but apartment details failed", property.ID)
			result.Warnings = append(result.Warnings, fmt.Sprintf("apartment details not saved: %v", err))
		}
	}

	// Read back with relations so the caller sees the stored state.
	stored, err := s.repo.GetByID(property.ID)
	if err == nil {
		result.Property = stored
	}

	return result, nil
}

func (s *PropertyService) validateCreate(req *CreatePropertyRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return apperrors.NewValidationError("name", "name is required")
	}
	if req.PriceMin <= 0 {
		return apperrors.NewValidationError("price_min", "minimum price must be greater than zero")
	}
	if req.PriceMax != nil && *req.PriceMax < req.PriceMin {
		return apperrors.NewValidationError("price_max", "maximum price must not be below minimum price")
	}
	if req.AreaMin < 0 {
		return apperrors.NewValidationError("area_min", "minimum area must not be negative")
	}
	if req.AreaMax != nil && *req.AreaMax < req.AreaMin {
		return apperrors.NewValidationError("area_max", "maximum area must not be below minimum area")
	}
	if req.Bedrooms < 0 || req.Bathrooms < 0 || req.Suites < 0 || req.ParkingSpots < 0 {
		return apperrors.NewValidationError("counts", "room and parking counts must not be negative")
	}
	if req.Status != "" && !req.Status.Valid() {
		return apperrors.NewValidationError("status", fmt.Sprintf("unknown status %q", req.Status))
	}
	if req.PropertyType != "" && !req.PropertyType.Valid() {
		return apperrors.NewValidationError("property_type", fmt.Sprintf("unknown property type %q", req.PropertyType))
	}
	return nil
}

// resolveNeighborhood picks the explicit id when given, otherwise
// finds-or-creates by typed name within the city
func (s *PropertyService) resolveNeighborhood(req *CreatePropertyRequest) (uint, error) {
	if req.NeighborhoodID != nil && *req.NeighborhoodID != 0 {
		return *req.NeighborhoodID, nil
	}

	name := strings.TrimSpace(req.NeighborhoodName)
	if name != "" && req.CityID != nil && *req.CityID != 0 {
		neighborhood, err := s.locationRepo.FindOrCreateNeighborhood(name, *req.CityID)
		if err != nil {
			return 0, apperrors.NewUpstreamError("database", fmt.Errorf("resolve neighborhood %q: %w", name, err))
		}
		return neighborhood.ID, nil
	}

	return 0, apperrors.ErrNeighborhoodMissing
}

// resolveAmenityIDs splits the requested ids into ones present in the
// amenity table and ones nothing matches, preserving request order
func (s *PropertyService) resolveAmenityIDs(ids []uint) (valid, unknown []uint, err error) {
	known, err := s.amenityRepo.GetByIDs(ids)
	if err != nil {
		return nil, nil, err
	}
	knownSet := make(map[uint]bool, len(known))
	for _, amenity := range known {
		knownSet[amenity.ID] = true
	}
	for _, id := range ids {
		if knownSet[id] {
			valid = append(valid, id)
		} else {
			unknown = append(unknown, id)
		}
	}
	return valid, unknown, nil
}

// generateUniqueSlug tries the base slug, then base-1, base-2, ... checking
// existence after each candidate rather than precomputing a free suffix.
func (s *PropertyService) generateUniqueSlug(name string) (string, error) {
	base := slug.Make(name)
	candidate := base
	for counter := 1; ; counter++ {
		exists, err := s.repo.SlugExists(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}

// attachImages uploads the binaries and records the resulting URLs. Display
// order follows input position and the first image is flagged as main.
func (s *PropertyService) attachImages(ctx context.Context, property *models.Property, images []storage.ImageUpload) error {
	urls, err := s.storage.UploadPropertyImages(ctx, property.ID, images)
	if err != nil {
		return err
	}

	rows := make([]models.PropertyImage, len(urls))
	for i, url := range urls {
		alt := fmt.Sprintf("%s - image %d", property.Name, i+1)
		rows[i] = models.PropertyImage{
			PropertyID:   property.ID,
			URL:          url,
			AltText:      &alt,
			IsMain:       i == 0,
			DisplayOrder: i + 1,
		}
	}
	if err := s.repo.AddImages(rows); err != nil {
		return apperrors.NewUpstreamError("database", fmt.Errorf("save image rows: %w", err))
	}
	return nil
}

// Update applies the provided fields to the property row and returns the
// stored row. Images and amenities are never touched here.
func (s *PropertyService) Update(id uint, req *UpdatePropertyRequest) (*models.Property, error) {
	updates := map[string]interface{}{}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, apperrors.NewValidationError("name", "name must not be empty")
		}
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		updates["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown status %q", *req.Status))
		}
		updates["status"] = *req.Status
	}
	if req.PropertyType != nil {
		if !req.PropertyType.Valid() {
			return nil, apperrors.NewValidationError("property_type", fmt.Sprintf("unknown property type %q", *req.PropertyType))
		}
		updates["property_type"] = *req.PropertyType
	}
	if req.Address != nil {
		updates["address"] = strings.TrimSpace(*req.Address)
	}
	if req.NeighborhoodID != nil {
		updates["neighborhood_id"] = *req.NeighborhoodID
	}
	if req.Bedrooms != nil {
		updates["bedrooms"] = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		updates["bathrooms"] = *req.Bathrooms
	}
	if req.Suites != nil {
		updates["suites"] = *req.Suites
	}
	if req.ParkingSpots != nil {
		updates["parking_spots"] = *req.ParkingSpots
	}
	if req.AreaMin != nil {
		updates["area_min"] = *req.AreaMin
	}
	if req.AreaMax != nil {
		updates["area_max"] = *req.AreaMax
	}
	if req.PriceMin != nil {
		if *req.PriceMin <= 0 {
			return nil, apperrors.NewValidationError("price_min", "minimum price must be greater than zero")
		}
		updates["price_min"] = *req.PriceMin
	}
	if req.PriceMax != nil {
		updates["price_max"] = *req.PriceMax
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
	}
	if req.SEOTitle != nil {
		updates["seo_title"] = *req.SEOTitle
	}
	if req.SEODescription != nil {
		updates["seo_description"] = *req.SEODescription
	}

	if len(updates) > 0 {
		if err := s.repo.Update(id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrPropertyNotFound
			}
			return nil, apperrors.NewUpstreamError("database", fmt.Errorf("update property %d: %w", id, err))
		}
	}

	return s.GetByID(id)
}

// Delete removes, in order, storage-backed images, image rows, amenity
// links, the apartment-details row and finally the property row. Each step
// is best-effort: an early failure is logged and does not abort the later
// steps.
func (s *PropertyService) Delete(ctx context.Context, id uint) error {
	log := logger.WithContext(ctx)

	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPropertyNotFound
		}
		return apperrors.NewUpstreamError("database", err)
	}

	if err := s.storage.DeletePropertyImages(ctx, id); err != nil {
		log.WithError(err).Warnf("failed to delete storage objects for property %d", id)
	}
	if err := s.repo.DeleteImages(id); err != nil {
		log.WithError(err).Warnf("failed to delete image rows for property %d", id)
	}
	if err := s.repo.DeleteAmenityLinks(id); err != nil {
		log.WithError(err).Warnf("failed to delete amenity links for property %d", id)
	}
	if err := s.repo.DeleteApartmentDetails(id); err != nil {
		log.WithError(err).Warnf("failed to delete apartment details for property %d", id)
	}

	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPropertyNotFound
		}
		return apperrors.NewUpstreamError("database", fmt.Errorf("delete property %d: %w", id, err))
	}
	return nil
}

// GetByID returns a property with every relation including apartment details
func (s *PropertyService) GetByID(id uint) (*models.Property, error) {
	property, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPropertyNotFound
		}
		return nil, apperrors.NewUpstreamError("database", err)
	}
	return property, nil
}

// GetBySlugPath returns a property addressed by its full location slug path
func (s *PropertyService) GetBySlugPath(stateSlug, citySlug, neighborhoodSlug, propertySlug string) (*models.Property, error) {
	property, err := s.repo.GetBySlugPath(stateSlug, citySlug, neighborhoodSlug, propertySlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPropertyNotFound
		}
		return nil, apperrors.NewUpstreamError("database", err)
	}
	return property, nil
}

// GetAll returns every property with relations, newest first. Admin read:
// failures bubble to the caller.
func (s *PropertyService) GetAll() ([]models.Property, error) {
	properties, err := s.repo.GetAll()
	if err != nil {
		return nil, apperrors.NewUpstreamError("database", err)
	}
	return properties, nil
}

// ListPublic returns filtered properties for public pages, degrading to an
// empty list on query failure so the page still renders.
func (s *PropertyService) ListPublic(filter repository.PropertyFilter) []models.Property {
	properties, err := s.repo.List(filter)
	if err != nil {
		logger.New().WithError(err).Error("failed to list properties, degrading to empty result")
		return []models.Property{}
	}
	return properties
}
