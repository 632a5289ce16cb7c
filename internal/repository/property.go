package repository

import (
	"errors"

	"homefinder-backend/internal/database/models"

	"gorm.io/gorm"
)

// PropertyRepository handles database operations for properties and their
// dependent rows (images, amenity links, apartment details)
type PropertyRepository struct {
	db *gorm.DB
}

// Ensure PropertyRepository implements PropertyRepositoryInterface
var _ PropertyRepositoryInterface = (*PropertyRepository)(nil)

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// withRelations preloads the location chain, ordered images and the
// flattened amenity list. Amenities always come back as a flat []Amenity,
// never as join rows.
func (r *PropertyRepository) withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Neighborhood.City.State").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Preload("Amenities", func(db *gorm.DB) *gorm.DB {
			return db.Order("amenities.name ASC")
		})
}

// Create inserts the property row only. Images, amenity links and apartment
// details are written by their own methods.
func (r *PropertyRepository) Create(property *models.Property) error {
	return r.db.Omit("Images", "Amenities", "ApartmentDetails", "Neighborhood").Create(property).Error
}

// GetByID retrieves a property with all relations including apartment details
func (r *PropertyRepository) GetByID(id uint) (*models.Property, error) {
	var property models.Property
	err := r.withRelations(r.db).
		Preload("ApartmentDetails").
		First(&property, "properties.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// GetBySlugPath retrieves a property by its full location slug path
func (r *PropertyRepository) GetBySlugPath(stateSlug, citySlug, neighborhoodSlug, propertySlug string) (*models.Property, error) {
	var property models.Property
	err := r.withRelations(r.db).
		Preload("ApartmentDetails").
		Joins("JOIN neighborhoods ON neighborhoods.id = properties.neighborhood_id").
		Joins("JOIN cities ON cities.id = neighborhoods.city_id").
		Joins("JOIN states ON states.id = cities.state_id").
		Where("properties.slug = ? AND neighborhoods.slug = ? AND cities.slug = ? AND states.slug = ?",
			propertySlug, neighborhoodSlug, citySlug, stateSlug).
		First(&property).Error
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// GetAll retrieves every property with relations, newest first
func (r *PropertyRepository) GetAll() ([]models.Property, error) {
	var properties []models.Property
	err := r.withRelations(r.db).
		Order("properties.created_at DESC").
		Find(&properties).Error
	if err != nil {
		return nil, err
	}
	return properties, nil
}

// List retrieves properties narrowed by location slugs and filters, newest
// first. Every filter is optional and independently applicable.
func (r *PropertyRepository) List(filter PropertyFilter) ([]models.Property, error) {
	q := r.withRelations(r.db.Model(&models.Property{}))

	if filter.StateSlug != "" || filter.CitySlug != "" || filter.NeighborhoodSlug != "" {
		q = q.
			Joins("JOIN neighborhoods ON neighborhoods.id = properties.neighborhood_id").
			Joins("JOIN cities ON cities.id = neighborhoods.city_id").
			Joins("JOIN states ON states.id = cities.state_id")
		if filter.StateSlug != "" {
			q = q.Where("states.slug = ?", filter.StateSlug)
		}
		if filter.CitySlug != "" {
			q = q.Where("cities.slug = ?", filter.CitySlug)
		}
		if filter.NeighborhoodSlug != "" {
			q = q.Where("neighborhoods.slug = ?", filter.NeighborhoodSlug)
		}
	}

	if len(filter.Statuses) > 0 {
		q = q.Where("properties.status IN ?", filter.Statuses)
	}
	if len(filter.Bedrooms) > 0 {
		q = q.Where("properties.bedrooms IN ?", filter.Bedrooms)
	}
	if filter.MinPrice != nil {
		q = q.Where("properties.price_min >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("properties.price_min <= ?", *filter.MaxPrice)
	}
	if filter.Featured != nil {
		q = q.Where("properties.featured = ?", *filter.Featured)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var properties []models.Property
	if err := q.Order("properties.created_at DESC").Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

// SlugExists reports whether a property already uses the slug
func (r *PropertyRepository) SlugExists(slug string) (bool, error) {
	var property models.Property
	err := r.db.Select("id").First(&property, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Update applies a field map against the property row. The slug never
// changes on update and images/amenities are untouched.
func (r *PropertyRepository) Update(id uint, updates map[string]interface{}) error {
	result := r.db.Model(&models.Property{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the property row only; callers remove dependent rows first
func (r *PropertyRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Property{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AddImages inserts image rows in one batch
func (r *PropertyRepository) AddImages(images []models.PropertyImage) error {
	if len(images) == 0 {
		return nil
	}
	return r.db.Create(&images).Error
}

// DeleteImages removes all image rows of a property
func (r *PropertyRepository) DeleteImages(propertyID uint) error {
	return r.db.Where("property_id = ?", propertyID).Delete(&models.PropertyImage{}).Error
}

// AddAmenityLinks inserts join rows between a property and amenities
func (r *PropertyRepository) AddAmenityLinks(propertyID uint, amenityIDs []uint) error {
	if len(amenityIDs) == 0 {
		return nil
	}
	links := make([]models.PropertyAmenity, len(amenityIDs))
	for i, amenityID := range amenityIDs {
		links[i] = models.PropertyAmenity{PropertyID: propertyID, AmenityID: amenityID}
	}
	return r.db.Create(&links).Error
}

// DeleteAmenityLinks removes all amenity join rows of a property
func (r *PropertyRepository) DeleteAmenityLinks(propertyID uint) error {
	return r.db.Where("property_id = ?", propertyID).Delete(&models.PropertyAmenity{}).Error
}

// CreateApartmentDetails inserts the one-to-one apartment details row
func (r *PropertyRepository) CreateApartmentDetails(details *models.ApartmentDetails) error {
	return r.db.Create(details).Error
}

// DeleteApartmentDetails removes the apartment details row if present
func (r *PropertyRepository) DeleteApartmentDetails(propertyID uint) error {
	return r.db.Where("property_id = ?", propertyID).Delete(&models.ApartmentDetails{}).Error
}
