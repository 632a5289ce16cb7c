package repository

import (
	"homefinder-backend/internal/database/models"

	"gorm.io/gorm"
)

// AmenityRepository handles database operations for the amenity lookup table
type AmenityRepository struct {
	db *gorm.DB
}

// Ensure AmenityRepository implements AmenityRepositoryInterface
var _ AmenityRepositoryInterface = (*AmenityRepository)(nil)

// NewAmenityRepository creates a new amenity repository
func NewAmenityRepository(db *gorm.DB) *AmenityRepository {
	return &AmenityRepository{db: db}
}

// GetAll retrieves all amenities ordered by name
func (r *AmenityRepository) GetAll() ([]models.Amenity, error) {
	var amenities []models.Amenity
	if err := r.db.Order("name ASC").Find(&amenities).Error; err != nil {
		return nil, err
	}
	return amenities, nil
}

// GetByIDs retrieves the amenities matching the given ids. Unknown ids are
// silently absent from the result; callers compare lengths when they care.
func (r *AmenityRepository) GetByIDs(ids []uint) ([]models.Amenity, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var amenities []models.Amenity
	if err := r.db.Where("id IN ?", ids).Find(&amenities).Error; err != nil {
		return nil, err
	}
	return amenities, nil
}
