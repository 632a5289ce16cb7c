package repository

import (
	"errors"
	"strings"

	"homefinder-backend/internal/database/models"
	"homefinder-backend/internal/slug"

	"gorm.io/gorm"
)

// LocationRepository handles database operations for states, cities and
// neighborhoods
type LocationRepository struct {
	db *gorm.DB
}

// Ensure LocationRepository implements LocationRepositoryInterface
var _ LocationRepositoryInterface = (*LocationRepository)(nil)

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// ListStates retrieves all states ordered by name
func (r *LocationRepository) ListStates() ([]models.State, error) {
	var states []models.State
	if err := r.db.Order("name ASC").Find(&states).Error; err != nil {
		return nil, err
	}
	return states, nil
}

// GetStateBySlug retrieves a state by its slug
func (r *LocationRepository) GetStateBySlug(stateSlug string) (*models.State, error) {
	var state models.State
	if err := r.db.First(&state, "slug = ?", stateSlug).Error; err != nil {
		return nil, err
	}
	return &state, nil
}

// GetStateByUF retrieves a state by its two-letter code
func (r *LocationRepository) GetStateByUF(uf string) (*models.State, error) {
	var state models.State
	if err := r.db.First(&state, "uf = ?", strings.ToUpper(strings.TrimSpace(uf))).Error; err != nil {
		return nil, err
	}
	return &state, nil
}

// ListCitiesByState retrieves the cities of a state ordered by name
func (r *LocationRepository) ListCitiesByState(stateID uint) ([]models.City, error) {
	var cities []models.City
	if err := r.db.Where("state_id = ?", stateID).Order("name ASC").Find(&cities).Error; err != nil {
		return nil, err
	}
	return cities, nil
}

// GetCityBySlug retrieves a city by slug, joined through its state. The city
// slug is only unique within a state, so both slugs must match at once.
func (r *LocationRepository) GetCityBySlug(stateSlug, citySlug string) (*models.City, error) {
	var city models.City
	err := r.db.
		Joins("JOIN states ON states.id = cities.state_id").
		Where("cities.slug = ? AND states.slug = ?", citySlug, stateSlug).
		Preload("State").
		First(&city).Error
	if err != nil {
		return nil, err
	}
	return &city, nil
}

// ListNeighborhoodsByCity retrieves the neighborhoods of a city ordered by name
func (r *LocationRepository) ListNeighborhoodsByCity(cityID uint) ([]models.Neighborhood, error) {
	var neighborhoods []models.Neighborhood
	if err := r.db.Where("city_id = ?", cityID).Order("name ASC").Find(&neighborhoods).Error; err != nil {
		return nil, err
	}
	return neighborhoods, nil
}

// GetNeighborhoodBySlug retrieves a neighborhood through the full
// state/city/neighborhood slug chain
func (r *LocationRepository) GetNeighborhoodBySlug(stateSlug, citySlug, neighborhoodSlug string) (*models.Neighborhood, error) {
	var neighborhood models.Neighborhood
	err := r.db.
		Joins("JOIN cities ON cities.id = neighborhoods.city_id").
		Joins("JOIN states ON states.id = cities.state_id").
		Where("neighborhoods.slug = ? AND cities.slug = ? AND states.slug = ?",
			neighborhoodSlug, citySlug, stateSlug).
		Preload("City.State").
		First(&neighborhood).Error
	if err != nil {
		return nil, err
	}
	return &neighborhood, nil
}

// FindOrCreateNeighborhood returns the neighborhood with the given name in
// the city, creating it when absent. The insert races through the unique
// index on (city_id, lower(name)): ON CONFLICT DO NOTHING followed by a
// re-read, so concurrent calls with the same name converge on one row.
func (r *LocationRepository) FindOrCreateNeighborhood(name string, cityID uint) (*models.Neighborhood, error) {
	name = strings.TrimSpace(name)

	var neighborhood models.Neighborhood
	err := r.db.
		Where("city_id = ? AND lower(name) = lower(?)", cityID, name).
		First(&neighborhood).Error
	if err == nil {
		return &neighborhood, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	res := r.db.Exec(
		`INSERT INTO neighborhoods (name, slug, city_id, created_at, updated_at)
		 VALUES (?, ?, ?, now(), now())
		 ON CONFLICT (city_id, lower(name)) DO NOTHING`,
		name, slug.Make(name), cityID,
	)
	if res.Error != nil {
		return nil, res.Error
	}

	// Read back whichever row won the insert.
	if err := r.db.
		Where("city_id = ? AND lower(name) = lower(?)", cityID, name).
		First(&neighborhood).Error; err != nil {
		return nil, err
	}
	return &neighborhood, nil
}
