package repository

import (
	"homefinder-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// LocationRepositoryInterface defines the interface for state, city and
// neighborhood lookups. Lookup methods return gorm.ErrRecordNotFound on a
// miss; the service layer translates that into typed errors.
type LocationRepositoryInterface interface {
	ListStates() ([]models.State, error)
	GetStateBySlug(slug string) (*models.State, error)
	GetStateByUF(uf string) (*models.State, error)
	ListCitiesByState(stateID uint) ([]models.City, error)
	GetCityBySlug(stateSlug, citySlug string) (*models.City, error)
	ListNeighborhoodsByCity(cityID uint) ([]models.Neighborhood, error)
	GetNeighborhoodBySlug(stateSlug, citySlug, neighborhoodSlug string) (*models.Neighborhood, error)
	FindOrCreateNeighborhood(name string, cityID uint) (*models.Neighborhood, error)
}

// PropertyFilter narrows property listings. Location slugs are optional and
// independently applicable; price bounds apply against price_min only.
type PropertyFilter struct {
	StateSlug        string
	CitySlug         string
	NeighborhoodSlug string
	Statuses         []models.PropertyStatus
	Bedrooms         []int
	MinPrice         *float64
	MaxPrice         *float64
	Featured         *bool
	Limit            int
}

// PropertyRepositoryInterface defines the interface for property persistence
// including the property's dependent rows. Image, amenity-link and
// apartment-details writes are independent of the property row on purpose;
// there is no transactional guarantee across them.
type PropertyRepositoryInterface interface {
	Create(property *models.Property) error
	GetByID(id uint) (*models.Property, error)
	GetBySlugPath(stateSlug, citySlug, neighborhoodSlug, propertySlug string) (*models.Property, error)
	GetAll() ([]models.Property, error)
	List(filter PropertyFilter) ([]models.Property, error)
	SlugExists(slug string) (bool, error)
	Update(id uint, updates map[string]interface{}) error
	Delete(id uint) error

	AddImages(images []models.PropertyImage) error
	DeleteImages(propertyID uint) error
	AddAmenityLinks(propertyID uint, amenityIDs []uint) error
	DeleteAmenityLinks(propertyID uint) error
	CreateApartmentDetails(details *models.ApartmentDetails) error
	DeleteApartmentDetails(propertyID uint) error
}

// AmenityRepositoryInterface defines the interface for the amenity lookup table
type AmenityRepositoryInterface interface {
	GetAll() ([]models.Amenity, error)
	GetByIDs(ids []uint) ([]models.Amenity, error)
}

// LeadRepositoryInterface defines the interface for lead persistence
type LeadRepositoryInterface interface {
	Create(lead *models.Lead) error
	GetByID(id uint) (*models.Lead, error)
	GetAll() ([]models.Lead, error)
}
