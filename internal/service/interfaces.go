package service

import (
	"context"

	"homefinder-backend/internal/cep"
	"homefinder-backend/internal/database/models"
	"homefinder-backend/internal/repository"
	"homefinder-backend/internal/storage"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CEPLookup is the postal-code resolver used by the location service.
// cep.Client implements it.
type CEPLookup interface {
	Lookup(ctx context.Context, code string) (*cep.Address, error)
}

// LocationServiceInterface defines the interface for the location service
type LocationServiceInterface interface {
	ListStates() []models.State
	GetStateBySlug(slug string) (*models.State, error)
	ListCitiesByState(stateID uint) ([]models.City, error)
	GetCityBySlug(stateSlug, citySlug string) (*models.City, error)
	ListNeighborhoodsByCity(cityID uint) ([]models.Neighborhood, error)
	GetNeighborhoodBySlug(stateSlug, citySlug, neighborhoodSlug string) (*models.Neighborhood, error)
	FindOrCreateNeighborhood(name string, cityID uint) (*models.Neighborhood, error)
	ResolveCEP(ctx context.Context, code string) (*cep.Address, error)
	ResolveCEPSelection(ctx context.Context, code string) (*CEPSelectionResponse, error)
}

// PropertyServiceInterface defines the interface for the property service
type PropertyServiceInterface interface {
	Create(ctx context.Context, req *CreatePropertyRequest, images []storage.ImageUpload) (*CreatePropertyResult, error)
	Update(id uint, req *UpdatePropertyRequest) (*models.Property, error)
	Delete(ctx context.Context, id uint) error
	GetByID(id uint) (*models.Property, error)
	GetBySlugPath(stateSlug, citySlug, neighborhoodSlug, propertySlug string) (*models.Property, error)
	GetAll() ([]models.Property, error)
	ListPublic(filter repository.PropertyFilter) []models.Property
}

// LeadServiceInterface defines the interface for the lead service
type LeadServiceInterface interface {
	Submit(req *SubmitLeadRequest) (*models.Lead, error)
	ListAll() ([]models.Lead, error)
}

// AmenityServiceInterface defines the interface for the amenity service
type AmenityServiceInterface interface {
	ListAmenities() ([]models.Amenity, error)
}
