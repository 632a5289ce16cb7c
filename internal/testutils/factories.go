package testutils

import (
	"fmt"
	"sync/atomic"

	"homefinder-backend/internal/database/models"
	"homefinder-backend/internal/slug"
)

// seq feeds unique suffixes so factories never collide on unique indexes
var seq uint64

func nextSeq() uint64 {
	return atomic.AddUint64(&seq, 1)
}

// StateFactory provides methods to create test State data
type StateFactory struct{}

// NewStateFactory creates a new StateFactory
func NewStateFactory() *StateFactory {
	return &StateFactory{}
}

// Create creates a test State with default values
func (f *StateFactory) Create() *models.State {
	return &models.State{
		Name: "São Paulo",
		UF:   "SP",
		Slug: "sao-paulo",
	}
}

// WithUF sets the UF and derives name and slug from it
func (f *StateFactory) WithUF(name, uf string) *models.State {
	return &models.State{
		Name: name,
		UF:   uf,
		Slug: slug.Make(name),
	}
}

// CityFactory provides methods to create test City data
type CityFactory struct{}

// NewCityFactory creates a new CityFactory
func NewCityFactory() *CityFactory {
	return &CityFactory{}
}

// Create creates a test City with default values
func (f *CityFactory) Create() *models.City {
	return &models.City{
		Name: "São Paulo",
		Slug: "sao-paulo",
	}
}

// WithState sets the state ID for the city
func (f *CityFactory) WithState(stateID uint) *models.City {
	city := f.Create()
	city.StateID = stateID
	return city
}

// WithName sets a custom name and matching slug
func (f *CityFactory) WithName(name string, stateID uint) *models.City {
	return &models.City{
		Name:    name,
		Slug:    slug.Make(name),
		StateID: stateID,
	}
}

// NeighborhoodFactory provides methods to create test Neighborhood data
type NeighborhoodFactory struct{}

// NewNeighborhoodFactory creates a new NeighborhoodFactory
func NewNeighborhoodFactory() *NeighborhoodFactory {
	return &NeighborhoodFactory{}
}

// Create creates a test Neighborhood with default values
func (f *NeighborhoodFactory) Create() *models.Neighborhood {
	return &models.Neighborhood{
		Name: "Moema",
		Slug: "moema",
	}
}

// WithCity sets the city ID for the neighborhood
func (f *NeighborhoodFactory) WithCity(cityID uint) *models.Neighborhood {
	n := f.Create()
	n.CityID = cityID
	return n
}

// WithName sets a custom name and matching slug
func (f *NeighborhoodFactory) WithName(name string, cityID uint) *models.Neighborhood {
	return &models.Neighborhood{
		Name:   name,
		Slug:   slug.Make(name),
		CityID: cityID,
	}
}

// PropertyFactory provides methods to create test Property data
type PropertyFactory struct{}

// NewPropertyFactory creates a new PropertyFactory
func NewPropertyFactory() *PropertyFactory {
	return &PropertyFactory{}
}

// Create creates a test Property with default values and a unique slug
func (f *PropertyFactory) Create() *models.Property {
	n := nextSeq()
	return &models.Property{
		Name:         fmt.Sprintf("Residencial Teste %d", n),
		Slug:         fmt.Sprintf("residencial-teste-%d", n),
		Description:  "Empreendimento de teste",
		Status:       models.PropertyStatusLaunching,
		PropertyType: models.PropertyTypeApartment,
		Address:      "Rua de Teste, 100",
		Bedrooms:     2,
		Bathrooms:    1,
		ParkingSpots: 1,
		AreaMin:      60,
		PriceMin:     450000,
	}
}

// WithNeighborhood sets the neighborhood ID for the property
func (f *PropertyFactory) WithNeighborhood(neighborhoodID uint) *models.Property {
	p := f.Create()
	p.NeighborhoodID = neighborhoodID
	return p
}

// Featured marks the property as featured
func (f *PropertyFactory) Featured(neighborhoodID uint) *models.Property {
	p := f.WithNeighborhood(neighborhoodID)
	p.Featured = true
	return p
}

// AmenityFactory provides methods to create test Amenity data
type AmenityFactory struct{}

// NewAmenityFactory creates a new AmenityFactory
func NewAmenityFactory() *AmenityFactory {
	return &AmenityFactory{}
}

// Create creates a test Amenity with a unique name
func (f *AmenityFactory) Create() *models.Amenity {
	return &models.Amenity{
		Name: fmt.Sprintf("Amenity %d", nextSeq()),
	}
}

// WithName sets a custom name for the amenity
func (f *AmenityFactory) WithName(name string) *models.Amenity {
	return &models.Amenity{Name: name}
}

// LeadFactory provides methods to create test Lead data
type LeadFactory struct{}

// NewLeadFactory creates a new LeadFactory
func NewLeadFactory() *LeadFactory {
	return &LeadFactory{}
}

// Create creates a test Lead with default values
func (f *LeadFactory) Create() *models.Lead {
	return &models.Lead{
		Name:   "Maria Silva",
		Email:  "maria.silva@example.com",
		Phone:  "+55 11 91234-5678",
		Status: models.LeadStatusNew,
	}
}

// WithProperty ties the lead to a property
func (f *LeadFactory) WithProperty(propertyID uint) *models.Lead {
	lead := f.Create()
	lead.PropertyID = &propertyID
	return lead
}

// FactorySet provides access to all factories
type FactorySet struct {
	State        *StateFactory
	City         *CityFactory
	Neighborhood *NeighborhoodFactory
	Property     *PropertyFactory
	Amenity      *AmenityFactory
	Lead         *LeadFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		State:        NewStateFactory(),
		City:         NewCityFactory(),
		Neighborhood: NewNeighborhoodFactory(),
		Property:     NewPropertyFactory(),
		Amenity:      NewAmenityFactory(),
		Lead:         NewLeadFactory(),
	}
}
