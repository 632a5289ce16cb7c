package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"homefinder-backend/internal/cep"
	"homefinder-backend/internal/database/models"
	apperrors "homefinder-backend/internal/errors"
	"homefinder-backend/internal/logger"
	"homefinder-backend/internal/repository"

	"gorm.io/gorm"
)

// LocationService provides state/city/neighborhood lookups, idempotent
// neighborhood creation and CEP resolution
type LocationService struct {
	repo repository.LocationRepositoryInterface
	cep  CEPLookup
}

// Ensure LocationService implements LocationServiceInterface
var _ LocationServiceInterface = (*LocationService)(nil)

// NewLocationService creates a new LocationService
func NewLocationService(repo repository.LocationRepositoryInterface, cepClient CEPLookup) *LocationService {
	return &LocationService{
		repo: repo,
		cep:  cepClient,
	}
}

// ListStates returns all states ordered by name. This read feeds public
// pages, so a query failure is logged and degraded to an empty list rather
// than surfaced.
func (s *LocationService) ListStates() []models.State {
	states, err := s.repo.ListStates()
	if err != nil {
		logger.New().WithError(err).Error("failed to list states, degrading to empty result")
		return []models.State{}
	}
	return states
}

// GetStateBySlug returns the state with the given slug
func (s *LocationService) GetStateBySlug(slug string) (*models.State, error) {
	state, err := s.repo.GetStateBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStateNotFound
		}
		return nil, apperrors.NewUpstreamError("database", err)
	}
	return state, nil
}

// ListCitiesByState returns the cities of a state ordered by name
func (s *LocationService) ListCitiesByState(stateID uint) ([]models.City, error) {
	cities, err := s.repo.ListCitiesByState(stateID)
	if err != nil {
		return nil, apperrors.NewUpstreamError("database", err)
	}
	return cities, nil
}

// GetCityBySlug returns the city matching both slugs. A city slug is only
// unique within its state.
func (s *LocationService) GetCityBySlug(stateSlug, citySlug string) (*models.City, error) {
	city, err := s.repo.GetCityBySlug(stateSlug, citySlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCityNotFound
		}
		return nil, apperrors.NewUpstreamError("database", err)
	}
	return city, nil
}

// ListNeighborhoodsByCity returns the neighborhoods of a city ordered by name
func (s *LocationService) ListNeighborhoodsByCity(cityID uint) ([]models.Neighborhood, error) {
	neighborhoods, err := s.repo.ListNeighborhoodsByCity(cityID)
	if err != nil {
		return nil, apperrors.NewUpstreamError("database", err)
	}
	return neighborhoods, nil
}

// GetNeighborhoodBySlug returns the neighborhood matching the full slug chain
func (s *LocationService) GetNeighborhoodBySlug(stateSlug, citySlug, neighborhoodSlug string) (*models.Neighborhood, error) {
	neighborhood, err := s.repo.GetNeighborhoodBySlug(stateSlug, citySlug, neighborhoodSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNeighborhoodNotFound
		}
		return nil, apperrors.NewUpstreamError("database", err)
	}
	return neighborhood, nil
}

// FindOrCreateNeighborhood returns the neighborhood with the given name in
// the city, creating it when absent. Two sequential calls with the same
// arguments return the same row.
func (s *LocationService) FindOrCreateNeighborhood(name string, cityID uint) (*models.Neighborhood, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("name", "neighborhood name is required")
	}
	if cityID == 0 {
		return nil, apperrors.NewValidationError("city_id", "city is required")
	}

	neighborhood, err := s.repo.FindOrCreateNeighborhood(name, cityID)
	if err != nil {
		return nil, apperrors.NewUpstreamError("database", fmt.Errorf("find or create neighborhood %q: %w", name, err))
	}
	return neighborhood, nil
}

// ResolveCEP resolves a postal code to a free-text address
func (s *LocationService) ResolveCEP(ctx context.Context, code string) (*cep.Address, error) {
	return s.cep.Lookup(ctx, code)
}

// CEPSelectionResponse is the result of the cascading selection flow: the
// resolved address plus whichever internal location identifiers could be
// matched. A nil NeighborhoodID with a non-empty NeighborhoodName signals
// "to be created on submit".
type CEPSelectionResponse struct {
	CEP              string `json:"cep"`
	Street           string `json:"street"`
	NeighborhoodName string `json:"neighborhood_name"`
	StateID          *uint  `json:"state_id"`
	CityID           *uint  `json:"city_id"`
	NeighborhoodID   *uint  `json:"neighborhood_id"`
}

// ResolveCEPSelection runs the full cascade: resolve the CEP, match the
// returned UF against the state table, load that state's cities and match
// the city name, then load that city's neighborhoods and match the
// neighborhood name case-insensitively. Each step starts only after the
// previous lookup has returned; an unmatched state or city short-circuits
// the deeper steps but the street and neighborhood free text are always
// populated from the provider.
func (s *LocationService) ResolveCEPSelection(ctx context.Context, code string) (*CEPSelectionResponse, error) {
	address, err := s.cep.Lookup(ctx, code)
	if err != nil {
		return nil, err
	}

	selection := &CEPSelectionResponse{
		CEP:              address.CEP,
		Street:           address.Street,
		NeighborhoodName: address.Neighborhood,
	}

	state, err := s.repo.GetStateByUF(address.UF)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return selection, nil
		}
		return nil, apperrors.NewUpstreamError("database", err)
	}
	selection.StateID = &state.ID

	cities, err := s.repo.ListCitiesByState(state.ID)
	if err != nil {
		return nil, apperrors.NewUpstreamError("database", err)
	}
	var city *models.City
	for i := range cities {
		if cities[i].Name == address.City {
			city = &cities[i]
			break
		}
	}
	if city == nil {
		return selection, nil
	}
	selection.CityID = &city.ID

	neighborhoods, err := s.repo.ListNeighborhoodsByCity(city.ID)
	if err != nil {
		return nil, apperrors.NewUpstreamError("database", err)
	}
	for i := range neighborhoods {
		if strings.EqualFold(neighborhoods[i].Name, address.Neighborhood) {
			selection.NeighborhoodID = &neighborhoods[i].ID
			selection.NeighborhoodName = neighborhoods[i].Name
			break
		}
	}

	return selection, nil
}
