package service

import (
	"homefinder-backend/internal/database/models"
	apperrors "homefinder-backend/internal/errors"
	"homefinder-backend/internal/repository"
)

// AmenityService exposes the amenity lookup table
type AmenityService struct {
	repo repository.AmenityRepositoryInterface
}

// Ensure AmenityService implements AmenityServiceInterface
var _ AmenityServiceInterface = (*AmenityService)(nil)

// NewAmenityService creates a new AmenityService
func NewAmenityService(repo repository.AmenityRepositoryInterface) *AmenityService {
	return &AmenityService{repo: repo}
}

// ListAmenities returns all amenities ordered by name
func (s *AmenityService) ListAmenities() ([]models.Amenity, error) {
	amenities, err := s.repo.GetAll()
	if err != nil {
		return nil, apperrors.NewUpstreamError("database", err)
	}
	return amenities, nil
}
