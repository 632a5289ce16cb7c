package service

import (
	"fmt"
	"strings"

	"homefinder-backend/internal/database/models"
	apperrors "homefinder-backend/internal/errors"
	"homefinder-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// LeadService validates and persists contact-form submissions
type LeadService struct {
	repo      repository.LeadRepositoryInterface
	validator *validator.Validate
}

// Ensure LeadService implements LeadServiceInterface
var _ LeadServiceInterface = (*LeadService)(nil)

// NewLeadService creates a new LeadService
func NewLeadService(repo repository.LeadRepositoryInterface, validator *validator.Validate) *LeadService {
	return &LeadService{
		repo:      repo,
		validator: validator,
	}
}

// SubmitLeadRequest is a public contact-form submission
type SubmitLeadRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	PropertyID *uint  `json:"property_id"`
	Message    string `json:"message"`
}

// Submit validates the submission, normalizes it (trimmed fields, lowercased
// email, status defaulted to new), persists it and returns the stored row.
func (s *LeadService) Submit(req *SubmitLeadRequest) (*models.Lead, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	phone := strings.TrimSpace(req.Phone)

	if name == "" {
		return nil, apperrors.NewValidationError("name", "name is required")
	}
	if email == "" {
		return nil, apperrors.NewValidationError("email", "email is required")
	}
	if phone == "" {
		return nil, apperrors.NewValidationError("phone", "phone is required")
	}
	if err := s.validator.Var(email, "email"); err != nil {
		return nil, apperrors.NewValidationError("email", "must be a valid email address")
	}

	lead := &models.Lead{
		Name:       name,
		Email:      email,
		Phone:      phone,
		PropertyID: req.PropertyID,
		Status:     models.LeadStatusNew,
	}
	if message := strings.TrimSpace(req.Message); message != "" {
		lead.Message = &message
	}

	if err := s.repo.Create(lead); err != nil {
		return nil, apperrors.NewUpstreamError("database", fmt.Errorf("create lead: %w", err))
	}

	// Read back rather than echoing the input.
	stored, err := s.repo.GetByID(lead.ID)
	if err != nil {
		return nil, apperrors.NewUpstreamError("database", fmt.Errorf("read back lead %d: %w", lead.ID, err))
	}
	return stored, nil
}

// ListAll returns leads newest-first with the associated property and its
// location chain attached
func (s *LeadService) ListAll() ([]models.Lead, error) {
	leads, err := s.repo.GetAll()
	if err != nil {
		return nil, apperrors.NewUpstreamError("database", err)
	}
	return leads, nil
}
