package repository

import (
	"homefinder-backend/internal/database/models"

	"gorm.io/gorm"
)

// LeadRepository handles database operations for leads
type LeadRepository struct {
	db *gorm.DB
}

// Ensure LeadRepository implements LeadRepositoryInterface
var _ LeadRepositoryInterface = (*LeadRepository)(nil)

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// Create inserts a lead
func (r *LeadRepository) Create(lead *models.Lead) error {
	return r.db.Omit("Property").Create(lead).Error
}

// GetByID retrieves a lead by id
func (r *LeadRepository) GetByID(id uint) (*models.Lead, error) {
	var lead models.Lead
	if err := r.db.First(&lead, id).Error; err != nil {
		return nil, err
	}
	return &lead, nil
}

// GetAll retrieves all leads newest first, with the associated property and
// its location chain attached for display
func (r *LeadRepository) GetAll() ([]models.Lead, error) {
	var leads []models.Lead
	err := r.db.
		Preload("Property.Neighborhood.City.State").
		Order("created_at DESC").
		Find(&leads).Error
	if err != nil {
		return nil, err
	}
	return leads, nil
}
