package models

// Lead is a contact-form submission, optionally tied to a property. Leads
// are append-only from the public side; status is the only field admins
// mutate.
type Lead struct {
	BaseModel
	Name       string     `json:"name" gorm:"size:150;not null" validate:"required"`
	Email      string     `json:"email" gorm:"size:200;not null" validate:"required,email"`
	Phone      string     `json:"phone" gorm:"size:30;not null" validate:"required"`
	PropertyID *uint      `json:"property_id" gorm:"index"`
	Message    *string    `json:"message" gorm:"type:text"`
	Status     LeadStatus `json:"status" gorm:"size:20;not null;default:new"`

	Property *Property `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
}

// TableName returns the table name for Lead
func (Lead) TableName() string {
	return "leads"
}
