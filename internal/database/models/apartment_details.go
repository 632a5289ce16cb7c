package models

// ApartmentDetails carries development-level figures for apartment-type
// properties. One-to-one with Property, all fields optional.
type ApartmentDetails struct {
	BaseModel
	PropertyID  uint     `json:"property_id" gorm:"not null;uniqueIndex" validate:"required"`
	LandSize    *float64 `json:"land_size"`
	TowersCount *int     `json:"towers_count"`
	FloorsCount *int     `json:"floors_count"`
	UnitsCount  *int     `json:"units_count"`
}

// TableName returns the table name for ApartmentDetails
func (ApartmentDetails) TableName() string {
	return "apartment_details"
}
