package models

// Amenity is a flat lookup table (pool, gym, playground...) linked to
// properties through property_amenities. Seed data.
type Amenity struct {
	BaseModel
	Name string  `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required"`
	Icon *string `json:"icon" gorm:"size:50"`
}

// TableName returns the table name for Amenity
func (Amenity) TableName() string {
	return "amenities"
}

// PropertyAmenity is the join row between properties and amenities. It is
// declared explicitly so deletion can target the join table directly.
type PropertyAmenity struct {
	PropertyID uint `json:"property_id" gorm:"primaryKey"`
	AmenityID  uint `json:"amenity_id" gorm:"primaryKey"`
}

// TableName returns the table name for PropertyAmenity
func (PropertyAmenity) TableName() string {
	return "property_amenities"
}
