package models

// Neighborhood belongs to a City. Unlike states and cities, neighborhoods
// are created lazily by the admin flow when a typed name has no match; the
// slug is derived deterministically from the name. A partial unique index on
// (city_id, lower(name)) backs the idempotent find-or-create upsert, see
// database.Initialize.
type Neighborhood struct {
	BaseModel
	Name   string `json:"name" gorm:"size:150;not null" validate:"required"`
	Slug   string `json:"slug" gorm:"size:150;not null;uniqueIndex:idx_neighborhoods_city_slug" validate:"required"`
	CityID uint   `json:"city_id" gorm:"not null;uniqueIndex:idx_neighborhoods_city_slug;index" validate:"required"`

	City       *City      `json:"city,omitempty" gorm:"foreignKey:CityID"`
	Properties []Property `json:"properties,omitempty" gorm:"foreignKey:NeighborhoodID"`
}

// TableName returns the table name for Neighborhood
func (Neighborhood) TableName() string {
	return "neighborhoods"
}
