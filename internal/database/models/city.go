package models

// City belongs to a State. The slug is only unique within its state, so
// lookups by slug must always carry the state slug as a disambiguator.
type City struct {
	BaseModel
	Name    string `json:"name" gorm:"size:100;not null" validate:"required"`
	Slug    string `json:"slug" gorm:"size:100;not null;uniqueIndex:idx_cities_state_slug" validate:"required"`
	StateID uint   `json:"state_id" gorm:"not null;uniqueIndex:idx_cities_state_slug;index" validate:"required"`

	State         *State         `json:"state,omitempty" gorm:"foreignKey:StateID"`
	Neighborhoods []Neighborhood `json:"neighborhoods,omitempty" gorm:"foreignKey:CityID"`
}

// TableName returns the table name for City
func (City) TableName() string {
	return "cities"
}
