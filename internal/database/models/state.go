package models

// State is a Brazilian federative unit. States are seed data and effectively
// immutable at runtime.
type State struct {
	BaseModel
	Name string `json:"name" gorm:"size:100;not null" validate:"required"`
	UF   string `json:"uf" gorm:"size:2;not null;uniqueIndex" validate:"required,len=2"`
	Slug string `json:"slug" gorm:"size:100;not null;uniqueIndex" validate:"required"`

	Cities []City `json:"cities,omitempty" gorm:"foreignKey:StateID"`
}

// TableName returns the table name for State
func (State) TableName() string {
	return "states"
}
