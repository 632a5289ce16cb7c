package models

// Property is a listed development. The slug is generated from the name and
// made unique with an incrementing numeric suffix on collision. Images,
// amenity links and apartment details are written independently of the
// property row; there is no cross-table transaction.
type Property struct {
	BaseModel
	Name         string         `json:"name" gorm:"size:200;not null" validate:"required"`
	Slug         string         `json:"slug" gorm:"size:220;not null;uniqueIndex"`
	Description  string         `json:"description" gorm:"type:text"`
	Status       PropertyStatus `json:"status" gorm:"size:30;not null;default:launching"`
	PropertyType PropertyType   `json:"property_type" gorm:"size:20;not null;default:apartment"`
	Address      string         `json:"address" gorm:"size:300"`

	NeighborhoodID uint `json:"neighborhood_id" gorm:"not null;index" validate:"required"`

	Bedrooms     int `json:"bedrooms" gorm:"not null;default:1" validate:"min=0"`
	Bathrooms    int `json:"bathrooms" gorm:"not null;default:1" validate:"min=0"`
	Suites       int `json:"suites" gorm:"not null;default:0" validate:"min=0"`
	ParkingSpots int `json:"parking_spots" gorm:"not null;default:0" validate:"min=0"`

	AreaMin  float64  `json:"area_min" gorm:"not null"`
	AreaMax  *float64 `json:"area_max"`
	PriceMin float64  `json:"price_min" gorm:"not null"`
	PriceMax *float64 `json:"price_max"`

	Featured       bool    `json:"featured" gorm:"not null;default:false"`
	SEOTitle       *string `json:"seo_title" gorm:"size:200"`
	SEODescription *string `json:"seo_description" gorm:"size:300"`

	Neighborhood     *Neighborhood     `json:"neighborhood,omitempty" gorm:"foreignKey:NeighborhoodID"`
	Images           []PropertyImage   `json:"images,omitempty" gorm:"foreignKey:PropertyID"`
	Amenities        []Amenity         `json:"amenities,omitempty" gorm:"many2many:property_amenities"`
	ApartmentDetails *ApartmentDetails `json:"apartment_details,omitempty" gorm:"foreignKey:PropertyID"`
}

// TableName returns the table name for Property
func (Property) TableName() string {
	return "properties"
}
