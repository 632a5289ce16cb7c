package models

// PropertyImage records the URL of an uploaded image. The binary lives in
// the object-storage bucket under properties/{property_id}/; at most one
// image per property carries IsMain and by convention it is the first
// uploaded one.
type PropertyImage struct {
	BaseModel
	PropertyID   uint    `json:"property_id" gorm:"not null;index" validate:"required"`
	URL          string  `json:"url" gorm:"size:500;not null" validate:"required,url"`
	AltText      *string `json:"alt_text" gorm:"size:200"`
	IsMain       bool    `json:"is_main" gorm:"not null;default:false"`
	DisplayOrder int     `json:"display_order" gorm:"not null;default:0"`
}

// TableName returns the table name for PropertyImage
func (PropertyImage) TableName() string {
	return "property_images"
}
