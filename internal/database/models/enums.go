package models

// PropertyStatus describes where a development is in its lifecycle
type PropertyStatus string

const (
	PropertyStatusLaunching         PropertyStatus = "launching"
	PropertyStatusUnderConstruction PropertyStatus = "under_construction"
	PropertyStatusReady             PropertyStatus = "ready"
)

// Valid reports whether s is one of the known statuses
func (s PropertyStatus) Valid() bool {
	switch s {
	case PropertyStatusLaunching, PropertyStatusUnderConstruction, PropertyStatusReady:
		return true
	}
	return false
}

// PropertyType describes the kind of unit being sold
type PropertyType string

const (
	PropertyTypeApartment PropertyType = "apartment"
	PropertyTypeHouse     PropertyType = "house"
	PropertyTypeStudio    PropertyType = "studio"
)

// Valid reports whether t is one of the known property types
func (t PropertyType) Valid() bool {
	switch t {
	case PropertyTypeApartment, PropertyTypeHouse, PropertyTypeStudio:
		return true
	}
	return false
}

// LeadStatus tracks how far a contact has progressed
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusConverted LeadStatus = "converted"
	LeadStatusLost      LeadStatus = "lost"
)

// Valid reports whether s is one of the known lead statuses
func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusConverted, LeadStatusLost:
		return true
	}
	return false
}
