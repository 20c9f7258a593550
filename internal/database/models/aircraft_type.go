package models

// Default aircraft type names seeded at startup.
const (
	AircraftTypeTB2       = "TB2"
	AircraftTypeTB3       = "TB3"
	AircraftTypeAkinci    = "AKINCI"
	AircraftTypeKizilelma = "KIZILELMA"
)

// AircraftType is reference data describing a model of aircraft that can be
// assembled from parts.
type AircraftType struct {
	BaseModel
	Name        string `json:"name" gorm:"size:64;not null;uniqueIndex" validate:"required,max=64"`
	Description string `json:"description" gorm:"size:200" validate:"max=200"`
}

// TableName returns the table name for AircraftType
func (AircraftType) TableName() string {
	return "aircraft_types"
}
