package models

import (
	"github.com/google/uuid"
)

// AircraftPartRequirement declares how many parts of a given type an aircraft
// type needs. Absence of a row means "not required" (zero), in contrast to the
// permission matrix where absence means denied.
type AircraftPartRequirement struct {
	BaseModel
	AircraftTypeID uuid.UUID `json:"aircraft_type_id" gorm:"type:uuid;not null;uniqueIndex:idx_aircraft_part_requirements_pair" validate:"required"`
	PartTypeID     uuid.UUID `json:"part_type_id" gorm:"type:uuid;not null;uniqueIndex:idx_aircraft_part_requirements_pair" validate:"required"`
	Quantity       int       `json:"quantity" gorm:"not null" validate:"required,gt=0"`

	// Relationships
	AircraftType AircraftType `json:"aircraft_type,omitempty" gorm:"foreignKey:AircraftTypeID;constraint:OnDelete:CASCADE"`
	PartType     PartType     `json:"part_type,omitempty" gorm:"foreignKey:PartTypeID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for AircraftPartRequirement
func (AircraftPartRequirement) TableName() string {
	return "aircraft_part_requirements"
}
