package models

import (
	"github.com/google/uuid"
)

// Aircraft is an assembled aircraft. Serial number, type and owner are fixed
// at creation; only deletion is allowed afterwards. The parts consumed by the
// assembly are recorded through AircraftPart join rows.
type Aircraft struct {
	BaseModel
	AircraftTypeID uuid.UUID `json:"aircraft_type_id" gorm:"type:uuid;not null;index" validate:"required"`
	SerialNumber   string    `json:"serial_number" gorm:"size:64;not null;uniqueIndex"`
	OwnerID        uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index" validate:"required"`

	// Relationships
	AircraftType AircraftType   `json:"aircraft_type,omitempty" gorm:"foreignKey:AircraftTypeID;constraint:OnDelete:RESTRICT"`
	Owner        TeamMember     `json:"owner,omitempty" gorm:"foreignKey:OwnerID;constraint:OnDelete:RESTRICT"`
	UsedParts    []AircraftPart `json:"used_parts,omitempty" gorm:"foreignKey:AircraftID"`
}

// TableName returns the table name for Aircraft
func (Aircraft) TableName() string {
	return "aircraft"
}

// AircraftPart records which part was consumed by which aircraft. The unique
// index on PartID is what enforces one-part-one-aircraft: a racing second
// consumption of the same part fails this constraint and aborts its whole
// assembly transaction.
type AircraftPart struct {
	BaseModel
	AircraftID uuid.UUID `json:"aircraft_id" gorm:"type:uuid;not null;index" validate:"required"`
	PartID     uuid.UUID `json:"part_id" gorm:"type:uuid;not null;uniqueIndex" validate:"required"`

	// Relationships
	Aircraft Aircraft `json:"aircraft,omitempty" gorm:"foreignKey:AircraftID;constraint:OnDelete:CASCADE"`
	Part     Part     `json:"part,omitempty" gorm:"foreignKey:PartID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for AircraftPart
func (AircraftPart) TableName() string {
	return "aircraft_parts"
}
