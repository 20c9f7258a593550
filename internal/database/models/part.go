package models

import (
	"github.com/google/uuid"
)

// Part is a manufactured component destined for one aircraft type. A part is
// created unused, consumed (IsUsed=true) exactly once when an aircraft is
// assembled from it, and may only be deleted while unused. The owner is the
// team member who produced it; it is nulled if that member is deleted so the
// part survives personnel changes.
type Part struct {
	BaseModel
	PartTypeID     uuid.UUID  `json:"part_type_id" gorm:"type:uuid;not null;index" validate:"required"`
	AircraftTypeID uuid.UUID  `json:"aircraft_type_id" gorm:"type:uuid;not null;index" validate:"required"`
	OwnerID        *uuid.UUID `json:"owner_id,omitempty" gorm:"type:uuid;index"`
	IsUsed         bool       `json:"is_used" gorm:"not null;default:false;index"`
	SerialNumber   string     `json:"serial_number" gorm:"size:64;not null;uniqueIndex"`

	// Relationships
	PartType     PartType     `json:"part_type,omitempty" gorm:"foreignKey:PartTypeID;constraint:OnDelete:RESTRICT"`
	AircraftType AircraftType `json:"aircraft_type,omitempty" gorm:"foreignKey:AircraftTypeID;constraint:OnDelete:RESTRICT"`
	Owner        *TeamMember  `json:"owner,omitempty" gorm:"foreignKey:OwnerID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Part
func (Part) TableName() string {
	return "parts"
}
