package models

import (
	"github.com/google/uuid"
)

// TeamPartPermission is the authoritative (team type, part type) creation
// matrix. Absence of a row means denied; a row with CanCreate=false is an
// explicit denial, not the same as absence for bookkeeping purposes.
type TeamPartPermission struct {
	BaseModel
	TeamTypeID uuid.UUID `json:"team_type_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_part_permissions_pair" validate:"required"`
	PartTypeID uuid.UUID `json:"part_type_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_part_permissions_pair" validate:"required"`
	CanCreate  bool      `json:"can_create" gorm:"not null;default:false"`

	// Relationships
	TeamType TeamType `json:"team_type,omitempty" gorm:"foreignKey:TeamTypeID;constraint:OnDelete:CASCADE"`
	PartType PartType `json:"part_type,omitempty" gorm:"foreignKey:PartTypeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamPartPermission
func (TeamPartPermission) TableName() string {
	return "team_part_permissions"
}
