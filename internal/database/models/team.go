package models

import (
	"github.com/google/uuid"
)

// Team represents a manufacturing team. Every team has exactly one type;
// the type decides what the team's members may produce.
type Team struct {
	BaseModel
	TeamTypeID  uuid.UUID `json:"team_type_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name        string    `json:"name" gorm:"size:64;not null;uniqueIndex" validate:"required,max=64"`
	Description string    `json:"description" gorm:"size:200" validate:"max=200"`

	// Relationships
	TeamType TeamType     `json:"team_type,omitempty" gorm:"foreignKey:TeamTypeID;constraint:OnDelete:RESTRICT"`
	Members  []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// IsAssemblyTeam reports whether the team belongs to the assembly line.
// Requires TeamType to be preloaded.
func (t *Team) IsAssemblyTeam() bool {
	return t.TeamType.Name == TeamTypeAssembly
}

// IsAdminTeam reports whether the team is the administrative team.
// Requires TeamType to be preloaded.
func (t *Team) IsAdminTeam() bool {
	return t.TeamType.Name == TeamTypeAdmin
}

// CanAssembleAircraft reports whether members of this team may assemble
// aircraft. Assembly rights are a capability of the ASSEMBLY team type,
// not part of the per-part permission matrix.
func (t *Team) CanAssembleAircraft() bool {
	return t.IsAssemblyTeam()
}
