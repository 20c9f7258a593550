package models

import (
	"github.com/google/uuid"
)

// TeamMember assigns a user to a team. The unique index on UserID enforces
// the one-team-per-user invariant; membership is deleted with the user.
type TeamMember struct {
	BaseModel
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex" validate:"required"`
	TeamID uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`

	// Relationships
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Team Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
