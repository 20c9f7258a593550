package repository

import (
	"aircraft-manufacturing-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamMemberRepository handles database operations for team members
type TeamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository creates a new team member repository
func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

// Create creates a new team membership. The unique index on user_id rejects
// a second membership for the same user.
func (r *TeamMemberRepository) Create(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

// GetByID retrieves a team member by ID
func (r *TeamMemberRepository) GetByID(id uuid.UUID) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByUserID retrieves the membership for a user, with team and team type
// preloaded for permission checks
func (r *TeamMemberRepository) GetByUserID(userID uuid.UUID) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.Preload("Team").Preload("Team.TeamType").
		First(&member, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetWithTeam retrieves a team member with team, team type and user preloaded
func (r *TeamMemberRepository) GetWithTeam(id uuid.UUID) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.Preload("Team").Preload("Team.TeamType").Preload("User").
		First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByTeamID retrieves all members of a team with pagination
func (r *TeamMemberRepository) GetByTeamID(teamID uuid.UUID, limit, offset int) ([]models.TeamMember, int64, error) {
	var members []models.TeamMember
	var total int64

	if err := r.db.Model(&models.TeamMember{}).Where("team_id = ?", teamID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("User").Where("team_id = ?", teamID).
		Limit(limit).Offset(offset).Find(&members).Error
	if err != nil {
		return nil, 0, err
	}

	return members, total, nil
}

// Delete deletes a team membership
func (r *TeamMemberRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TeamMember{}, "id = ?", id).Error
}
