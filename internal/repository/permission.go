package repository

import (
	"aircraft-manufacturing-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PermissionRepository handles database operations for the team part
// permission matrix
type PermissionRepository struct {
	db *gorm.DB
}

// NewPermissionRepository creates a new permission repository
func NewPermissionRepository(db *gorm.DB) *PermissionRepository {
	return &PermissionRepository{db: db}
}

// Create creates a new permission row
func (r *PermissionRepository) Create(permission *models.TeamPartPermission) error {
	return r.db.Create(permission).Error
}

// GetByID retrieves a permission row by ID
func (r *PermissionRepository) GetByID(id uuid.UUID) (*models.TeamPartPermission, error) {
	var permission models.TeamPartPermission
	err := r.db.Preload("TeamType").Preload("PartType").First(&permission, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &permission, nil
}

// GetByPair retrieves the permission row for a (team type, part type) pair
func (r *PermissionRepository) GetByPair(teamTypeID, partTypeID uuid.UUID) (*models.TeamPartPermission, error) {
	var permission models.TeamPartPermission
	err := r.db.First(&permission, "team_type_id = ? AND part_type_id = ?", teamTypeID, partTypeID).Error
	if err != nil {
		return nil, err
	}
	return &permission, nil
}

// GetByTeamTypeID retrieves all permission rows for a team type
func (r *PermissionRepository) GetByTeamTypeID(teamTypeID uuid.UUID) ([]models.TeamPartPermission, error) {
	var permissions []models.TeamPartPermission
	err := r.db.Preload("PartType").Where("team_type_id = ?", teamTypeID).Find(&permissions).Error
	return permissions, err
}

// GetAll retrieves all permission rows with pagination
func (r *PermissionRepository) GetAll(limit, offset int) ([]models.TeamPartPermission, int64, error) {
	var permissions []models.TeamPartPermission
	var total int64

	if err := r.db.Model(&models.TeamPartPermission{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("TeamType").Preload("PartType").
		Limit(limit).Offset(offset).Find(&permissions).Error
	if err != nil {
		return nil, 0, err
	}

	return permissions, total, nil
}

// Update updates a permission row
func (r *PermissionRepository) Update(permission *models.TeamPartPermission) error {
	return r.db.Save(permission).Error
}

// Delete deletes a permission row
func (r *PermissionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TeamPartPermission{}, "id = ?", id).Error
}

// CanCreate reports whether a can_create=true row exists for the pair.
// Absence of a row means denied (default-deny).
func (r *PermissionRepository) CanCreate(teamTypeID, partTypeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.TeamPartPermission{}).
		Where("team_type_id = ? AND part_type_id = ? AND can_create = ?", teamTypeID, partTypeID, true).
		Count(&count).Error
	return count > 0, err
}
