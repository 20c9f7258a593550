package repository

import (
	"aircraft-manufacturing-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamTypeRepository handles database operations for team types
type TeamTypeRepository struct {
	db *gorm.DB
}

// NewTeamTypeRepository creates a new team type repository
func NewTeamTypeRepository(db *gorm.DB) *TeamTypeRepository {
	return &TeamTypeRepository{db: db}
}

// Create creates a new team type
func (r *TeamTypeRepository) Create(teamType *models.TeamType) error {
	return r.db.Create(teamType).Error
}

// GetByID retrieves a team type by ID
func (r *TeamTypeRepository) GetByID(id uuid.UUID) (*models.TeamType, error) {
	var teamType models.TeamType
	err := r.db.First(&teamType, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &teamType, nil
}

// GetByName retrieves a team type by its unique name
func (r *TeamTypeRepository) GetByName(name string) (*models.TeamType, error) {
	var teamType models.TeamType
	err := r.db.First(&teamType, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &teamType, nil
}

// GetAll retrieves all team types ordered by name
func (r *TeamTypeRepository) GetAll() ([]models.TeamType, error) {
	var teamTypes []models.TeamType
	err := r.db.Order("name").Find(&teamTypes).Error
	return teamTypes, err
}
