package repository

import (
	"aircraft-manufacturing-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PartTypeRepository handles database operations for part types
type PartTypeRepository struct {
	db *gorm.DB
}

// NewPartTypeRepository creates a new part type repository
func NewPartTypeRepository(db *gorm.DB) *PartTypeRepository {
	return &PartTypeRepository{db: db}
}

// Create creates a new part type
func (r *PartTypeRepository) Create(partType *models.PartType) error {
	return r.db.Create(partType).Error
}

// GetByID retrieves a part type by ID
func (r *PartTypeRepository) GetByID(id uuid.UUID) (*models.PartType, error) {
	var partType models.PartType
	err := r.db.First(&partType, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &partType, nil
}

// GetByName retrieves a part type by its unique name
func (r *PartTypeRepository) GetByName(name string) (*models.PartType, error) {
	var partType models.PartType
	err := r.db.First(&partType, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &partType, nil
}

// GetAll retrieves all part types ordered by name
func (r *PartTypeRepository) GetAll() ([]models.PartType, error) {
	var partTypes []models.PartType
	err := r.db.Order("name").Find(&partTypes).Error
	return partTypes, err
}

// Update updates a part type
func (r *PartTypeRepository) Update(partType *models.PartType) error {
	return r.db.Save(partType).Error
}

// Delete deletes a part type
func (r *PartTypeRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.PartType{}, "id = ?", id).Error
}
