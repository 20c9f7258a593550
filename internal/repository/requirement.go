package repository

import (
	"errors"

	"aircraft-manufacturing-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequirementRepository handles database operations for the aircraft part
// requirement registry
type RequirementRepository struct {
	db *gorm.DB
}

// NewRequirementRepository creates a new requirement repository
func NewRequirementRepository(db *gorm.DB) *RequirementRepository {
	return &RequirementRepository{db: db}
}

// Create creates a new requirement row
func (r *RequirementRepository) Create(requirement *models.AircraftPartRequirement) error {
	return r.db.Create(requirement).Error
}

// GetByID retrieves a requirement row by ID
func (r *RequirementRepository) GetByID(id uuid.UUID) (*models.AircraftPartRequirement, error) {
	var requirement models.AircraftPartRequirement
	err := r.db.Preload("AircraftType").Preload("PartType").First(&requirement, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &requirement, nil
}

// GetByPair retrieves the requirement row for an (aircraft type, part type) pair
func (r *RequirementRepository) GetByPair(aircraftTypeID, partTypeID uuid.UUID) (*models.AircraftPartRequirement, error) {
	var requirement models.AircraftPartRequirement
	err := r.db.First(&requirement, "aircraft_type_id = ? AND part_type_id = ?", aircraftTypeID, partTypeID).Error
	if err != nil {
		return nil, err
	}
	return &requirement, nil
}

// GetByAircraftTypeID retrieves all requirement rows for an aircraft type
// with part types preloaded
func (r *RequirementRepository) GetByAircraftTypeID(aircraftTypeID uuid.UUID) ([]models.AircraftPartRequirement, error) {
	var requirements []models.AircraftPartRequirement
	err := r.db.Preload("PartType").Where("aircraft_type_id = ?", aircraftTypeID).Find(&requirements).Error
	return requirements, err
}

// GetAll retrieves all requirement rows with pagination
func (r *RequirementRepository) GetAll(limit, offset int) ([]models.AircraftPartRequirement, int64, error) {
	var requirements []models.AircraftPartRequirement
	var total int64

	if err := r.db.Model(&models.AircraftPartRequirement{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("AircraftType").Preload("PartType").
		Limit(limit).Offset(offset).Find(&requirements).Error
	if err != nil {
		return nil, 0, err
	}

	return requirements, total, nil
}

// Update updates a requirement row
func (r *RequirementRepository) Update(requirement *models.AircraftPartRequirement) error {
	return r.db.Save(requirement).Error
}

// Delete deletes a requirement row
func (r *RequirementRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.AircraftPartRequirement{}, "id = ?", id).Error
}

// RequiredQuantity returns the required quantity for the pair, zero when no
// row exists. Absence means "not required", unlike the permission matrix.
func (r *RequirementRepository) RequiredQuantity(aircraftTypeID, partTypeID uuid.UUID) (int, error) {
	requirement, err := r.GetByPair(aircraftTypeID, partTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return requirement.Quantity, nil
}
