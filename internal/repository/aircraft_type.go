package repository

import (
	"aircraft-manufacturing-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AircraftTypeRepository handles database operations for aircraft types
type AircraftTypeRepository struct {
	db *gorm.DB
}

// NewAircraftTypeRepository creates a new aircraft type repository
func NewAircraftTypeRepository(db *gorm.DB) *AircraftTypeRepository {
	return &AircraftTypeRepository{db: db}
}

// Create creates a new aircraft type
func (r *AircraftTypeRepository) Create(aircraftType *models.AircraftType) error {
	return r.db.Create(aircraftType).Error
}

// GetByID retrieves an aircraft type by ID
func (r *AircraftTypeRepository) GetByID(id uuid.UUID) (*models.AircraftType, error) {
	var aircraftType models.AircraftType
	err := r.db.First(&aircraftType, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &aircraftType, nil
}

// GetByName retrieves an aircraft type by its unique name
func (r *AircraftTypeRepository) GetByName(name string) (*models.AircraftType, error) {
	var aircraftType models.AircraftType
	err := r.db.First(&aircraftType, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &aircraftType, nil
}

// GetAll retrieves all aircraft types ordered by name
func (r *AircraftTypeRepository) GetAll() ([]models.AircraftType, error) {
	var aircraftTypes []models.AircraftType
	err := r.db.Order("name").Find(&aircraftTypes).Error
	return aircraftTypes, err
}

// Update updates an aircraft type
func (r *AircraftTypeRepository) Update(aircraftType *models.AircraftType) error {
	return r.db.Save(aircraftType).Error
}

// Delete deletes an aircraft type
func (r *AircraftTypeRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.AircraftType{}, "id = ?", id).Error
}
