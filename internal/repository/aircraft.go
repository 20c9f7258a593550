package repository

import (
	"errors"
	"fmt"

	"aircraft-manufacturing-backend/internal/database/models"
	apperrors "aircraft-manufacturing-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AircraftRepository handles database operations for aircraft
type AircraftRepository struct {
	db *gorm.DB
}

// NewAircraftRepository creates a new aircraft repository
func NewAircraftRepository(db *gorm.DB) *AircraftRepository {
	return &AircraftRepository{db: db}
}

// CreateWithParts inserts the aircraft, its join rows and the is_used flips
// of the consumed parts in one transaction. Any failure rolls back the whole
// assembly: no aircraft without its parts, no partially consumed parts.
//
// Two guards protect against concurrent double-consumption after the service
// layer's availability precondition passed:
//   - the conditional is_used update only succeeds while the part is unused
//   - the unique index on aircraft_parts.part_id rejects a second join row
func (r *AircraftRepository) CreateWithParts(aircraft *models.Aircraft, partIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(aircraft).Error; err != nil {
			return err
		}

		for _, partID := range partIDs {
			joinRow := &models.AircraftPart{
				AircraftID: aircraft.ID,
				PartID:     partID,
			}
			if err := tx.Create(joinRow).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return apperrors.NewConflictError(
						fmt.Sprintf("part %s was consumed by another assembly", partID))
				}
				return fmt.Errorf("bind part %s: %w", partID, err)
			}

			res := tx.Model(&models.Part{}).
				Where("id = ? AND is_used = ?", partID, false).
				Update("is_used", true)
			if res.Error != nil {
				return fmt.Errorf("consume part %s: %w", partID, res.Error)
			}
			if res.RowsAffected != 1 {
				return apperrors.NewConflictError(
					fmt.Sprintf("part %s was consumed by another assembly", partID))
			}
		}

		return nil
	})
}

// GetByID retrieves an aircraft by ID
func (r *AircraftRepository) GetByID(id uuid.UUID) (*models.Aircraft, error) {
	var aircraft models.Aircraft
	err := r.db.First(&aircraft, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &aircraft, nil
}

// GetBySerialNumber retrieves an aircraft by its unique serial number
func (r *AircraftRepository) GetBySerialNumber(serialNumber string) (*models.Aircraft, error) {
	var aircraft models.Aircraft
	err := r.db.First(&aircraft, "serial_number = ?", serialNumber).Error
	if err != nil {
		return nil, err
	}
	return &aircraft, nil
}

// GetWithParts retrieves an aircraft with its consumed parts, their types
// and the owner chain preloaded
func (r *AircraftRepository) GetWithParts(id uuid.UUID) (*models.Aircraft, error) {
	var aircraft models.Aircraft
	err := r.db.Preload("AircraftType").
		Preload("Owner").Preload("Owner.User").Preload("Owner.Team").
		Preload("UsedParts").Preload("UsedParts.Part").Preload("UsedParts.Part.PartType").
		First(&aircraft, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &aircraft, nil
}

// List retrieves aircraft with optional type filter and pagination, most
// recently assembled first
func (r *AircraftRepository) List(aircraftTypeID *uuid.UUID, limit, offset int) ([]models.Aircraft, int64, error) {
	var aircraft []models.Aircraft
	var total int64

	query := r.db.Model(&models.Aircraft{})
	if aircraftTypeID != nil {
		query = query.Where("aircraft_type_id = ?", *aircraftTypeID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("AircraftType").
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&aircraft).Error
	if err != nil {
		return nil, 0, err
	}

	return aircraft, total, nil
}

// Delete deletes an aircraft and its join rows. The consumed parts stay
// is_used=true: a dismantled airframe does not return certified parts to the
// inventory.
func (r *AircraftRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.AircraftPart{}, "aircraft_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Aircraft{}, "id = ?", id).Error
	})
}

// SerialNumberExists reports whether an aircraft with this serial already exists
func (r *AircraftRepository) SerialNumberExists(serialNumber string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Aircraft{}).Where("serial_number = ?", serialNumber).Count(&count).Error
	return count > 0, err
}
