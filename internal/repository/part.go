package repository

import (
	"aircraft-manufacturing-backend/internal/database/models"
	apperrors "aircraft-manufacturing-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PartFilter narrows part listings. Nil fields are ignored.
type PartFilter struct {
	PartTypeID     *uuid.UUID
	AircraftTypeID *uuid.UUID
	OwnerID        *uuid.UUID
	IsUsed         *bool
}

// PartTypeCount aggregates part counts for one part type.
type PartTypeCount struct {
	PartTypeID uuid.UUID
	Total      int
	Used       int
	Available  int
}

// PartRepository handles database operations for parts
type PartRepository struct {
	db *gorm.DB
}

// NewPartRepository creates a new part repository
func NewPartRepository(db *gorm.DB) *PartRepository {
	return &PartRepository{db: db}
}

// CreateChecked inserts a part after re-validating inside the same
// transaction that the producing team type still holds a can_create
// permission for the part type. The service layer checks the (cached)
// matrix at the entry boundary; this re-check runs against live rows so a
// permission revoked between check and insert still rejects the part.
func (r *PartRepository) CreateChecked(part *models.Part, teamTypeID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.TeamPartPermission{}).
			Where("team_type_id = ? AND part_type_id = ? AND can_create = ?", teamTypeID, part.PartTypeID, true).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count == 0 {
			return apperrors.ErrPartCreateDenied
		}
		return tx.Create(part).Error
	})
}

// GetByID retrieves a part by ID
func (r *PartRepository) GetByID(id uuid.UUID) (*models.Part, error) {
	var part models.Part
	err := r.db.First(&part, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &part, nil
}

// GetBySerialNumber retrieves a part by its unique serial number
func (r *PartRepository) GetBySerialNumber(serialNumber string) (*models.Part, error) {
	var part models.Part
	err := r.db.First(&part, "serial_number = ?", serialNumber).Error
	if err != nil {
		return nil, err
	}
	return &part, nil
}

// GetWithRelations retrieves a part with type, aircraft type and owner chain
// preloaded
func (r *PartRepository) GetWithRelations(id uuid.UUID) (*models.Part, error) {
	var part models.Part
	err := r.db.Preload("PartType").Preload("AircraftType").
		Preload("Owner").Preload("Owner.User").Preload("Owner.Team").
		First(&part, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &part, nil
}

// List retrieves parts matching the filter with pagination
func (r *PartRepository) List(filter PartFilter, limit, offset int) ([]models.Part, int64, error) {
	var parts []models.Part
	var total int64

	query := r.db.Model(&models.Part{})
	if filter.PartTypeID != nil {
		query = query.Where("part_type_id = ?", *filter.PartTypeID)
	}
	if filter.AircraftTypeID != nil {
		query = query.Where("aircraft_type_id = ?", *filter.AircraftTypeID)
	}
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.IsUsed != nil {
		query = query.Where("is_used = ?", *filter.IsUsed)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("PartType").Preload("AircraftType").
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&parts).Error
	if err != nil {
		return nil, 0, err
	}

	return parts, total, nil
}

// Delete deletes a part
func (r *PartRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Part{}, "id = ?", id).Error
}

// SerialNumberExists reports whether a part with this serial already exists
func (r *PartRepository) SerialNumberExists(serialNumber string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Part{}).Where("serial_number = ?", serialNumber).Count(&count).Error
	return count > 0, err
}

// CountAvailableByPartType counts unused parts of each part type destined
// for the given aircraft type
func (r *PartRepository) CountAvailableByPartType(aircraftTypeID uuid.UUID) (map[uuid.UUID]int, error) {
	type row struct {
		PartTypeID uuid.UUID
		Count      int
	}
	var rows []row
	err := r.db.Model(&models.Part{}).
		Select("part_type_id, COUNT(*) as count").
		Where("aircraft_type_id = ? AND is_used = ?", aircraftTypeID, false).
		Group("part_type_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int, len(rows))
	for _, r := range rows {
		counts[r.PartTypeID] = r.Count
	}
	return counts, nil
}

// InventoryCounts aggregates total/used/available part counts per part type
// for the given aircraft type
func (r *PartRepository) InventoryCounts(aircraftTypeID uuid.UUID) ([]PartTypeCount, error) {
	var rows []PartTypeCount
	err := r.db.Model(&models.Part{}).
		Select("part_type_id, COUNT(*) AS total, "+
			"SUM(CASE WHEN is_used THEN 1 ELSE 0 END) AS used, "+
			"SUM(CASE WHEN is_used THEN 0 ELSE 1 END) AS available").
		Where("aircraft_type_id = ?", aircraftTypeID).
		Group("part_type_id").
		Scan(&rows).Error
	return rows, err
}
