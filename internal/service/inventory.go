package service

import (
	"errors"
	"fmt"

	apperrors "aircraft-manufacturing-backend/internal/errors"
	"aircraft-manufacturing-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryService answers stock questions: which parts are available, and
// whether the inventory can cover an aircraft type's requirement table. All
// reports are advisory snapshots; assembly itself never consults them.
type InventoryService struct {
	partRepo        repository.PartRepositoryInterface
	partTypeRepo    repository.PartTypeRepositoryInterface
	acTypeRepo      repository.AircraftTypeRepositoryInterface
	requirementRepo repository.RequirementRepositoryInterface
}

// NewInventoryService creates a new inventory service
func NewInventoryService(
	partRepo repository.PartRepositoryInterface,
	partTypeRepo repository.PartTypeRepositoryInterface,
	acTypeRepo repository.AircraftTypeRepositoryInterface,
	requirementRepo repository.RequirementRepositoryInterface,
) *InventoryService {
	return &InventoryService{
		partRepo:        partRepo,
		partTypeRepo:    partTypeRepo,
		acTypeRepo:      acTypeRepo,
		requirementRepo: requirementRepo,
	}
}

// PartTypeReadiness reports stock against the requirement for one part type
type PartTypeReadiness struct {
	PartTypeID   uuid.UUID `json:"part_type_id"`
	PartTypeName string    `json:"part_type_name"`
	Required     int       `json:"required"`
	Available    int       `json:"available"`
	Missing      int       `json:"missing"`
}

// ReadinessResponse reports whether the current inventory can cover one
// aircraft of the given type
type ReadinessResponse struct {
	AircraftTypeID   uuid.UUID           `json:"aircraft_type_id"`
	AircraftTypeName string              `json:"aircraft_type_name"`
	Ready            bool                `json:"ready"`
	Parts            []PartTypeReadiness `json:"parts"`
}

// RequirementEntry is one row of an aircraft type's requirement table
type RequirementEntry struct {
	PartTypeID   uuid.UUID `json:"part_type_id"`
	PartTypeName string    `json:"part_type_name"`
	Quantity     int       `json:"quantity"`
}

// AircraftRequirements lists the requirement table of one aircraft type
type AircraftRequirements struct {
	AircraftTypeID   uuid.UUID          `json:"aircraft_type_id"`
	AircraftTypeName string             `json:"aircraft_type_name"`
	Requirements     []RequirementEntry `json:"requirements"`
}

// InventoryStatusEntry reports stock counts for one part type
type InventoryStatusEntry struct {
	PartTypeID   uuid.UUID `json:"part_type_id"`
	PartTypeName string    `json:"part_type_name"`
	Required     int       `json:"required"`
	Total        int       `json:"total"`
	Used         int       `json:"used"`
	Available    int       `json:"available"`
}

// InventoryStatusResponse reports stock counts for one aircraft type
type InventoryStatusResponse struct {
	AircraftTypeID   uuid.UUID              `json:"aircraft_type_id"`
	AircraftTypeName string                 `json:"aircraft_type_name"`
	Entries          []InventoryStatusEntry `json:"entries"`
}

// CheckAssemblyReadiness reports whether the unused part stock covers one
// aircraft of the given type. Reading the report does not reserve anything;
// two callers may both see "ready" for the same last parts.
func (s *InventoryService) CheckAssemblyReadiness(aircraftTypeID uuid.UUID) (*ReadinessResponse, error) {
	acType, err := s.acTypeRepo.GetByID(aircraftTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAircraftTypeNotFound
		}
		return nil, fmt.Errorf("failed to get aircraft type: %w", err)
	}

	requirements, err := s.requirementRepo.GetByAircraftTypeID(aircraftTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get requirements: %w", err)
	}

	available, err := s.partRepo.CountAvailableByPartType(aircraftTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to count available parts: %w", err)
	}

	names, err := s.partTypeNames()
	if err != nil {
		return nil, err
	}

	resp := &ReadinessResponse{
		AircraftTypeID:   aircraftTypeID,
		AircraftTypeName: acType.Name,
		Ready:            true,
		Parts:            make([]PartTypeReadiness, 0, len(requirements)),
	}
	for _, req := range requirements {
		have := available[req.PartTypeID]
		missing := req.Quantity - have
		if missing < 0 {
			missing = 0
		}
		if have < req.Quantity {
			resp.Ready = false
		}
		resp.Parts = append(resp.Parts, PartTypeReadiness{
			PartTypeID:   req.PartTypeID,
			PartTypeName: names[req.PartTypeID],
			Required:     req.Quantity,
			Available:    have,
			Missing:      missing,
		})
	}
	return resp, nil
}

// GetAllRequirements lists the requirement tables of every aircraft type
func (s *InventoryService) GetAllRequirements() ([]AircraftRequirements, error) {
	acTypes, err := s.acTypeRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list aircraft types: %w", err)
	}

	names, err := s.partTypeNames()
	if err != nil {
		return nil, err
	}

	result := make([]AircraftRequirements, 0, len(acTypes))
	for _, acType := range acTypes {
		requirements, err := s.requirementRepo.GetByAircraftTypeID(acType.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get requirements: %w", err)
		}

		entry := AircraftRequirements{
			AircraftTypeID:   acType.ID,
			AircraftTypeName: acType.Name,
			Requirements:     make([]RequirementEntry, 0, len(requirements)),
		}
		for _, req := range requirements {
			entry.Requirements = append(entry.Requirements, RequirementEntry{
				PartTypeID:   req.PartTypeID,
				PartTypeName: names[req.PartTypeID],
				Quantity:     req.Quantity,
			})
		}
		result = append(result, entry)
	}
	return result, nil
}

// GetInventoryStatus reports total, used and available part counts for one
// aircraft type, one entry per part type in its requirement table. Part
// types outside the table are omitted even when stock exists for them.
func (s *InventoryService) GetInventoryStatus(aircraftTypeID uuid.UUID) (*InventoryStatusResponse, error) {
	acType, err := s.acTypeRepo.GetByID(aircraftTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAircraftTypeNotFound
		}
		return nil, fmt.Errorf("failed to get aircraft type: %w", err)
	}

	requirements, err := s.requirementRepo.GetByAircraftTypeID(aircraftTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get requirements: %w", err)
	}

	counts, err := s.partRepo.InventoryCounts(aircraftTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to count parts: %w", err)
	}
	byPartType := make(map[uuid.UUID]repository.PartTypeCount, len(counts))
	for _, c := range counts {
		byPartType[c.PartTypeID] = c
	}

	names, err := s.partTypeNames()
	if err != nil {
		return nil, err
	}

	resp := &InventoryStatusResponse{
		AircraftTypeID:   aircraftTypeID,
		AircraftTypeName: acType.Name,
		Entries:          make([]InventoryStatusEntry, 0, len(requirements)),
	}
	for _, req := range requirements {
		count := byPartType[req.PartTypeID]
		resp.Entries = append(resp.Entries, InventoryStatusEntry{
			PartTypeID:   req.PartTypeID,
			PartTypeName: names[req.PartTypeID],
			Required:     req.Quantity,
			Total:        count.Total,
			Used:         count.Used,
			Available:    count.Available,
		})
	}
	return resp, nil
}

// GetFullInventoryStatus reports stock counts for every aircraft type, one
// block per type in catalog order.
func (s *InventoryService) GetFullInventoryStatus() ([]InventoryStatusResponse, error) {
	acTypes, err := s.acTypeRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list aircraft types: %w", err)
	}

	result := make([]InventoryStatusResponse, 0, len(acTypes))
	for _, acType := range acTypes {
		status, err := s.GetInventoryStatus(acType.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, *status)
	}
	return result, nil
}

func (s *InventoryService) partTypeNames() (map[uuid.UUID]string, error) {
	partTypes, err := s.partTypeRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list part types: %w", err)
	}
	names := make(map[uuid.UUID]string, len(partTypes))
	for _, pt := range partTypes {
		names[pt.ID] = pt.Name
	}
	return names, nil
}
