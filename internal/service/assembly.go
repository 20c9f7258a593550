package service

import (
	"errors"
	"fmt"
	"time"

	"aircraft-manufacturing-backend/internal/database/models"
	apperrors "aircraft-manufacturing-backend/internal/errors"
	"aircraft-manufacturing-backend/internal/metrics"
	"aircraft-manufacturing-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssemblyService handles aircraft assembly and retirement. Assembly is
// restricted to members of ASSEMBLY-type teams; which parts an aircraft
// consumes is recorded, but no quantity table is enforced at assembly time.
// Readiness against the requirement registry is advisory and lives in
// InventoryService.
type AssemblyService struct {
	repo       repository.AircraftRepositoryInterface
	partRepo   repository.PartRepositoryInterface
	memberRepo repository.TeamMemberRepositoryInterface
	acTypeRepo repository.AircraftTypeRepositoryInterface
	userRepo   repository.UserRepositoryInterface
	validator  *validator.Validate
}

// NewAssemblyService creates a new assembly service
func NewAssemblyService(
	repo repository.AircraftRepositoryInterface,
	partRepo repository.PartRepositoryInterface,
	memberRepo repository.TeamMemberRepositoryInterface,
	acTypeRepo repository.AircraftTypeRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	validator *validator.Validate,
) *AssemblyService {
	return &AssemblyService{
		repo:       repo,
		partRepo:   partRepo,
		memberRepo: memberRepo,
		acTypeRepo: acTypeRepo,
		userRepo:   userRepo,
		validator:  validator,
	}
}

// AssembleAircraftRequest represents the data needed to assemble an aircraft.
// PartIDs may be empty: an airframe can be registered first and audited for
// completeness later through the readiness report.
type AssembleAircraftRequest struct {
	AircraftTypeID uuid.UUID   `json:"aircraft_type_id" validate:"required"`
	PartIDs        []uuid.UUID `json:"part_ids"`
}

// AircraftResponse represents the response data for an aircraft
type AircraftResponse struct {
	ID               uuid.UUID      `json:"id"`
	SerialNumber     string         `json:"serial_number"`
	AircraftTypeID   uuid.UUID      `json:"aircraft_type_id"`
	AircraftTypeName string         `json:"aircraft_type_name,omitempty"`
	OwnerID          uuid.UUID      `json:"owner_id"`
	UsedParts        []PartResponse `json:"used_parts,omitempty"`
	CreatedAt        string         `json:"created_at"`
	UpdatedAt        string         `json:"updated_at"`
}

// AircraftListResponse represents a paginated list of aircraft
type AircraftListResponse struct {
	Aircraft []AircraftResponse `json:"aircraft"`
	Total    int64              `json:"total"`
	Limit    int                `json:"limit"`
	Offset   int                `json:"offset"`
}

// AssembleAircraft assembles a new aircraft from the listed parts on behalf
// of the given user. Every part must exist, be unused and be destined for the
// requested aircraft type; the repository transaction settles races with
// concurrent assemblies over the same parts.
func (s *AssemblyService) AssembleAircraft(userID uuid.UUID, req *AssembleAircraftRequest) (*AircraftResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	member, err := s.memberRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoTeamMembership
		}
		return nil, fmt.Errorf("failed to resolve team membership: %w", err)
	}
	if !member.Team.CanAssembleAircraft() {
		return nil, apperrors.ErrAssemblyDenied
	}

	acType, err := s.acTypeRepo.GetByID(req.AircraftTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAircraftTypeNotFound
		}
		return nil, fmt.Errorf("failed to get aircraft type: %w", err)
	}

	if err := s.checkParts(req.AircraftTypeID, req.PartIDs); err != nil {
		return nil, err
	}

	// The pre-checks above can go stale the moment they return; the unique
	// index on aircraft_parts.part_id inside CreateWithParts is what actually
	// decides a race. A serial collision gets one retry with a fresh serial.
	for attempt := 0; attempt < 2; attempt++ {
		serial, err := generateSerialNumber(AircraftSerialPrefix, s.repo.SerialNumberExists)
		if err != nil {
			return nil, err
		}

		aircraft := &models.Aircraft{
			AircraftTypeID: req.AircraftTypeID,
			SerialNumber:   serial,
			OwnerID:        member.ID,
		}
		err = s.repo.CreateWithParts(aircraft, req.PartIDs)
		if err == nil {
			metrics.Default().AircraftAssembledTotal.WithLabelValues(acType.Name).Inc()
			return s.GetAircraftByID(aircraft.ID)
		}
		if apperrors.IsConflict(err) {
			metrics.Default().AssemblyConflictsTotal.Inc()
			return nil, err
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("failed to assemble aircraft: %w", err)
		}
	}
	return nil, apperrors.ErrDuplicateSerialNumber
}

// checkParts validates the part list before the assembly transaction:
// every part must exist, be unique in the list, be unused and match the
// aircraft type under assembly.
func (s *AssemblyService) checkParts(aircraftTypeID uuid.UUID, partIDs []uuid.UUID) error {
	seen := make(map[uuid.UUID]struct{}, len(partIDs))
	for _, partID := range partIDs {
		if _, dup := seen[partID]; dup {
			return apperrors.NewPartNotAvailableError(partID.String(), "listed more than once")
		}
		seen[partID] = struct{}{}

		part, err := s.partRepo.GetByID(partID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewPartNotAvailableError(partID.String(), "part does not exist")
			}
			return fmt.Errorf("failed to get part: %w", err)
		}
		if part.IsUsed {
			return apperrors.NewPartNotAvailableError(partID.String(), "part is already used")
		}
		if part.AircraftTypeID != aircraftTypeID {
			return apperrors.NewPartNotAvailableError(partID.String(), "part is destined for a different aircraft type")
		}
	}
	return nil
}

// GetAircraftByID retrieves an aircraft with its consumed parts
func (s *AssemblyService) GetAircraftByID(id uuid.UUID) (*AircraftResponse, error) {
	aircraft, err := s.repo.GetWithParts(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAircraftNotFound
		}
		return nil, fmt.Errorf("failed to get aircraft: %w", err)
	}
	return s.toAircraftResponse(aircraft), nil
}

// GetAircraftBySerialNumber retrieves an aircraft by its serial number
func (s *AssemblyService) GetAircraftBySerialNumber(serialNumber string) (*AircraftResponse, error) {
	aircraft, err := s.repo.GetBySerialNumber(serialNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAircraftNotFound
		}
		return nil, fmt.Errorf("failed to get aircraft: %w", err)
	}
	return s.toAircraftResponse(aircraft), nil
}

// ListAircraft retrieves aircraft with pagination, optionally filtered by
// aircraft type
func (s *AssemblyService) ListAircraft(aircraftTypeID *uuid.UUID, limit, offset int) (*AircraftListResponse, error) {
	aircraft, total, err := s.repo.List(aircraftTypeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list aircraft: %w", err)
	}

	responses := make([]AircraftResponse, len(aircraft))
	for i := range aircraft {
		responses[i] = *s.toAircraftResponse(&aircraft[i])
	}

	return &AircraftListResponse{
		Aircraft: responses,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	}, nil
}

// DeleteAircraft retires an aircraft. Only assembly team members and admins
// may do so. The parts consumed by the aircraft stay marked used: a
// dismantled airframe does not return certified parts to the inventory.
func (s *AssemblyService) DeleteAircraft(userID uuid.UUID, id uuid.UUID) error {
	user, err := s.userRepo.GetWithMembership(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}
	if !user.IsAdmin {
		if user.TeamMember == nil {
			return apperrors.ErrNoTeamMembership
		}
		if !user.TeamMember.Team.CanAssembleAircraft() {
			return apperrors.ErrAssemblyDenied
		}
	}

	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAircraftNotFound
		}
		return fmt.Errorf("failed to get aircraft: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete aircraft: %w", err)
	}
	return nil
}

func (s *AssemblyService) toAircraftResponse(aircraft *models.Aircraft) *AircraftResponse {
	resp := &AircraftResponse{
		ID:             aircraft.ID,
		SerialNumber:   aircraft.SerialNumber,
		AircraftTypeID: aircraft.AircraftTypeID,
		OwnerID:        aircraft.OwnerID,
		CreatedAt:      aircraft.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      aircraft.UpdatedAt.Format(time.RFC3339),
	}
	if aircraft.AircraftType.Name != "" {
		resp.AircraftTypeName = aircraft.AircraftType.Name
	}
	for i := range aircraft.UsedParts {
		part := aircraft.UsedParts[i].Part
		if part.ID == uuid.Nil {
			continue
		}
		resp.UsedParts = append(resp.UsedParts, PartResponse{
			ID:             part.ID,
			SerialNumber:   part.SerialNumber,
			PartTypeID:     part.PartTypeID,
			PartTypeName:   part.PartType.Name,
			AircraftTypeID: part.AircraftTypeID,
			OwnerID:        part.OwnerID,
			IsUsed:         part.IsUsed,
			CreatedAt:      part.CreatedAt.Format(time.RFC3339),
			UpdatedAt:      part.UpdatedAt.Format(time.RFC3339),
		})
	}
	return resp
}
