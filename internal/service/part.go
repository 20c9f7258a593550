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

// PartService handles business logic for part production and recycling.
type PartService struct {
	repo        repository.PartRepositoryInterface
	userRepo    repository.UserRepositoryInterface
	memberRepo  repository.TeamMemberRepositoryInterface
	typeRepo    repository.PartTypeRepositoryInterface
	acTypeRepo  repository.AircraftTypeRepositoryInterface
	permissions PermissionServiceInterface
	validator   *validator.Validate
}

// NewPartService creates a new part service
func NewPartService(
	repo repository.PartRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	memberRepo repository.TeamMemberRepositoryInterface,
	typeRepo repository.PartTypeRepositoryInterface,
	acTypeRepo repository.AircraftTypeRepositoryInterface,
	permissions PermissionServiceInterface,
	validator *validator.Validate,
) *PartService {
	return &PartService{
		repo:        repo,
		userRepo:    userRepo,
		memberRepo:  memberRepo,
		typeRepo:    typeRepo,
		acTypeRepo:  acTypeRepo,
		permissions: permissions,
		validator:   validator,
	}
}

// CreatePartRequest represents the data needed to produce a part
type CreatePartRequest struct {
	PartTypeID     uuid.UUID `json:"part_type_id" validate:"required"`
	AircraftTypeID uuid.UUID `json:"aircraft_type_id" validate:"required"`
}

// PartResponse represents the response data for a part
type PartResponse struct {
	ID               uuid.UUID  `json:"id"`
	SerialNumber     string     `json:"serial_number"`
	PartTypeID       uuid.UUID  `json:"part_type_id"`
	PartTypeName     string     `json:"part_type_name,omitempty"`
	AircraftTypeID   uuid.UUID  `json:"aircraft_type_id"`
	AircraftTypeName string     `json:"aircraft_type_name,omitempty"`
	OwnerID          *uuid.UUID `json:"owner_id,omitempty"`
	IsUsed           bool       `json:"is_used"`
	CreatedAt        string     `json:"created_at"`
	UpdatedAt        string     `json:"updated_at"`
}

// PartListResponse represents a paginated list of parts
type PartListResponse struct {
	Parts  []PartResponse `json:"parts"`
	Total  int64          `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// PartListFilter narrows part listings; nil fields are ignored
type PartListFilter struct {
	PartTypeID     *uuid.UUID
	AircraftTypeID *uuid.UUID
	OwnerID        *uuid.UUID
	IsUsed         *bool
}

// CreatePart produces a new part on behalf of the given user. The user must
// belong to a team whose type holds a can_create permission for the part
// type. The serial number is generated here; a collision with a concurrent
// insert is retried once with a fresh serial before giving up.
func (s *PartService) CreatePart(userID uuid.UUID, req *CreatePartRequest) (*PartResponse, error) {
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

	partType, err := s.typeRepo.GetByID(req.PartTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPartTypeNotFound
		}
		return nil, fmt.Errorf("failed to get part type: %w", err)
	}
	if _, err := s.acTypeRepo.GetByID(req.AircraftTypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAircraftTypeNotFound
		}
		return nil, fmt.Errorf("failed to get aircraft type: %w", err)
	}

	allowed, err := s.permissions.CanCreatePart(member.Team.TeamTypeID, req.PartTypeID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.ErrPartCreateDenied
	}

	ownerID := member.ID
	var part *models.Part
	// The cached matrix answer above may be stale and the serial probe is
	// racy; both are settled inside CreateChecked's transaction. A serial
	// collision gets one transparent retry with a fresh serial.
	for attempt := 0; attempt < 2; attempt++ {
		serial, err := generateSerialNumber(PartSerialPrefix, s.repo.SerialNumberExists)
		if err != nil {
			return nil, err
		}

		part = &models.Part{
			PartTypeID:     req.PartTypeID,
			AircraftTypeID: req.AircraftTypeID,
			OwnerID:        &ownerID,
			SerialNumber:   serial,
		}
		err = s.repo.CreateChecked(part, member.Team.TeamTypeID)
		if err == nil {
			metrics.Default().PartsProducedTotal.WithLabelValues(partType.Name).Inc()
			return s.toPartResponse(part), nil
		}
		if errors.Is(err, apperrors.ErrPartCreateDenied) {
			return nil, apperrors.ErrPartCreateDenied
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("failed to create part: %w", err)
		}
	}
	return nil, apperrors.ErrDuplicateSerialNumber
}

// GetPartByID retrieves a part with its relations
func (s *PartService) GetPartByID(id uuid.UUID) (*PartResponse, error) {
	part, err := s.repo.GetWithRelations(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPartNotFound
		}
		return nil, fmt.Errorf("failed to get part: %w", err)
	}
	return s.toPartResponse(part), nil
}

// GetPartBySerialNumber retrieves a part by its serial number
func (s *PartService) GetPartBySerialNumber(serialNumber string) (*PartResponse, error) {
	part, err := s.repo.GetBySerialNumber(serialNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPartNotFound
		}
		return nil, fmt.Errorf("failed to get part: %w", err)
	}
	return s.toPartResponse(part), nil
}

// ListParts retrieves parts matching the filter with pagination
func (s *PartService) ListParts(filter PartListFilter, limit, offset int) (*PartListResponse, error) {
	parts, total, err := s.repo.List(repository.PartFilter{
		PartTypeID:     filter.PartTypeID,
		AircraftTypeID: filter.AircraftTypeID,
		OwnerID:        filter.OwnerID,
		IsUsed:         filter.IsUsed,
	}, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list parts: %w", err)
	}

	responses := make([]PartResponse, len(parts))
	for i := range parts {
		responses[i] = *s.toPartResponse(&parts[i])
	}

	return &PartListResponse{
		Parts:  responses,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// RecyclePart removes an unused part from the inventory. Only members of the
// team that produced the part may recycle it; admins may recycle any part.
// A part consumed by an aircraft can never be recycled.
func (s *PartService) RecyclePart(userID uuid.UUID, partID uuid.UUID) error {
	user, err := s.userRepo.GetWithMembership(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	part, err := s.repo.GetWithRelations(partID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPartNotFound
		}
		return fmt.Errorf("failed to get part: %w", err)
	}

	if part.IsUsed {
		return apperrors.NewPartInUseError(part.SerialNumber)
	}

	if !user.IsAdmin {
		if user.TeamMember == nil {
			return apperrors.ErrNoTeamMembership
		}
		if part.Owner == nil || part.Owner.TeamID != user.TeamMember.TeamID {
			return apperrors.ErrNotPartOwnerTeam
		}
	}

	if err := s.repo.Delete(partID); err != nil {
		return fmt.Errorf("failed to recycle part: %w", err)
	}
	metrics.Default().PartsRecycledTotal.Inc()
	return nil
}

func (s *PartService) toPartResponse(part *models.Part) *PartResponse {
	resp := &PartResponse{
		ID:             part.ID,
		SerialNumber:   part.SerialNumber,
		PartTypeID:     part.PartTypeID,
		AircraftTypeID: part.AircraftTypeID,
		OwnerID:        part.OwnerID,
		IsUsed:         part.IsUsed,
		CreatedAt:      part.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      part.UpdatedAt.Format(time.RFC3339),
	}
	if part.PartType.Name != "" {
		resp.PartTypeName = part.PartType.Name
	}
	if part.AircraftType.Name != "" {
		resp.AircraftTypeName = part.AircraftType.Name
	}
	return resp
}
