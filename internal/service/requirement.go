package service

import (
	"errors"
	"fmt"
	"time"

	"aircraft-manufacturing-backend/internal/database/models"
	apperrors "aircraft-manufacturing-backend/internal/errors"
	"aircraft-manufacturing-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequirementService manages the aircraft part requirement registry. The
// registry drives readiness reports only; assembly never enforces it.
type RequirementService struct {
	repo      repository.RequirementRepositoryInterface
	validator *validator.Validate
}

// NewRequirementService creates a new requirement service
func NewRequirementService(repo repository.RequirementRepositoryInterface, validator *validator.Validate) *RequirementService {
	return &RequirementService{
		repo:      repo,
		validator: validator,
	}
}

// CreateRequirementRequest represents the data needed to create a requirement
type CreateRequirementRequest struct {
	AircraftTypeID uuid.UUID `json:"aircraft_type_id" validate:"required"`
	PartTypeID     uuid.UUID `json:"part_type_id" validate:"required"`
	Quantity       int       `json:"quantity" validate:"required,gt=0"`
}

// UpdateRequirementRequest represents the data needed to update a requirement
type UpdateRequirementRequest struct {
	Quantity *int `json:"quantity" validate:"required,gt=0"`
}

// RequirementResponse represents the response data for a requirement
type RequirementResponse struct {
	ID             uuid.UUID `json:"id"`
	AircraftTypeID uuid.UUID `json:"aircraft_type_id"`
	PartTypeID     uuid.UUID `json:"part_type_id"`
	Quantity       int       `json:"quantity"`
	CreatedAt      string    `json:"created_at"`
	UpdatedAt      string    `json:"updated_at"`
}

// RequirementListResponse represents a paginated list of requirements
type RequirementListResponse struct {
	Requirements []RequirementResponse `json:"requirements"`
	Total        int64                 `json:"total"`
	Limit        int                   `json:"limit"`
	Offset       int                   `json:"offset"`
}

// CreateRequirement adds a new requirement row
func (s *RequirementService) CreateRequirement(req *CreateRequirementRequest) (*RequirementResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	requirement := &models.AircraftPartRequirement{
		AircraftTypeID: req.AircraftTypeID,
		PartTypeID:     req.PartTypeID,
		Quantity:       req.Quantity,
	}
	if err := s.repo.Create(requirement); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrRequirementExists
		}
		return nil, fmt.Errorf("failed to create requirement: %w", err)
	}
	return s.toResponse(requirement), nil
}

// GetRequirementByID retrieves a requirement by ID
func (s *RequirementService) GetRequirementByID(id uuid.UUID) (*RequirementResponse, error) {
	requirement, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRequirementNotFound
		}
		return nil, fmt.Errorf("failed to get requirement: %w", err)
	}
	return s.toResponse(requirement), nil
}

// GetRequirements retrieves requirements with pagination
func (s *RequirementService) GetRequirements(limit, offset int) (*RequirementListResponse, error) {
	requirements, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list requirements: %w", err)
	}

	responses := make([]RequirementResponse, len(requirements))
	for i := range requirements {
		responses[i] = *s.toResponse(&requirements[i])
	}

	return &RequirementListResponse{
		Requirements: responses,
		Total:        total,
		Limit:        limit,
		Offset:       offset,
	}, nil
}

// UpdateRequirement changes the quantity of an existing requirement. The
// aircraft type and part type pair is immutable.
func (s *RequirementService) UpdateRequirement(id uuid.UUID, req *UpdateRequirementRequest) (*RequirementResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	requirement, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRequirementNotFound
		}
		return nil, fmt.Errorf("failed to get requirement: %w", err)
	}

	requirement.Quantity = *req.Quantity
	if err := s.repo.Update(requirement); err != nil {
		return nil, fmt.Errorf("failed to update requirement: %w", err)
	}
	return s.toResponse(requirement), nil
}

// DeleteRequirement removes a requirement row; the pair reverts to "not
// required".
func (s *RequirementService) DeleteRequirement(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRequirementNotFound
		}
		return fmt.Errorf("failed to get requirement: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete requirement: %w", err)
	}
	return nil
}

func (s *RequirementService) toResponse(requirement *models.AircraftPartRequirement) *RequirementResponse {
	return &RequirementResponse{
		ID:             requirement.ID,
		AircraftTypeID: requirement.AircraftTypeID,
		PartTypeID:     requirement.PartTypeID,
		Quantity:       requirement.Quantity,
		CreatedAt:      requirement.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      requirement.UpdatedAt.Format(time.RFC3339),
	}
}
