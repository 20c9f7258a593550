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

// PartTypeService handles the part type catalog.
type PartTypeService struct {
	repo      repository.PartTypeRepositoryInterface
	validator *validator.Validate
}

// NewPartTypeService creates a new part type service
func NewPartTypeService(repo repository.PartTypeRepositoryInterface, validator *validator.Validate) *PartTypeService {
	return &PartTypeService{
		repo:      repo,
		validator: validator,
	}
}

// CreatePartTypeRequest represents the data needed to create a part type
type CreatePartTypeRequest struct {
	Name        string `json:"name" validate:"required,max=64"`
	Description string `json:"description" validate:"max=200"`
}

// UpdatePartTypeRequest represents the data needed to update a part type
type UpdatePartTypeRequest struct {
	Description *string `json:"description" validate:"omitempty,max=200"`
}

// PartTypeResponse represents the response data for a part type
type PartTypeResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// CreatePartType adds a new part type to the catalog
func (s *PartTypeService) CreatePartType(req *CreatePartTypeRequest) (*PartTypeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	partType := &models.PartType{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Create(partType); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrPartTypeExists
		}
		return nil, fmt.Errorf("failed to create part type: %w", err)
	}
	return s.toResponse(partType), nil
}

// GetPartTypeByID retrieves a part type by ID
func (s *PartTypeService) GetPartTypeByID(id uuid.UUID) (*PartTypeResponse, error) {
	partType, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPartTypeNotFound
		}
		return nil, fmt.Errorf("failed to get part type: %w", err)
	}
	return s.toResponse(partType), nil
}

// GetPartTypes retrieves the full part type catalog
func (s *PartTypeService) GetPartTypes() ([]PartTypeResponse, error) {
	partTypes, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list part types: %w", err)
	}

	responses := make([]PartTypeResponse, len(partTypes))
	for i := range partTypes {
		responses[i] = *s.toResponse(&partTypes[i])
	}
	return responses, nil
}

// UpdatePartType updates a part type's description. The name is immutable
// because serialized parts reference it operationally.
func (s *PartTypeService) UpdatePartType(id uuid.UUID, req *UpdatePartTypeRequest) (*PartTypeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	partType, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPartTypeNotFound
		}
		return nil, fmt.Errorf("failed to get part type: %w", err)
	}

	if req.Description != nil {
		partType.Description = *req.Description
	}
	if err := s.repo.Update(partType); err != nil {
		return nil, fmt.Errorf("failed to update part type: %w", err)
	}
	return s.toResponse(partType), nil
}

// DeletePartType removes a part type. Types referenced by existing parts are
// protected by the database and report a conflict.
func (s *PartTypeService) DeletePartType(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPartTypeNotFound
		}
		return fmt.Errorf("failed to get part type: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return apperrors.NewConflictError("part type is still referenced by existing parts")
		}
		return fmt.Errorf("failed to delete part type: %w", err)
	}
	return nil
}

func (s *PartTypeService) toResponse(partType *models.PartType) *PartTypeResponse {
	return &PartTypeResponse{
		ID:          partType.ID,
		Name:        partType.Name,
		Description: partType.Description,
		CreatedAt:   partType.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   partType.UpdatedAt.Format(time.RFC3339),
	}
}
