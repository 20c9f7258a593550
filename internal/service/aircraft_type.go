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

// AircraftTypeService handles the aircraft type catalog.
type AircraftTypeService struct {
	repo      repository.AircraftTypeRepositoryInterface
	validator *validator.Validate
}

// NewAircraftTypeService creates a new aircraft type service
func NewAircraftTypeService(repo repository.AircraftTypeRepositoryInterface, validator *validator.Validate) *AircraftTypeService {
	return &AircraftTypeService{
		repo:      repo,
		validator: validator,
	}
}

// CreateAircraftTypeRequest represents the data needed to create an aircraft type
type CreateAircraftTypeRequest struct {
	Name        string `json:"name" validate:"required,max=64"`
	Description string `json:"description" validate:"max=200"`
}

// UpdateAircraftTypeRequest represents the data needed to update an aircraft type
type UpdateAircraftTypeRequest struct {
	Description *string `json:"description" validate:"omitempty,max=200"`
}

// AircraftTypeResponse represents the response data for an aircraft type
type AircraftTypeResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// CreateAircraftType adds a new aircraft type to the catalog
func (s *AircraftTypeService) CreateAircraftType(req *CreateAircraftTypeRequest) (*AircraftTypeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	acType := &models.AircraftType{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Create(acType); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrAircraftTypeExists
		}
		return nil, fmt.Errorf("failed to create aircraft type: %w", err)
	}
	return s.toResponse(acType), nil
}

// GetAircraftTypeByID retrieves an aircraft type by ID
func (s *AircraftTypeService) GetAircraftTypeByID(id uuid.UUID) (*AircraftTypeResponse, error) {
	acType, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAircraftTypeNotFound
		}
		return nil, fmt.Errorf("failed to get aircraft type: %w", err)
	}
	return s.toResponse(acType), nil
}

// GetAircraftTypes retrieves the full aircraft type catalog
func (s *AircraftTypeService) GetAircraftTypes() ([]AircraftTypeResponse, error) {
	acTypes, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list aircraft types: %w", err)
	}

	responses := make([]AircraftTypeResponse, len(acTypes))
	for i := range acTypes {
		responses[i] = *s.toResponse(&acTypes[i])
	}
	return responses, nil
}

// UpdateAircraftType updates an aircraft type's description
func (s *AircraftTypeService) UpdateAircraftType(id uuid.UUID, req *UpdateAircraftTypeRequest) (*AircraftTypeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	acType, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAircraftTypeNotFound
		}
		return nil, fmt.Errorf("failed to get aircraft type: %w", err)
	}

	if req.Description != nil {
		acType.Description = *req.Description
	}
	if err := s.repo.Update(acType); err != nil {
		return nil, fmt.Errorf("failed to update aircraft type: %w", err)
	}
	return s.toResponse(acType), nil
}

// DeleteAircraftType removes an aircraft type. Types referenced by existing
// parts or aircraft are protected by the database and report a conflict.
func (s *AircraftTypeService) DeleteAircraftType(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAircraftTypeNotFound
		}
		return fmt.Errorf("failed to get aircraft type: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return apperrors.NewConflictError("aircraft type is still referenced by existing parts or aircraft")
		}
		return fmt.Errorf("failed to delete aircraft type: %w", err)
	}
	return nil
}

func (s *AircraftTypeService) toResponse(acType *models.AircraftType) *AircraftTypeResponse {
	return &AircraftTypeResponse{
		ID:          acType.ID,
		Name:        acType.Name,
		Description: acType.Description,
		CreatedAt:   acType.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   acType.UpdatedAt.Format(time.RFC3339),
	}
}
