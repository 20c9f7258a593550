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
	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

// PermissionService manages the (team type, part type) creation matrix and
// answers the hot-path question "may this team type create this part type".
// Lookups are cached; every write to the matrix flushes the cache so a
// revoked permission takes effect on the next request.
type PermissionService struct {
	repo      repository.PermissionRepositoryInterface
	validator *validator.Validate
	cache     *cache.Cache
}

// NewPermissionService creates a new permission service. cacheTTL bounds how
// long a cached matrix answer may be served.
func NewPermissionService(repo repository.PermissionRepositoryInterface, validator *validator.Validate, cacheTTL time.Duration) *PermissionService {
	return &PermissionService{
		repo:      repo,
		validator: validator,
		cache:     cache.New(cacheTTL, 2*cacheTTL),
	}
}

// CreatePermissionRequest represents the data needed to create a permission entry
type CreatePermissionRequest struct {
	TeamTypeID uuid.UUID `json:"team_type_id" validate:"required"`
	PartTypeID uuid.UUID `json:"part_type_id" validate:"required"`
	CanCreate  bool      `json:"can_create"`
}

// UpdatePermissionRequest represents the data needed to update a permission entry
type UpdatePermissionRequest struct {
	CanCreate *bool `json:"can_create" validate:"required"`
}

// PermissionResponse represents the response data for a permission entry
type PermissionResponse struct {
	ID         uuid.UUID `json:"id"`
	TeamTypeID uuid.UUID `json:"team_type_id"`
	PartTypeID uuid.UUID `json:"part_type_id"`
	CanCreate  bool      `json:"can_create"`
	CreatedAt  string    `json:"created_at"`
	UpdatedAt  string    `json:"updated_at"`
}

// PermissionListResponse represents a paginated list of permission entries
type PermissionListResponse struct {
	Permissions []PermissionResponse `json:"permissions"`
	Total       int64                `json:"total"`
	Limit       int                  `json:"limit"`
	Offset      int                  `json:"offset"`
}

// CanCreatePart reports whether the given team type may create parts of the
// given part type. A missing matrix row is a denial.
func (s *PermissionService) CanCreatePart(teamTypeID, partTypeID uuid.UUID) (bool, error) {
	key := permissionCacheKey(teamTypeID, partTypeID)
	if cached, found := s.cache.Get(key); found {
		metrics.Default().PermissionCacheHitsTotal.Inc()
		return cached.(bool), nil
	}
	metrics.Default().PermissionCacheMissesTotal.Inc()

	allowed, err := s.repo.CanCreate(teamTypeID, partTypeID)
	if err != nil {
		return false, fmt.Errorf("failed to check part creation permission: %w", err)
	}
	s.cache.SetDefault(key, allowed)
	return allowed, nil
}

// CreatePermission adds a new matrix entry
func (s *PermissionService) CreatePermission(req *CreatePermissionRequest) (*PermissionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	permission := &models.TeamPartPermission{
		TeamTypeID: req.TeamTypeID,
		PartTypeID: req.PartTypeID,
		CanCreate:  req.CanCreate,
	}

	if err := s.repo.Create(permission); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrPermissionExists
		}
		return nil, fmt.Errorf("failed to create permission: %w", err)
	}

	s.cache.Flush()
	return s.toPermissionResponse(permission), nil
}

// GetPermissionByID retrieves a matrix entry by ID
func (s *PermissionService) GetPermissionByID(id uuid.UUID) (*PermissionResponse, error) {
	permission, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPermissionNotFound
		}
		return nil, fmt.Errorf("failed to get permission: %w", err)
	}
	return s.toPermissionResponse(permission), nil
}

// GetPermissions retrieves matrix entries with pagination
func (s *PermissionService) GetPermissions(limit, offset int) (*PermissionListResponse, error) {
	permissions, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}

	responses := make([]PermissionResponse, len(permissions))
	for i := range permissions {
		responses[i] = *s.toPermissionResponse(&permissions[i])
	}

	return &PermissionListResponse{
		Permissions: responses,
		Total:       total,
		Limit:       limit,
		Offset:      offset,
	}, nil
}

// UpdatePermission flips the CanCreate flag of an existing matrix entry.
// Team type and part type are immutable; delete and recreate to move an
// entry.
func (s *PermissionService) UpdatePermission(id uuid.UUID, req *UpdatePermissionRequest) (*PermissionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	permission, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPermissionNotFound
		}
		return nil, fmt.Errorf("failed to get permission: %w", err)
	}

	permission.CanCreate = *req.CanCreate
	if err := s.repo.Update(permission); err != nil {
		return nil, fmt.Errorf("failed to update permission: %w", err)
	}

	s.cache.Flush()
	return s.toPermissionResponse(permission), nil
}

// DeletePermission removes a matrix entry; the pair reverts to denied.
func (s *PermissionService) DeletePermission(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPermissionNotFound
		}
		return fmt.Errorf("failed to get permission: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete permission: %w", err)
	}

	s.cache.Flush()
	return nil
}

func (s *PermissionService) toPermissionResponse(permission *models.TeamPartPermission) *PermissionResponse {
	return &PermissionResponse{
		ID:         permission.ID,
		TeamTypeID: permission.TeamTypeID,
		PartTypeID: permission.PartTypeID,
		CanCreate:  permission.CanCreate,
		CreatedAt:  permission.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  permission.UpdatedAt.Format(time.RFC3339),
	}
}

func permissionCacheKey(teamTypeID, partTypeID uuid.UUID) string {
	return teamTypeID.String() + ":" + partTypeID.String()
}
