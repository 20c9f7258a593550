package repository

import (
	"aircraft-manufacturing-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TeamTypeRepositoryInterface defines the interface for team type repository operations
type TeamTypeRepositoryInterface interface {
	Create(teamType *models.TeamType) error
	GetByID(id uuid.UUID) (*models.TeamType, error)
	GetByName(name string) (*models.TeamType, error)
	GetAll() ([]models.TeamType, error)
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByName(name string) (*models.Team, error)
	GetWithType(id uuid.UUID) (*models.Team, error)
	GetWithMembers(id uuid.UUID) (*models.Team, error)
	GetAll(limit, offset int) ([]models.Team, int64, error)
	Update(team *models.Team) error
	Delete(id uuid.UUID) error
	GetMemberCount(teamID uuid.UUID) (int64, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetWithMembership(id uuid.UUID) (*models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// TeamMemberRepositoryInterface defines the interface for team member repository operations
type TeamMemberRepositoryInterface interface {
	Create(member *models.TeamMember) error
	GetByID(id uuid.UUID) (*models.TeamMember, error)
	GetByUserID(userID uuid.UUID) (*models.TeamMember, error)
	GetWithTeam(id uuid.UUID) (*models.TeamMember, error)
	GetByTeamID(teamID uuid.UUID, limit, offset int) ([]models.TeamMember, int64, error)
	Delete(id uuid.UUID) error
}

// PartTypeRepositoryInterface defines the interface for part type repository operations
type PartTypeRepositoryInterface interface {
	Create(partType *models.PartType) error
	GetByID(id uuid.UUID) (*models.PartType, error)
	GetByName(name string) (*models.PartType, error)
	GetAll() ([]models.PartType, error)
	Update(partType *models.PartType) error
	Delete(id uuid.UUID) error
}

// AircraftTypeRepositoryInterface defines the interface for aircraft type repository operations
type AircraftTypeRepositoryInterface interface {
	Create(aircraftType *models.AircraftType) error
	GetByID(id uuid.UUID) (*models.AircraftType, error)
	GetByName(name string) (*models.AircraftType, error)
	GetAll() ([]models.AircraftType, error)
	Update(aircraftType *models.AircraftType) error
	Delete(id uuid.UUID) error
}

// PermissionRepositoryInterface defines the interface for the team part
// permission matrix
type PermissionRepositoryInterface interface {
	Create(permission *models.TeamPartPermission) error
	GetByID(id uuid.UUID) (*models.TeamPartPermission, error)
	GetByPair(teamTypeID, partTypeID uuid.UUID) (*models.TeamPartPermission, error)
	GetByTeamTypeID(teamTypeID uuid.UUID) ([]models.TeamPartPermission, error)
	GetAll(limit, offset int) ([]models.TeamPartPermission, int64, error)
	Update(permission *models.TeamPartPermission) error
	Delete(id uuid.UUID) error
	CanCreate(teamTypeID, partTypeID uuid.UUID) (bool, error)
}

// RequirementRepositoryInterface defines the interface for the aircraft part
// requirement registry
type RequirementRepositoryInterface interface {
	Create(requirement *models.AircraftPartRequirement) error
	GetByID(id uuid.UUID) (*models.AircraftPartRequirement, error)
	GetByPair(aircraftTypeID, partTypeID uuid.UUID) (*models.AircraftPartRequirement, error)
	GetByAircraftTypeID(aircraftTypeID uuid.UUID) ([]models.AircraftPartRequirement, error)
	GetAll(limit, offset int) ([]models.AircraftPartRequirement, int64, error)
	Update(requirement *models.AircraftPartRequirement) error
	Delete(id uuid.UUID) error
	RequiredQuantity(aircraftTypeID, partTypeID uuid.UUID) (int, error)
}

// PartRepositoryInterface defines the interface for part repository operations
type PartRepositoryInterface interface {
	CreateChecked(part *models.Part, teamTypeID uuid.UUID) error
	GetByID(id uuid.UUID) (*models.Part, error)
	GetBySerialNumber(serialNumber string) (*models.Part, error)
	GetWithRelations(id uuid.UUID) (*models.Part, error)
	List(filter PartFilter, limit, offset int) ([]models.Part, int64, error)
	Delete(id uuid.UUID) error
	SerialNumberExists(serialNumber string) (bool, error)
	CountAvailableByPartType(aircraftTypeID uuid.UUID) (map[uuid.UUID]int, error)
	InventoryCounts(aircraftTypeID uuid.UUID) ([]PartTypeCount, error)
}

// AircraftRepositoryInterface defines the interface for aircraft repository operations
type AircraftRepositoryInterface interface {
	CreateWithParts(aircraft *models.Aircraft, partIDs []uuid.UUID) error
	GetByID(id uuid.UUID) (*models.Aircraft, error)
	GetBySerialNumber(serialNumber string) (*models.Aircraft, error)
	GetWithParts(id uuid.UUID) (*models.Aircraft, error)
	List(aircraftTypeID *uuid.UUID, limit, offset int) ([]models.Aircraft, int64, error)
	Delete(id uuid.UUID) error
	SerialNumberExists(serialNumber string) (bool, error)
}
