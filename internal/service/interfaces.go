package service

import (
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// PermissionServiceInterface defines the interface for the permission service
type PermissionServiceInterface interface {
	CanCreatePart(teamTypeID, partTypeID uuid.UUID) (bool, error)
	CreatePermission(req *CreatePermissionRequest) (*PermissionResponse, error)
	GetPermissionByID(id uuid.UUID) (*PermissionResponse, error)
	GetPermissions(limit, offset int) (*PermissionListResponse, error)
	UpdatePermission(id uuid.UUID, req *UpdatePermissionRequest) (*PermissionResponse, error)
	DeletePermission(id uuid.UUID) error
}

// PartServiceInterface defines the interface for the part service
type PartServiceInterface interface {
	CreatePart(userID uuid.UUID, req *CreatePartRequest) (*PartResponse, error)
	GetPartByID(id uuid.UUID) (*PartResponse, error)
	GetPartBySerialNumber(serialNumber string) (*PartResponse, error)
	ListParts(filter PartListFilter, limit, offset int) (*PartListResponse, error)
	RecyclePart(userID uuid.UUID, partID uuid.UUID) error
}

// AssemblyServiceInterface defines the interface for the assembly service
type AssemblyServiceInterface interface {
	AssembleAircraft(userID uuid.UUID, req *AssembleAircraftRequest) (*AircraftResponse, error)
	GetAircraftByID(id uuid.UUID) (*AircraftResponse, error)
	GetAircraftBySerialNumber(serialNumber string) (*AircraftResponse, error)
	ListAircraft(aircraftTypeID *uuid.UUID, limit, offset int) (*AircraftListResponse, error)
	DeleteAircraft(userID uuid.UUID, id uuid.UUID) error
}

// InventoryServiceInterface defines the interface for the inventory service
type InventoryServiceInterface interface {
	CheckAssemblyReadiness(aircraftTypeID uuid.UUID) (*ReadinessResponse, error)
	GetAllRequirements() ([]AircraftRequirements, error)
	GetInventoryStatus(aircraftTypeID uuid.UUID) (*InventoryStatusResponse, error)
	GetFullInventoryStatus() ([]InventoryStatusResponse, error)
}

// TeamServiceInterface defines the interface for the team service
type TeamServiceInterface interface {
	CreateTeam(req *CreateTeamRequest) (*TeamResponse, error)
	GetTeamByID(id uuid.UUID) (*TeamResponse, error)
	GetTeams(limit, offset int) (*TeamListResponse, error)
	UpdateTeam(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	DeleteTeam(id uuid.UUID) error
	AddMember(teamID, userID uuid.UUID) (*TeamMemberResponse, error)
	RemoveMember(teamID, memberID uuid.UUID) error
	GetTeamMembers(teamID uuid.UUID, limit, offset int) (*TeamMemberListResponse, error)
}

// UserServiceInterface defines the interface for the user service
type UserServiceInterface interface {
	CreateUser(req *CreateUserRequest) (*UserResponse, error)
	GetUserByID(id uuid.UUID) (*UserResponse, error)
	GetUserByUsername(username string) (*UserResponse, error)
	GetUsers(limit, offset int) (*UserListResponse, error)
	UpdateUser(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
	DeleteUser(id uuid.UUID) error
}

// PartTypeServiceInterface defines the interface for the part type service
type PartTypeServiceInterface interface {
	CreatePartType(req *CreatePartTypeRequest) (*PartTypeResponse, error)
	GetPartTypeByID(id uuid.UUID) (*PartTypeResponse, error)
	GetPartTypes() ([]PartTypeResponse, error)
	UpdatePartType(id uuid.UUID, req *UpdatePartTypeRequest) (*PartTypeResponse, error)
	DeletePartType(id uuid.UUID) error
}

// AircraftTypeServiceInterface defines the interface for the aircraft type service
type AircraftTypeServiceInterface interface {
	CreateAircraftType(req *CreateAircraftTypeRequest) (*AircraftTypeResponse, error)
	GetAircraftTypeByID(id uuid.UUID) (*AircraftTypeResponse, error)
	GetAircraftTypes() ([]AircraftTypeResponse, error)
	UpdateAircraftType(id uuid.UUID, req *UpdateAircraftTypeRequest) (*AircraftTypeResponse, error)
	DeleteAircraftType(id uuid.UUID) error
}

// RequirementServiceInterface defines the interface for the requirement service
type RequirementServiceInterface interface {
	CreateRequirement(req *CreateRequirementRequest) (*RequirementResponse, error)
	GetRequirementByID(id uuid.UUID) (*RequirementResponse, error)
	GetRequirements(limit, offset int) (*RequirementListResponse, error)
	UpdateRequirement(id uuid.UUID, req *UpdateRequirementRequest) (*RequirementResponse, error)
	DeleteRequirement(id uuid.UUID) error
}
