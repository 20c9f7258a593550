package testutils

import (
	"time"

	"aircraft-manufacturing-backend/internal/database/models"

	"github.com/google/uuid"
)

// TeamTypeFactory provides methods to create test TeamType data
type TeamTypeFactory struct{}

// NewTeamTypeFactory creates a new TeamTypeFactory
func NewTeamTypeFactory() *TeamTypeFactory {
	return &TeamTypeFactory{}
}

// Create creates a test TeamType with default values
func (f *TeamTypeFactory) Create() *models.TeamType {
	id := uuid.New()
	return &models.TeamType{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// Unique suffix keeps parallel fixtures from tripping the name index.
		Name: "TYPE-" + id.String()[:8],
	}
}

// WithName sets a custom name for the team type
func (f *TeamTypeFactory) WithName(name string) *models.TeamType {
	tt := f.Create()
	tt.Name = name
	return tt
}

// PartTypeFactory provides methods to create test PartType data
type PartTypeFactory struct{}

// NewPartTypeFactory creates a new PartTypeFactory
func NewPartTypeFactory() *PartTypeFactory {
	return &PartTypeFactory{}
}

// Create creates a test PartType with default values
func (f *PartTypeFactory) Create() *models.PartType {
	id := uuid.New()
	return &models.PartType{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "PART-" + id.String()[:8],
		Description: "A test part type",
	}
}

// WithName sets a custom name for the part type
func (f *PartTypeFactory) WithName(name string) *models.PartType {
	pt := f.Create()
	pt.Name = name
	return pt
}

// AircraftTypeFactory provides methods to create test AircraftType data
type AircraftTypeFactory struct{}

// NewAircraftTypeFactory creates a new AircraftTypeFactory
func NewAircraftTypeFactory() *AircraftTypeFactory {
	return &AircraftTypeFactory{}
}

// Create creates a test AircraftType with default values
func (f *AircraftTypeFactory) Create() *models.AircraftType {
	id := uuid.New()
	return &models.AircraftType{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "MODEL-" + id.String()[:8],
		Description: "A test aircraft type",
	}
}

// WithName sets a custom name for the aircraft type
func (f *AircraftTypeFactory) WithName(name string) *models.AircraftType {
	at := f.Create()
	at.Name = name
	return at
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamTypeID:  uuid.New(),
		Name:        "Team " + id.String()[:8],
		Description: "A test team",
	}
}

// WithTeamType sets the team type ID for the team
func (f *TeamFactory) WithTeamType(teamTypeID uuid.UUID) *models.Team {
	team := f.Create()
	team.TeamTypeID = teamTypeID
	return team
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username:  "user-" + id.String()[:8],
		FirstName: "Test",
		LastName:  "User",
		Email:     "user-" + id.String()[:8] + "@factory.test",
		IsAdmin:   false,
	}
}

// WithUsername sets a custom username
func (f *UserFactory) WithUsername(username string) *models.User {
	user := f.Create()
	user.Username = username
	return user
}

// Admin creates a test user with admin rights
func (f *UserFactory) Admin() *models.User {
	user := f.Create()
	user.IsAdmin = true
	return user
}

// TeamMemberFactory provides methods to create test TeamMember data
type TeamMemberFactory struct{}

// NewTeamMemberFactory creates a new TeamMemberFactory
func NewTeamMemberFactory() *TeamMemberFactory {
	return &TeamMemberFactory{}
}

// Create creates a membership linking the given user and team
func (f *TeamMemberFactory) Create(userID, teamID uuid.UUID) *models.TeamMember {
	return &models.TeamMember{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID: userID,
		TeamID: teamID,
	}
}

// PartFactory provides methods to create test Part data
type PartFactory struct{}

// NewPartFactory creates a new PartFactory
func NewPartFactory() *PartFactory {
	return &PartFactory{}
}

// Create creates an unused test Part for the given type pair
func (f *PartFactory) Create(partTypeID, aircraftTypeID uuid.UUID) *models.Part {
	id := uuid.New()
	return &models.Part{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		PartTypeID:     partTypeID,
		AircraftTypeID: aircraftTypeID,
		IsUsed:         false,
		SerialNumber:   "P-TEST" + id.String()[:8],
	}
}

// WithOwner sets the producing team member
func (f *PartFactory) WithOwner(partTypeID, aircraftTypeID, ownerID uuid.UUID) *models.Part {
	part := f.Create(partTypeID, aircraftTypeID)
	part.OwnerID = &ownerID
	return part
}

// Used marks the part as already consumed
func (f *PartFactory) Used(partTypeID, aircraftTypeID uuid.UUID) *models.Part {
	part := f.Create(partTypeID, aircraftTypeID)
	part.IsUsed = true
	return part
}

// PermissionFactory provides methods to create test TeamPartPermission data
type PermissionFactory struct{}

// NewPermissionFactory creates a new PermissionFactory
func NewPermissionFactory() *PermissionFactory {
	return &PermissionFactory{}
}

// Create grants the given team type creation rights for the part type
func (f *PermissionFactory) Create(teamTypeID, partTypeID uuid.UUID) *models.TeamPartPermission {
	return &models.TeamPartPermission{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamTypeID: teamTypeID,
		PartTypeID: partTypeID,
		CanCreate:  true,
	}
}

// Denied creates an explicit denial row for the pair
func (f *PermissionFactory) Denied(teamTypeID, partTypeID uuid.UUID) *models.TeamPartPermission {
	perm := f.Create(teamTypeID, partTypeID)
	perm.CanCreate = false
	return perm
}

// RequirementFactory provides methods to create test AircraftPartRequirement data
// FactorySet bundles all factories for tests that need several of them
type FactorySet struct {
	TeamType     *TeamTypeFactory
	PartType     *PartTypeFactory
	AircraftType *AircraftTypeFactory
	Team         *TeamFactory
	User         *UserFactory
	TeamMember   *TeamMemberFactory
	Part         *PartFactory
	Permission   *PermissionFactory
	Requirement  *RequirementFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		TeamType:     NewTeamTypeFactory(),
		PartType:     NewPartTypeFactory(),
		AircraftType: NewAircraftTypeFactory(),
		Team:         NewTeamFactory(),
		User:         NewUserFactory(),
		TeamMember:   NewTeamMemberFactory(),
		Part:         NewPartFactory(),
		Permission:   NewPermissionFactory(),
		Requirement:  NewRequirementFactory(),
	}
}

type RequirementFactory struct{}

// NewRequirementFactory creates a new RequirementFactory
func NewRequirementFactory() *RequirementFactory {
	return &RequirementFactory{}
}

// Create declares that the aircraft type needs the given quantity of the part type
func (f *RequirementFactory) Create(aircraftTypeID, partTypeID uuid.UUID, quantity int) *models.AircraftPartRequirement {
	return &models.AircraftPartRequirement{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		AircraftTypeID: aircraftTypeID,
		PartTypeID:     partTypeID,
		Quantity:       quantity,
	}
}
