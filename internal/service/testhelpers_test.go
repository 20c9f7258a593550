package service

import (
	"path/filepath"
	"testing"
	"time"

	"aircraft-manufacturing-backend/internal/database"
	"aircraft-manufacturing-backend/internal/database/models"
	"aircraft-manufacturing-backend/internal/repository"
	"aircraft-manufacturing-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// setupTestDB opens a throwaway sqlite database with the full schema
// migrated. A file under t.TempDir() is used instead of :memory: because the
// connection pool would otherwise hand each connection its own empty database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Initialize(filepath.Join(t.TempDir(), "test.db"), &database.Options{Driver: "sqlite"})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("failed to create fixture %T: %v", value, err)
	}
}

// factoryFixtures is the standing cast for service tests: a wing team with a
// member who may produce wing parts, an assembly team with a member, and an
// admin user outside any team.
type factoryFixtures struct {
	WingTeamType     *models.TeamType
	AssemblyTeamType *models.TeamType

	WingPartType *models.PartType
	BodyPartType *models.PartType

	TB2 *models.AircraftType

	WingTeam     *models.Team
	AssemblyTeam *models.Team

	WingUser     *models.User
	AssemblyUser *models.User
	AdminUser    *models.User

	WingMember     *models.TeamMember
	AssemblyMember *models.TeamMember
}

func setupFixtures(t *testing.T, db *gorm.DB) *factoryFixtures {
	t.Helper()

	teamTypes := testutils.NewTeamTypeFactory()
	partTypes := testutils.NewPartTypeFactory()
	acTypes := testutils.NewAircraftTypeFactory()
	teams := testutils.NewTeamFactory()
	users := testutils.NewUserFactory()
	members := testutils.NewTeamMemberFactory()
	perms := testutils.NewPermissionFactory()

	f := &factoryFixtures{
		WingTeamType:     teamTypes.WithName(models.TeamTypeWing),
		AssemblyTeamType: teamTypes.WithName(models.TeamTypeAssembly),
		WingPartType:     partTypes.WithName(models.PartTypeWing),
		BodyPartType:     partTypes.WithName(models.PartTypeBody),
		TB2:              acTypes.WithName(models.AircraftTypeTB2),
		WingUser:         users.WithUsername("wing-1"),
		AssemblyUser:     users.WithUsername("assembly-1"),
		AdminUser:        users.Admin(),
	}
	mustCreate(t, db, f.WingTeamType)
	mustCreate(t, db, f.AssemblyTeamType)
	mustCreate(t, db, f.WingPartType)
	mustCreate(t, db, f.BodyPartType)
	mustCreate(t, db, f.TB2)

	f.WingTeam = teams.WithTeamType(f.WingTeamType.ID)
	f.AssemblyTeam = teams.WithTeamType(f.AssemblyTeamType.ID)
	mustCreate(t, db, f.WingTeam)
	mustCreate(t, db, f.AssemblyTeam)

	mustCreate(t, db, f.WingUser)
	mustCreate(t, db, f.AssemblyUser)
	mustCreate(t, db, f.AdminUser)

	f.WingMember = members.Create(f.WingUser.ID, f.WingTeam.ID)
	f.AssemblyMember = members.Create(f.AssemblyUser.ID, f.AssemblyTeam.ID)
	mustCreate(t, db, f.WingMember)
	mustCreate(t, db, f.AssemblyMember)

	mustCreate(t, db, perms.Create(f.WingTeamType.ID, f.WingPartType.ID))

	return f
}

// newPartService wires a PartService against real repositories, the way the
// router does in production.
func newPartService(db *gorm.DB) *PartService {
	v := validator.New()
	permissions := NewPermissionService(repository.NewPermissionRepository(db), v, time.Minute)
	return NewPartService(
		repository.NewPartRepository(db),
		repository.NewUserRepository(db),
		repository.NewTeamMemberRepository(db),
		repository.NewPartTypeRepository(db),
		repository.NewAircraftTypeRepository(db),
		permissions,
		v,
	)
}

func newAssemblyService(db *gorm.DB) *AssemblyService {
	return NewAssemblyService(
		repository.NewAircraftRepository(db),
		repository.NewPartRepository(db),
		repository.NewTeamMemberRepository(db),
		repository.NewAircraftTypeRepository(db),
		repository.NewUserRepository(db),
		validator.New(),
	)
}

func newInventoryService(db *gorm.DB) *InventoryService {
	return NewInventoryService(
		repository.NewPartRepository(db),
		repository.NewPartTypeRepository(db),
		repository.NewAircraftTypeRepository(db),
		repository.NewRequirementRepository(db),
	)
}
