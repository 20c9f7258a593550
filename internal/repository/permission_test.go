//go:build integration
// +build integration

package repository

import (
	"testing"

	"aircraft-manufacturing-backend/internal/database/models"
	"aircraft-manufacturing-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PermissionRepositoryTestSuite tests the PermissionRepository
type PermissionRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *PermissionRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *PermissionRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewPermissionRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *PermissionRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *PermissionRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *PermissionRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *PermissionRepositoryTestSuite) createTypePair() (*models.TeamType, *models.PartType) {
	teamType := suite.factories.TeamType.Create()
	partType := suite.factories.PartType.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(teamType).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(partType).Error)
	return teamType, partType
}

// TestCreate tests inserting a permission row
func (suite *PermissionRepositoryTestSuite) TestCreate() {
	teamType, partType := suite.createTypePair()

	perm := suite.factories.Permission.Create(teamType.ID, partType.ID)
	suite.NoError(suite.repo.Create(perm))

	stored, err := suite.repo.GetByID(perm.ID)
	suite.NoError(err)
	suite.True(stored.CanCreate)
}

// TestCreateDuplicatePair tests the unique index on the type pair
func (suite *PermissionRepositoryTestSuite) TestCreateDuplicatePair() {
	teamType, partType := suite.createTypePair()

	first := suite.factories.Permission.Create(teamType.ID, partType.ID)
	suite.NoError(suite.repo.Create(first))

	second := suite.factories.Permission.Denied(teamType.ID, partType.ID)
	err := suite.repo.Create(second)
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestGetByPair tests lookup by (team type, part type)
func (suite *PermissionRepositoryTestSuite) TestGetByPair() {
	teamType, partType := suite.createTypePair()
	perm := suite.factories.Permission.Create(teamType.ID, partType.ID)
	suite.NoError(suite.repo.Create(perm))

	found, err := suite.repo.GetByPair(teamType.ID, partType.ID)
	suite.NoError(err)
	suite.Equal(perm.ID, found.ID)

	otherTeamType, otherPartType := suite.createTypePair()
	_, err = suite.repo.GetByPair(otherTeamType.ID, otherPartType.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestCanCreate tests the three matrix states: granted, explicitly denied
// and absent
func (suite *PermissionRepositoryTestSuite) TestCanCreate() {
	teamType, partType := suite.createTypePair()
	suite.NoError(suite.repo.Create(suite.factories.Permission.Create(teamType.ID, partType.ID)))

	allowed, err := suite.repo.CanCreate(teamType.ID, partType.ID)
	suite.NoError(err)
	suite.True(allowed)

	deniedTeamType, deniedPartType := suite.createTypePair()
	suite.NoError(suite.repo.Create(suite.factories.Permission.Denied(deniedTeamType.ID, deniedPartType.ID)))

	allowed, err = suite.repo.CanCreate(deniedTeamType.ID, deniedPartType.ID)
	suite.NoError(err)
	suite.False(allowed)

	absentTeamType, absentPartType := suite.createTypePair()
	allowed, err = suite.repo.CanCreate(absentTeamType.ID, absentPartType.ID)
	suite.NoError(err)
	suite.False(allowed)
}

// TestGetAll tests pagination over the matrix
func (suite *PermissionRepositoryTestSuite) TestGetAll() {
	for i := 0; i < 3; i++ {
		teamType, partType := suite.createTypePair()
		suite.NoError(suite.repo.Create(suite.factories.Permission.Create(teamType.ID, partType.ID)))
	}

	page, total, err := suite.repo.GetAll(2, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(page, 2)

	rest, total, err := suite.repo.GetAll(2, 2)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(rest, 1)
}

// TestUpdate tests flipping the can_create flag
func (suite *PermissionRepositoryTestSuite) TestUpdate() {
	teamType, partType := suite.createTypePair()
	perm := suite.factories.Permission.Create(teamType.ID, partType.ID)
	suite.NoError(suite.repo.Create(perm))

	perm.CanCreate = false
	suite.NoError(suite.repo.Update(perm))

	allowed, err := suite.repo.CanCreate(teamType.ID, partType.ID)
	suite.NoError(err)
	suite.False(allowed)
}

// TestDelete tests that removing the row falls back to default deny
func (suite *PermissionRepositoryTestSuite) TestDelete() {
	teamType, partType := suite.createTypePair()
	perm := suite.factories.Permission.Create(teamType.ID, partType.ID)
	suite.NoError(suite.repo.Create(perm))

	suite.NoError(suite.repo.Delete(perm.ID))

	allowed, err := suite.repo.CanCreate(teamType.ID, partType.ID)
	suite.NoError(err)
	suite.False(allowed)
}

// TestPermissionRepositoryTestSuite runs the test suite
func TestPermissionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PermissionRepositoryTestSuite))
}
