//go:build integration
// +build integration

package repository

import (
	"testing"

	"aircraft-manufacturing-backend/internal/database/models"
	apperrors "aircraft-manufacturing-backend/internal/errors"
	"aircraft-manufacturing-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// AircraftRepositoryTestSuite tests the AircraftRepository
type AircraftRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AircraftRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *AircraftRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewAircraftRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *AircraftRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AircraftRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *AircraftRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// assemblyFixture holds the rows an assembly needs: catalog types, an
// assembly team with one member, and two unused parts for the aircraft type.
type assemblyFixture struct {
	teamType     *models.TeamType
	partType     *models.PartType
	aircraftType *models.AircraftType
	member       *models.TeamMember
	parts        []*models.Part
}

func (suite *AircraftRepositoryTestSuite) createAssemblyFixture() *assemblyFixture {
	db := suite.baseTestSuite.DB

	fx := &assemblyFixture{
		teamType:     suite.factories.TeamType.WithName(models.TeamTypeAssembly),
		partType:     suite.factories.PartType.Create(),
		aircraftType: suite.factories.AircraftType.Create(),
	}
	suite.NoError(db.Create(fx.teamType).Error)
	suite.NoError(db.Create(fx.partType).Error)
	suite.NoError(db.Create(fx.aircraftType).Error)

	team := suite.factories.Team.WithTeamType(fx.teamType.ID)
	suite.NoError(db.Create(team).Error)

	user := suite.factories.User.Create()
	suite.NoError(db.Create(user).Error)

	fx.member = suite.factories.TeamMember.Create(user.ID, team.ID)
	suite.NoError(db.Create(fx.member).Error)

	for i := 0; i < 2; i++ {
		part := suite.factories.Part.Create(fx.partType.ID, fx.aircraftType.ID)
		suite.NoError(db.Create(part).Error)
		fx.parts = append(fx.parts, part)
	}
	return fx
}

func (suite *AircraftRepositoryTestSuite) newAircraft(fx *assemblyFixture) *models.Aircraft {
	id := uuid.New()
	return &models.Aircraft{
		BaseModel:      models.BaseModel{ID: id},
		AircraftTypeID: fx.aircraftType.ID,
		OwnerID:        fx.member.ID,
		SerialNumber:   "A-TEST" + id.String()[:8],
	}
}

// TestCreateWithParts tests that assembly persists the aircraft, binds the
// parts and flips them to used in one transaction
func (suite *AircraftRepositoryTestSuite) TestCreateWithParts() {
	fx := suite.createAssemblyFixture()
	aircraft := suite.newAircraft(fx)

	err := suite.repo.CreateWithParts(aircraft, []uuid.UUID{fx.parts[0].ID, fx.parts[1].ID})
	suite.NoError(err)

	loaded, err := suite.repo.GetWithParts(aircraft.ID)
	suite.NoError(err)
	suite.Len(loaded.UsedParts, 2)

	var usedCount int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.Part{}).
		Where("is_used = ?", true).Count(&usedCount).Error)
	suite.Equal(int64(2), usedCount)
}

// TestCreateWithPartsEmptyList tests that an aircraft can be assembled
// without consuming any parts
func (suite *AircraftRepositoryTestSuite) TestCreateWithPartsEmptyList() {
	fx := suite.createAssemblyFixture()
	aircraft := suite.newAircraft(fx)

	suite.NoError(suite.repo.CreateWithParts(aircraft, nil))

	loaded, err := suite.repo.GetWithParts(aircraft.ID)
	suite.NoError(err)
	suite.Empty(loaded.UsedParts)
}

// TestCreateWithPartsUsedPart tests that a part flipped to used by a
// concurrent assembly aborts the transaction with a conflict
func (suite *AircraftRepositoryTestSuite) TestCreateWithPartsUsedPart() {
	fx := suite.createAssemblyFixture()

	// Simulate a racing assembly that consumed the second part after the
	// service layer's availability check passed.
	suite.NoError(suite.baseTestSuite.DB.Model(fx.parts[1]).Update("is_used", true).Error)

	aircraft := suite.newAircraft(fx)
	err := suite.repo.CreateWithParts(aircraft, []uuid.UUID{fx.parts[0].ID, fx.parts[1].ID})

	suite.Error(err)
	suite.True(apperrors.IsConflict(err))

	// Rollback must leave no aircraft and leave the first part unconsumed.
	_, err = suite.repo.GetByID(aircraft.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	var first models.Part
	suite.NoError(suite.baseTestSuite.DB.First(&first, "id = ?", fx.parts[0].ID).Error)
	suite.False(first.IsUsed)
}

// TestCreateWithPartsBoundPart tests that the unique index on
// aircraft_parts.part_id rejects binding a part twice
func (suite *AircraftRepositoryTestSuite) TestCreateWithPartsBoundPart() {
	fx := suite.createAssemblyFixture()

	first := suite.newAircraft(fx)
	suite.NoError(suite.repo.CreateWithParts(first, []uuid.UUID{fx.parts[0].ID}))

	// Force the join-row path: reset the flag so the conditional update
	// would succeed and only the unique index stands in the way.
	suite.NoError(suite.baseTestSuite.DB.Model(fx.parts[0]).Update("is_used", false).Error)

	second := suite.newAircraft(fx)
	err := suite.repo.CreateWithParts(second, []uuid.UUID{fx.parts[0].ID})

	suite.Error(err)
	suite.True(apperrors.IsConflict(err))

	_, err = suite.repo.GetByID(second.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetBySerialNumber tests lookup by serial number
func (suite *AircraftRepositoryTestSuite) TestGetBySerialNumber() {
	fx := suite.createAssemblyFixture()
	aircraft := suite.newAircraft(fx)
	suite.NoError(suite.repo.CreateWithParts(aircraft, nil))

	found, err := suite.repo.GetBySerialNumber(aircraft.SerialNumber)
	suite.NoError(err)
	suite.Equal(aircraft.ID, found.ID)

	_, err = suite.repo.GetBySerialNumber("A-00000000")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestList tests pagination and the aircraft type filter
func (suite *AircraftRepositoryTestSuite) TestList() {
	fx := suite.createAssemblyFixture()
	otherType := suite.factories.AircraftType.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(otherType).Error)

	a1 := suite.newAircraft(fx)
	suite.NoError(suite.repo.CreateWithParts(a1, nil))

	a2 := suite.newAircraft(fx)
	a2.AircraftTypeID = otherType.ID
	suite.NoError(suite.repo.CreateWithParts(a2, nil))

	all, total, err := suite.repo.List(nil, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(all, 2)

	filtered, total, err := suite.repo.List(&otherType.ID, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(a2.ID, filtered[0].ID)
}

// TestDelete tests that deletion removes the join rows but keeps the
// consumed parts used
func (suite *AircraftRepositoryTestSuite) TestDelete() {
	fx := suite.createAssemblyFixture()
	aircraft := suite.newAircraft(fx)
	suite.NoError(suite.repo.CreateWithParts(aircraft, []uuid.UUID{fx.parts[0].ID}))

	suite.NoError(suite.repo.Delete(aircraft.ID))

	_, err := suite.repo.GetByID(aircraft.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	var joinCount int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.AircraftPart{}).
		Where("aircraft_id = ?", aircraft.ID).Count(&joinCount).Error)
	suite.Equal(int64(0), joinCount)

	var part models.Part
	suite.NoError(suite.baseTestSuite.DB.First(&part, "id = ?", fx.parts[0].ID).Error)
	suite.True(part.IsUsed)
}

// TestAircraftRepositoryTestSuite runs the test suite
func TestAircraftRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AircraftRepositoryTestSuite))
}
