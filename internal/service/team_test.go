package service

import (
	"testing"

	apperrors "aircraft-manufacturing-backend/internal/errors"
	"aircraft-manufacturing-backend/internal/repository"
	"aircraft-manufacturing-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTeamService(db *gorm.DB) *TeamService {
	return NewTeamService(
		repository.NewTeamRepository(db),
		repository.NewTeamTypeRepository(db),
		repository.NewTeamMemberRepository(db),
		repository.NewUserRepository(db),
		validator.New(),
	)
}

func TestTeamService_CreateTeam(t *testing.T) {
	db := setupTestDB(t)
	f := setupFixtures(t, db)
	svc := newTeamService(db)

	team, err := svc.CreateTeam(&CreateTeamRequest{
		TeamTypeID:  f.WingTeamType.ID,
		Name:        "wing-team-2",
		Description: "second wing line",
	})
	require.NoError(t, err)
	assert.Equal(t, "wing-team-2", team.Name)
	assert.Equal(t, f.WingTeamType.Name, team.TeamTypeName)
	assert.Zero(t, team.MemberCount)
}

func TestTeamService_CreateTeam_DuplicateName(t *testing.T) {
	db := setupTestDB(t)
	f := setupFixtures(t, db)
	svc := newTeamService(db)

	_, err := svc.CreateTeam(&CreateTeamRequest{
		TeamTypeID: f.WingTeamType.ID,
		Name:       f.WingTeam.Name,
	})
	assert.ErrorIs(t, err, apperrors.ErrTeamExists)
}

func TestTeamService_CreateTeam_UnknownTeamType(t *testing.T) {
	db := setupTestDB(t)
	setupFixtures(t, db)
	svc := newTeamService(db)

	_, err := svc.CreateTeam(&CreateTeamRequest{
		TeamTypeID: uuid.New(),
		Name:       "orphan-team",
	})
	assert.ErrorIs(t, err, apperrors.ErrTeamTypeNotFound)
}

func TestTeamService_DeleteTeam_WithMembers(t *testing.T) {
	db := setupTestDB(t)
	f := setupFixtures(t, db)
	svc := newTeamService(db)

	// WingTeam has a member; deletion must be refused until the member is
	// reassigned.
	err := svc.DeleteTeam(f.WingTeam.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))

	require.NoError(t, svc.RemoveMember(f.WingTeam.ID, f.WingMember.ID))
	require.NoError(t, svc.DeleteTeam(f.WingTeam.ID))

	_, err = svc.GetTeamByID(f.WingTeam.ID)
	assert.ErrorIs(t, err, apperrors.ErrTeamNotFound)
}

func TestTeamService_AddMember_OneTeamPerUser(t *testing.T) {
	db := setupTestDB(t)
	f := setupFixtures(t, db)
	svc := newTeamService(db)

	users := testutils.NewUserFactory()
	newcomer := users.WithUsername("wing-2")
	mustCreate(t, db, newcomer)

	member, err := svc.AddMember(f.WingTeam.ID, newcomer.ID)
	require.NoError(t, err)
	assert.Equal(t, newcomer.ID, member.UserID)

	// Already a member of the wing team; a second membership anywhere is
	// refused.
	_, err = svc.AddMember(f.AssemblyTeam.ID, newcomer.ID)
	assert.ErrorIs(t, err, apperrors.ErrTeamMemberExists)
}

func TestTeamService_RemoveMember_WrongTeam(t *testing.T) {
	db := setupTestDB(t)
	f := setupFixtures(t, db)
	svc := newTeamService(db)

	err := svc.RemoveMember(f.AssemblyTeam.ID, f.WingMember.ID)
	assert.ErrorIs(t, err, apperrors.ErrTeamMemberNotFound)
}

func TestTeamService_GetTeamMembers(t *testing.T) {
	db := setupTestDB(t)
	f := setupFixtures(t, db)
	svc := newTeamService(db)

	list, err := svc.GetTeamMembers(f.WingTeam.ID, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.Total)
	require.Len(t, list.Members, 1)
	assert.Equal(t, f.WingUser.Username, list.Members[0].Username)

	_, err = svc.GetTeamMembers(uuid.New(), 10, 0)
	assert.ErrorIs(t, err, apperrors.ErrTeamNotFound)
}
