package service

import (
	"errors"
	"testing"
	"time"

	apperrors "aircraft-manufacturing-backend/internal/errors"
	"aircraft-manufacturing-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPermissionService(t *testing.T) (*PermissionService, *factoryFixtures) {
	db := setupTestDB(t)
	f := setupFixtures(t, db)
	svc := NewPermissionService(repository.NewPermissionRepository(db), validator.New(), time.Minute)
	return svc, f
}

func TestPermissionService_CanCreatePart_DefaultDeny(t *testing.T) {
	svc, f := newPermissionService(t)

	// No matrix row for (ASSEMBLY, WING): denied, not an error.
	allowed, err := svc.CanCreatePart(f.AssemblyTeamType.ID, f.WingPartType.ID)
	require.NoError(t, err)
	assert.False(t, allowed)

	// Same for a pair of ids that exist nowhere.
	allowed, err = svc.CanCreatePart(uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestPermissionService_CanCreatePart_Granted(t *testing.T) {
	svc, f := newPermissionService(t)

	allowed, err := svc.CanCreatePart(f.WingTeamType.ID, f.WingPartType.ID)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestPermissionService_CanCreatePart_ExplicitDenialRow(t *testing.T) {
	svc, f := newPermissionService(t)

	_, err := svc.CreatePermission(&CreatePermissionRequest{
		TeamTypeID: f.AssemblyTeamType.ID,
		PartTypeID: f.BodyPartType.ID,
		CanCreate:  false,
	})
	require.NoError(t, err)

	allowed, err := svc.CanCreatePart(f.AssemblyTeamType.ID, f.BodyPartType.ID)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestPermissionService_RevocationInvalidatesCache(t *testing.T) {
	svc, f := newPermissionService(t)

	created, err := svc.CreatePermission(&CreatePermissionRequest{
		TeamTypeID: f.WingTeamType.ID,
		PartTypeID: f.BodyPartType.ID,
		CanCreate:  true,
	})
	require.NoError(t, err)

	// Prime the cache with an allow answer.
	allowed, err := svc.CanCreatePart(f.WingTeamType.ID, f.BodyPartType.ID)
	require.NoError(t, err)
	require.True(t, allowed)

	deny := false
	_, err = svc.UpdatePermission(created.ID, &UpdatePermissionRequest{CanCreate: &deny})
	require.NoError(t, err)

	// The revocation must be visible immediately, not after TTL expiry.
	allowed, err = svc.CanCreatePart(f.WingTeamType.ID, f.BodyPartType.ID)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestPermissionService_DeletionInvalidatesCache(t *testing.T) {
	svc, f := newPermissionService(t)

	created, err := svc.CreatePermission(&CreatePermissionRequest{
		TeamTypeID: f.AssemblyTeamType.ID,
		PartTypeID: f.WingPartType.ID,
		CanCreate:  true,
	})
	require.NoError(t, err)

	allowed, err := svc.CanCreatePart(f.AssemblyTeamType.ID, f.WingPartType.ID)
	require.NoError(t, err)
	require.True(t, allowed)

	require.NoError(t, svc.DeletePermission(created.ID))

	// Back to default deny once the row is gone.
	allowed, err = svc.CanCreatePart(f.AssemblyTeamType.ID, f.WingPartType.ID)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestPermissionService_CreatePermission_DuplicatePair(t *testing.T) {
	svc, f := newPermissionService(t)

	// The fixture already holds (WING, WING): a second row must be rejected.
	_, err := svc.CreatePermission(&CreatePermissionRequest{
		TeamTypeID: f.WingTeamType.ID,
		PartTypeID: f.WingPartType.ID,
		CanCreate:  false,
	})
	assert.True(t, errors.Is(err, apperrors.ErrPermissionExists))
}

func TestPermissionService_NotFound(t *testing.T) {
	svc, _ := newPermissionService(t)

	_, err := svc.GetPermissionByID(uuid.New())
	assert.True(t, errors.Is(err, apperrors.ErrPermissionNotFound))

	deny := false
	_, err = svc.UpdatePermission(uuid.New(), &UpdatePermissionRequest{CanCreate: &deny})
	assert.True(t, errors.Is(err, apperrors.ErrPermissionNotFound))

	err = svc.DeletePermission(uuid.New())
	assert.True(t, errors.Is(err, apperrors.ErrPermissionNotFound))
}

func TestPermissionService_GetPermissions_Pagination(t *testing.T) {
	svc, f := newPermissionService(t)

	_, err := svc.CreatePermission(&CreatePermissionRequest{
		TeamTypeID: f.AssemblyTeamType.ID,
		PartTypeID: f.BodyPartType.ID,
		CanCreate:  true,
	})
	require.NoError(t, err)

	list, err := svc.GetPermissions(1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), list.Total)
	assert.Len(t, list.Permissions, 1)
}
