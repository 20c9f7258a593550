package service

import (
	"errors"
	"testing"

	apperrors "aircraft-manufacturing-backend/internal/errors"
	"aircraft-manufacturing-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemblyService_AssembleAircraft_Success(t *testing.T) {
	db := setupTestDB(t)
	f := setupFixtures(t, db)
	parts := testutils.NewPartFactory()

	p1 := parts.WithOwner(f.WingPartType.ID, f.TB2.ID, f.WingMember.ID)
	p2 := parts.WithOwner(f.BodyPartType.ID, f.TB2.ID, f.WingMember.ID)
	mustCreate(t, db, p1)
	mustCreate(t, db, p2)

	svc := newAssemblyService(db)

	aircraft, err := svc.AssembleAircraft(f.AssemblyUser.ID, &AssembleAircraftRequest{
		AircraftTypeID: f.TB2.ID,
		PartIDs:        []uuid.UUID{p1.ID, p2.ID},
	})
	require.NoError(t, err)

	assert.Regexp(t, `^A-[0-9A-F]{8}$`, aircraft.SerialNumber)
	assert.Equal(t, f.TB2.ID, aircraft.AircraftTypeID)
	assert.Equal(t, f.AssemblyMember.ID, aircraft.OwnerID)
	assert.Len(t, aircraft.UsedParts, 2)
	for _, part := range aircraft.UsedParts {
		assert.True(t, part.IsUsed)
	}
}

func TestAssemblyService_AssembleAircraft_EmptyPartList(t *testing.T) {
	db := setupTestDB(t)
	f := setupFixtures(t, db)
	svc := newAssemblyService(db)

	// An airframe may be registered without parts; readiness reporting is
	// the tool for spotting incomplete aircraft, not assembly validation.
	aircraft, err := svc.AssembleAircraft(f.AssemblyUser.ID, &AssembleAircraftRequest{
		AircraftTypeID: f.TB2.ID,
	})
	require.NoError(t, err)
	assert.Empty(t, aircraft.UsedParts)
}

func TestAssemblyService_AssembleAircraft_NonAssemblyTeamDenied(t *testing.T) {
	db := setupTestDB(t)
	f := setupFixtures(t, db)
	svc := newAssemblyService(db)

	_, err := svc.AssembleAircraft(f.WingUser.ID, &AssembleAircraftRequest{
		AircraftTypeID: f.TB2.ID,
	})
	assert.True(t, errors.Is(err, apperrors.ErrAssemblyDenied))

	// No membership at all is its own error.
	_, err = svc.AssembleAircraft(f.AdminUser.ID, &AssembleAircraftRequest{
		AircraftTypeID: f.TB2.ID,
	})
	assert.True(t, errors.Is(err, apperrors.ErrNoTeamMembership))
}

func TestAssemblyService_AssembleAircraft_PartChecks(t *testing.T) {
	db := setupTestDB(t)
	f := setupFixtures(t, db)
	parts := testutils.NewPartFactory()

	tb3 := testutils.NewAircraftTypeFactory().WithName("TB3")
	mustCreate(t, db, tb3)

	good := parts.WithOwner(f.WingPartType.ID, f.TB2.ID, f.WingMember.ID)
	used := parts.Used(f.WingPartType.ID, f.TB2.ID)
	otherType := parts.WithOwner(f.WingPartType.ID, tb3.ID, f.WingMember.ID)
	mustCreate(t, db, good)
	mustCreate(t, db, used)
	mustCreate(t, db, otherType)

	svc := newAssemblyService(db)

	cases := []struct {
		name    string
		partIDs []uuid.UUID
	}{
		{"nonexistent part", []uuid.UUID{uuid.New()}},
		{"already used part", []uuid.UUID{used.ID}},
		{"part for different aircraft type", []uuid.UUID{otherType.ID}},
		{"part listed twice", []uuid.UUID{good.ID, good.ID}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.AssembleAircraft(f.AssemblyUser.ID, &AssembleAircraftRequest{
				AircraftTypeID: f.TB2.ID,
				PartIDs:        tc.partIDs,
			})
			assert.True(t, apperrors.IsPartNotAvailable(err), "got %v", err)
		})
	}

	// The rejected attempts must not have consumed the good part.
	fresh, err := newPartService(db).GetPartByID(good.ID)
	require.NoError(t, err)
	assert.False(t, fresh.IsUsed)
}

func TestAssemblyService_AssembleAircraft_PartConsumedOnce(t *testing.T) {
	db := setupTestDB(t)
	f := setupFixtures(t, db)
	parts := testutils.NewPartFactory()

	part := parts.WithOwner(f.WingPartType.ID, f.TB2.ID, f.WingMember.ID)
	mustCreate(t, db, part)

	svc := newAssemblyService(db)

	_, err := svc.AssembleAircraft(f.AssemblyUser.ID, &AssembleAircraftRequest{
		AircraftTypeID: f.TB2.ID,
		PartIDs:        []uuid.UUID{part.ID},
	})
	require.NoError(t, err)

	// A second aircraft listing the same part must fail.
	_, err = svc.AssembleAircraft(f.AssemblyUser.ID, &AssembleAircraftRequest{
		AircraftTypeID: f.TB2.ID,
		PartIDs:        []uuid.UUID{part.ID},
	})
	assert.Error(t, err)
	assert.True(t, apperrors.IsPartNotAvailable(err) || apperrors.IsConflict(err), "got %v", err)
}

func TestAssemblyService_DeleteAircraft_Permissions(t *testing.T) {
	db := setupTestDB(t)
	f := setupFixtures(t, db)
	svc := newAssemblyService(db)

	aircraft, err := svc.AssembleAircraft(f.AssemblyUser.ID, &AssembleAircraftRequest{
		AircraftTypeID: f.TB2.ID,
	})
	require.NoError(t, err)

	// Wing team members cannot retire aircraft.
	err = svc.DeleteAircraft(f.WingUser.ID, aircraft.ID)
	assert.True(t, errors.Is(err, apperrors.ErrAssemblyDenied))

	// Admins can, without any membership.
	require.NoError(t, svc.DeleteAircraft(f.AdminUser.ID, aircraft.ID))

	_, err = svc.GetAircraftByID(aircraft.ID)
	assert.True(t, errors.Is(err, apperrors.ErrAircraftNotFound))
}

func TestAssemblyService_DeleteAircraft_DoesNotReleaseParts(t *testing.T) {
	db := setupTestDB(t)
	f := setupFixtures(t, db)
	parts := testutils.NewPartFactory()

	part := parts.WithOwner(f.WingPartType.ID, f.TB2.ID, f.WingMember.ID)
	mustCreate(t, db, part)

	svc := newAssemblyService(db)

	aircraft, err := svc.AssembleAircraft(f.AssemblyUser.ID, &AssembleAircraftRequest{
		AircraftTypeID: f.TB2.ID,
		PartIDs:        []uuid.UUID{part.ID},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAircraft(f.AssemblyUser.ID, aircraft.ID))

	// A dismantled airframe does not return certified parts to stock.
	partSvc := newPartService(db)
	fresh, err := partSvc.GetPartByID(part.ID)
	require.NoError(t, err)
	assert.True(t, fresh.IsUsed)

	err = partSvc.RecyclePart(f.AdminUser.ID, part.ID)
	assert.True(t, apperrors.IsPartInUse(err))
}

func TestAssemblyService_GetAircraftBySerialNumber(t *testing.T) {
	db := setupTestDB(t)
	f := setupFixtures(t, db)
	svc := newAssemblyService(db)

	created, err := svc.AssembleAircraft(f.AssemblyUser.ID, &AssembleAircraftRequest{
		AircraftTypeID: f.TB2.ID,
	})
	require.NoError(t, err)

	found, err := svc.GetAircraftBySerialNumber(created.SerialNumber)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.GetAircraftBySerialNumber("A-DEADBEEF")
	assert.True(t, errors.Is(err, apperrors.ErrAircraftNotFound))
}

func TestAssemblyService_ListAircraft_FilterByType(t *testing.T) {
	db := setupTestDB(t)
	f := setupFixtures(t, db)
	svc := newAssemblyService(db)

	tb3 := testutils.NewAircraftTypeFactory().WithName("TB3")
	mustCreate(t, db, tb3)

	_, err := svc.AssembleAircraft(f.AssemblyUser.ID, &AssembleAircraftRequest{AircraftTypeID: f.TB2.ID})
	require.NoError(t, err)
	_, err = svc.AssembleAircraft(f.AssemblyUser.ID, &AssembleAircraftRequest{AircraftTypeID: tb3.ID})
	require.NoError(t, err)

	all, err := svc.ListAircraft(nil, 50, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.Total)

	onlyTB2, err := svc.ListAircraft(&f.TB2.ID, 50, 0)
	require.NoError(t, err)
	require.Equal(t, int64(1), onlyTB2.Total)
	assert.Equal(t, f.TB2.ID, onlyTB2.Aircraft[0].AircraftTypeID)
}
