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

func TestInventoryService_CheckAssemblyReadiness(t *testing.T) {
	db := setupTestDB(t)
	f := setupFixtures(t, db)
	reqs := testutils.NewRequirementFactory()
	parts := testutils.NewPartFactory()

	// TB2 needs two wings and one body.
	mustCreate(t, db, reqs.Create(f.TB2.ID, f.WingPartType.ID, 2))
	mustCreate(t, db, reqs.Create(f.TB2.ID, f.BodyPartType.ID, 1))

	// Stock: one unused wing, one used wing (does not count), one body.
	mustCreate(t, db, parts.WithOwner(f.WingPartType.ID, f.TB2.ID, f.WingMember.ID))
	mustCreate(t, db, parts.Used(f.WingPartType.ID, f.TB2.ID))
	mustCreate(t, db, parts.WithOwner(f.BodyPartType.ID, f.TB2.ID, f.WingMember.ID))

	svc := newInventoryService(db)

	report, err := svc.CheckAssemblyReadiness(f.TB2.ID)
	require.NoError(t, err)
	assert.False(t, report.Ready)
	require.Len(t, report.Parts, 2)

	byName := make(map[string]PartTypeReadiness)
	for _, p := range report.Parts {
		byName[p.PartTypeName] = p
	}
	wing := byName[f.WingPartType.Name]
	assert.Equal(t, 2, wing.Required)
	assert.Equal(t, 1, wing.Available)
	assert.Equal(t, 1, wing.Missing)
	body := byName[f.BodyPartType.Name]
	assert.Equal(t, 1, body.Required)
	assert.Equal(t, 1, body.Available)
	assert.Equal(t, 0, body.Missing)

	// Adding the missing wing flips the report to ready.
	mustCreate(t, db, parts.WithOwner(f.WingPartType.ID, f.TB2.ID, f.WingMember.ID))
	report, err = svc.CheckAssemblyReadiness(f.TB2.ID)
	require.NoError(t, err)
	assert.True(t, report.Ready)
}

func TestInventoryService_CheckAssemblyReadiness_Repeatable(t *testing.T) {
	db := setupTestDB(t)
	f := setupFixtures(t, db)
	reqs := testutils.NewRequirementFactory()
	parts := testutils.NewPartFactory()

	mustCreate(t, db, reqs.Create(f.TB2.ID, f.WingPartType.ID, 2))
	mustCreate(t, db, parts.WithOwner(f.WingPartType.ID, f.TB2.ID, f.WingMember.ID))

	svc := newInventoryService(db)

	// Readiness is a pure read: with no stock changes in between, two
	// consecutive reports must be identical.
	first, err := svc.CheckAssemblyReadiness(f.TB2.ID)
	require.NoError(t, err)
	second, err := svc.CheckAssemblyReadiness(f.TB2.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestInventoryService_CheckAssemblyReadiness_NoRequirements(t *testing.T) {
	db := setupTestDB(t)
	f := setupFixtures(t, db)
	svc := newInventoryService(db)

	// An empty requirement table means nothing is missing.
	report, err := svc.CheckAssemblyReadiness(f.TB2.ID)
	require.NoError(t, err)
	assert.True(t, report.Ready)
	assert.Empty(t, report.Parts)
}

func TestInventoryService_CheckAssemblyReadiness_UnknownType(t *testing.T) {
	db := setupTestDB(t)
	setupFixtures(t, db)
	svc := newInventoryService(db)

	_, err := svc.CheckAssemblyReadiness(uuid.New())
	assert.True(t, errors.Is(err, apperrors.ErrAircraftTypeNotFound))
}

func TestInventoryService_GetInventoryStatus(t *testing.T) {
	db := setupTestDB(t)
	f := setupFixtures(t, db)
	reqs := testutils.NewRequirementFactory()
	parts := testutils.NewPartFactory()

	mustCreate(t, db, reqs.Create(f.TB2.ID, f.WingPartType.ID, 2))

	mustCreate(t, db, parts.WithOwner(f.WingPartType.ID, f.TB2.ID, f.WingMember.ID))
	mustCreate(t, db, parts.Used(f.WingPartType.ID, f.TB2.ID))
	// Body parts exist but are not in TB2's requirement table, so the
	// status report must not mention them.
	mustCreate(t, db, parts.WithOwner(f.BodyPartType.ID, f.TB2.ID, f.WingMember.ID))

	svc := newInventoryService(db)

	status, err := svc.GetInventoryStatus(f.TB2.ID)
	require.NoError(t, err)
	require.Len(t, status.Entries, 1)

	entry := status.Entries[0]
	assert.Equal(t, f.WingPartType.ID, entry.PartTypeID)
	assert.Equal(t, 2, entry.Required)
	assert.Equal(t, 2, entry.Total)
	assert.Equal(t, 1, entry.Used)
	assert.Equal(t, 1, entry.Available)
}

func TestInventoryService_GetFullInventoryStatus(t *testing.T) {
	db := setupTestDB(t)
	f := setupFixtures(t, db)
	reqs := testutils.NewRequirementFactory()
	parts := testutils.NewPartFactory()

	tb3 := testutils.NewAircraftTypeFactory().WithName("TB3")
	mustCreate(t, db, tb3)

	mustCreate(t, db, reqs.Create(f.TB2.ID, f.WingPartType.ID, 2))
	mustCreate(t, db, reqs.Create(tb3.ID, f.BodyPartType.ID, 1))

	mustCreate(t, db, parts.WithOwner(f.WingPartType.ID, f.TB2.ID, f.WingMember.ID))
	mustCreate(t, db, parts.WithOwner(f.BodyPartType.ID, tb3.ID, f.WingMember.ID))

	svc := newInventoryService(db)

	all, err := svc.GetFullInventoryStatus()
	require.NoError(t, err)
	require.Len(t, all, 2)

	byName := make(map[string]InventoryStatusResponse)
	for _, s := range all {
		byName[s.AircraftTypeName] = s
	}
	require.Len(t, byName[f.TB2.Name].Entries, 1)
	assert.Equal(t, 1, byName[f.TB2.Name].Entries[0].Available)
	require.Len(t, byName[tb3.Name].Entries, 1)
	assert.Equal(t, 1, byName[tb3.Name].Entries[0].Total)
}

func TestInventoryService_GetAllRequirements(t *testing.T) {
	db := setupTestDB(t)
	f := setupFixtures(t, db)
	reqs := testutils.NewRequirementFactory()

	tb3 := testutils.NewAircraftTypeFactory().WithName("TB3")
	mustCreate(t, db, tb3)

	mustCreate(t, db, reqs.Create(f.TB2.ID, f.WingPartType.ID, 2))
	mustCreate(t, db, reqs.Create(tb3.ID, f.WingPartType.ID, 4))

	svc := newInventoryService(db)

	all, err := svc.GetAllRequirements()
	require.NoError(t, err)
	require.Len(t, all, 2)

	byName := make(map[string]AircraftRequirements)
	for _, r := range all {
		byName[r.AircraftTypeName] = r
	}
	require.Len(t, byName[f.TB2.Name].Requirements, 1)
	assert.Equal(t, 2, byName[f.TB2.Name].Requirements[0].Quantity)
	require.Len(t, byName[tb3.Name].Requirements, 1)
	assert.Equal(t, 4, byName[tb3.Name].Requirements[0].Quantity)
}
