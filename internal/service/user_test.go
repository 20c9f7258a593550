package service

import (
	"testing"

	apperrors "aircraft-manufacturing-backend/internal/errors"
	"aircraft-manufacturing-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(db *gorm.DB) *UserService {
	return NewUserService(repository.NewUserRepository(db), validator.New())
}

func TestUserService_CreateUser(t *testing.T) {
	db := setupTestDB(t)
	setupFixtures(t, db)
	svc := newUserService(db)

	user, err := svc.CreateUser(&CreateUserRequest{
		Username:  "tail-1",
		FirstName: "Tail",
		LastName:  "Fitter",
		Email:     "tail-1@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "tail-1", user.Username)
	assert.False(t, user.IsAdmin)
	assert.Nil(t, user.TeamID)
}

func TestUserService_CreateUser_DuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	f := setupFixtures(t, db)
	svc := newUserService(db)

	_, err := svc.CreateUser(&CreateUserRequest{Username: f.WingUser.Username})
	assert.ErrorIs(t, err, apperrors.ErrUserExists)
}

func TestUserService_GetUserByUsername(t *testing.T) {
	db := setupTestDB(t)
	f := setupFixtures(t, db)
	svc := newUserService(db)

	user, err := svc.GetUserByUsername(f.WingUser.Username)
	require.NoError(t, err)
	assert.Equal(t, f.WingUser.ID, user.ID)

	_, err = svc.GetUserByUsername("nobody")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserService_UpdateUser(t *testing.T) {
	db := setupTestDB(t)
	f := setupFixtures(t, db)
	svc := newUserService(db)

	email := "wing-1@example.com"
	admin := true
	user, err := svc.UpdateUser(f.WingUser.ID, &UpdateUserRequest{
		Email:   &email,
		IsAdmin: &admin,
	})
	require.NoError(t, err)
	assert.Equal(t, email, user.Email)
	assert.True(t, user.IsAdmin)

	_, err = svc.UpdateUser(uuid.New(), &UpdateUserRequest{Email: &email})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserService_DeleteUser(t *testing.T) {
	db := setupTestDB(t)
	f := setupFixtures(t, db)
	svc := newUserService(db)

	require.NoError(t, svc.DeleteUser(f.WingUser.ID))

	_, err := svc.GetUserByID(f.WingUser.ID)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	assert.ErrorIs(t, svc.DeleteUser(f.WingUser.ID), apperrors.ErrUserNotFound)
}
