package auth

import (
	"errors"
	"testing"
	"time"

	"aircraft-manufacturing-backend/internal/database/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserResolver struct {
	users map[string]*models.User
}

func (r *stubUserResolver) GetByUsername(username string) (*models.User, error) {
	if user, ok := r.users[username]; ok {
		return user, nil
	}
	return nil, errors.New("record not found")
}

func (r *stubUserResolver) GetByID(id uuid.UUID) (*models.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, errors.New("record not found")
}

func newTestAuthService(secret string) (*AuthService, *models.User) {
	user := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Username:  "wing-1",
		IsAdmin:   false,
	}
	resolver := &stubUserResolver{users: map[string]*models.User{user.Username: user}}
	return NewAuthService(secret, resolver), user
}

func TestAuthService_IssueAndValidate(t *testing.T) {
	svc, user := newTestAuthService("test-secret")

	token, issuedFor, err := svc.IssueToken("wing-1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, issuedFor.ID)

	claims, err := svc.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "wing-1", claims.Username)
	assert.False(t, claims.IsAdmin)
	assert.Equal(t, "aircraft-manufacturing-backend", claims.Issuer)
}

func TestAuthService_IssueToken_UnknownUser(t *testing.T) {
	svc, _ := newTestAuthService("test-secret")

	_, _, err := svc.IssueToken("no-such-user")
	assert.True(t, errors.Is(err, ErrUnknownUser))
}

func TestAuthService_ValidateJWT_WrongSecret(t *testing.T) {
	svc, _ := newTestAuthService("test-secret")
	other, _ := newTestAuthService("different-secret")

	token, _, err := svc.IssueToken("wing-1")
	require.NoError(t, err)

	_, err = other.ValidateJWT(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestAuthService_ValidateJWT_Garbage(t *testing.T) {
	svc, _ := newTestAuthService("test-secret")

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.ValidateJWT(token)
		assert.True(t, errors.Is(err, ErrInvalidToken), "token %q", token)
	}
}

func TestAuthService_ValidateJWT_Expired(t *testing.T) {
	svc, user := newTestAuthService("test-secret")

	past := time.Now().Add(-time.Hour)
	claims := &AuthClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "aircraft-manufacturing-backend",
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(past.Add(-TokenTTL)),
			ExpiresAt: jwt.NewNumericDate(past),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateJWT(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestAuthService_ValidateJWT_RejectsUnsigned(t *testing.T) {
	svc, user := newTestAuthService("test-secret")

	claims := &AuthClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateJWT(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestAuthService_ValidateJWT_MissingUserID(t *testing.T) {
	svc, _ := newTestAuthService("test-secret")

	claims := &AuthClaims{
		Username: "wing-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateJWT(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}
