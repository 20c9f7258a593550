package auth

import (
	"errors"
	"fmt"
	"time"

	"aircraft-manufacturing-backend/internal/database/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTTL is how long an issued access token stays valid.
const TokenTTL = 12 * time.Hour

const issuer = "aircraft-manufacturing-backend"

var (
	// ErrInvalidToken is returned when a token fails validation for any reason.
	ErrInvalidToken = errors.New("invalid token")
	// ErrUnknownUser is returned when a login names a user that does not exist.
	ErrUnknownUser = errors.New("unknown user")
)

// UserResolver looks up accounts during login and token validation.
type UserResolver interface {
	GetByUsername(username string) (*models.User, error)
	GetByID(id uuid.UUID) (*models.User, error)
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	IsAdmin  bool      `json:"is_admin"`
	jwt.RegisteredClaims
}

// AuthService issues and validates HS256 access tokens. Identity is asserted
// by the factory's perimeter (badge gate or SSO proxy); this service binds an
// already-authenticated username to a signed token the API can verify
// statelessly.
type AuthService struct {
	secret []byte
	users  UserResolver
}

// NewAuthService creates a new authentication service
func NewAuthService(secret string, users UserResolver) *AuthService {
	return &AuthService{
		secret: []byte(secret),
		users:  users,
	}
}

// IssueToken creates a signed access token for an existing user.
func (s *AuthService) IssueToken(username string) (string, *models.User, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		return "", nil, ErrUnknownUser
	}

	now := time.Now()
	claims := &AuthClaims{
		UserID:   user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, user, nil
}

// ValidateJWT parses and validates a token string and returns its claims.
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	claims := &AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == uuid.Nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
