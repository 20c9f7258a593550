package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "aircraft-manufacturing-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiddlewareRouter(svc *AuthService, admin bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	middleware := NewAuthMiddleware(svc)

	router := gin.New()
	group := router.Group("/", middleware.RequireAuth())
	if admin {
		group.Use(middleware.RequireAdmin())
	}
	group.GET("/protected", func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "claims missing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"user_id":  c.GetString("user_id"),
			"username": claims.Username,
			"is_admin": c.GetBool("is_admin"),
		})
	})
	return router
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestRequireAuth_ValidToken(t *testing.T) {
	svc, user := newTestAuthService("test-secret")
	router := setupMiddlewareRouter(svc, false)

	token, _, err := svc.IssueToken(user.Username)
	require.NoError(t, err)

	recorder := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), user.ID.String())
	assert.Contains(t, recorder.Body.String(), user.Username)
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	svc, _ := newTestAuthService("test-secret")
	router := setupMiddlewareRouter(svc, false)

	recorder := doRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireAuth_NotBearer(t *testing.T) {
	svc, user := newTestAuthService("test-secret")
	router := setupMiddlewareRouter(svc, false)

	token, _, err := svc.IssueToken(user.Username)
	require.NoError(t, err)

	recorder := doRequest(router, "Basic "+token)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireAuth_ForgedToken(t *testing.T) {
	svc, _ := newTestAuthService("test-secret")
	forger, user := newTestAuthService("attacker-secret")
	router := setupMiddlewareRouter(svc, false)

	token, _, err := forger.IssueToken(user.Username)
	require.NoError(t, err)

	recorder := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireAdmin(t *testing.T) {
	svc, user := newTestAuthService("test-secret")
	router := setupMiddlewareRouter(svc, true)

	// Regular users are rejected by the admin gate.
	token, _, err := svc.IssueToken(user.Username)
	require.NoError(t, err)
	recorder := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Contains(t, recorder.Body.String(), apperrors.ErrAdminRequired.Error())

	// Promote the user and issue a fresh token carrying the admin flag.
	user.IsAdmin = true
	token, _, err = svc.IssueToken(user.Username)
	require.NoError(t, err)
	recorder = doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, recorder.Code)
}
