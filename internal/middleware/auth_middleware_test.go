package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mindsethq/mindset-backend/internal/app/models"
	"github.com/mindsethq/mindset-backend/internal/pkg/apperrors"
	"github.com/mindsethq/mindset-backend/internal/pkg/auth"
)

type fakeAdminLookup struct {
	admins map[int64]*models.Admin
}

func (l *fakeAdminLookup) GetByID(_ context.Context, id int64) (*models.Admin, error) {
	admin, ok := l.admins[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("admin not found")
	}
	return admin, nil
}

func setupAuthTest(t *testing.T, exp time.Duration) (*gin.Engine, *auth.JWTService, *fakeAdminLookup) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "test",
	})
	lookup := &fakeAdminLookup{admins: map[int64]*models.Admin{
		1: {ID: 1, Email: "ops@example.com", IsActive: true},
	}}

	router := gin.New()
	router.GET("/protected", NewAuthMiddleware(jwtService, lookup).RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"adminID":    c.GetInt64(ContextAdminID),
			"adminEmail": c.GetString(ContextAdminEmail),
		})
	})

	return router, jwtService, lookup
}

func doProtected(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequireAdmin_ValidToken(t *testing.T) {
	router, jwtService, _ := setupAuthTest(t, time.Hour)

	token, _, err := jwtService.GenerateToken(1, "ops@example.com")
	require.NoError(t, err)

	rec := doProtected(router, "Bearer "+token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "ops@example.com")
}

func TestRequireAdmin_MissingHeader(t *testing.T) {
	router, _, _ := setupAuthTest(t, time.Hour)

	rec := doProtected(router, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdmin_MalformedHeader(t *testing.T) {
	router, _, _ := setupAuthTest(t, time.Hour)

	rec := doProtected(router, "Token abc")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdmin_ExpiredToken(t *testing.T) {
	router, jwtService, _ := setupAuthTest(t, -time.Minute)

	token, _, err := jwtService.GenerateToken(1, "ops@example.com")
	require.NoError(t, err)

	rec := doProtected(router, "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "AUTH_003")
}

func TestRequireAdmin_DeletedAccount(t *testing.T) {
	router, jwtService, lookup := setupAuthTest(t, time.Hour)

	token, _, err := jwtService.GenerateToken(1, "ops@example.com")
	require.NoError(t, err)
	delete(lookup.admins, 1)

	rec := doProtected(router, "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdmin_DeactivatedAccount(t *testing.T) {
	router, jwtService, lookup := setupAuthTest(t, time.Hour)

	token, _, err := jwtService.GenerateToken(1, "ops@example.com")
	require.NoError(t, err)
	lookup.admins[1].IsActive = false

	rec := doProtected(router, "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
