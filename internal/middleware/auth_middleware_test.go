package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories/repotest"
	"github.com/campushub/backend/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testJWTService(exp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "campushub.test",
	})
}

// authTestRig wires JWTAuth in front of a probe handler that reports
// the resolved actor's ID.
type authTestRig struct {
	store      *repotest.Store
	jwtService *auth.JWTService
	router     *gin.Engine
}

func newAuthTestRig(t *testing.T) *authTestRig {
	t.Helper()
	rig := &authTestRig{
		store:      repotest.NewStore(),
		jwtService: testJWTService(time.Hour),
	}
	m := NewAuthMiddleware(rig.jwtService, rig.store.Users())

	rig.router = gin.New()
	rig.router.GET("/probe", m.JWTAuth(), func(c *gin.Context) {
		actor := GetActor(c)
		require.NotNil(t, actor)
		c.JSON(http.StatusOK, gin.H{"actorId": actor.ID})
	})
	rig.router.GET("/admin-only", m.JWTAuth(), m.RoleRequired(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return rig
}

func (rig *authTestRig) request(t *testing.T, path, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	rig.router.ServeHTTP(rec, req)
	return rec
}

func decodeErrorCode(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorCode {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp.Error.Code
}

func TestJWTAuth(t *testing.T) {
	rig := newAuthTestRig(t)
	user := rig.store.SeedUser(&models.User{
		Email: "t@example.com", FullName: "Teacher",
		Role: models.RoleTeacher, IsActive: true,
	})
	token, _, err := rig.jwtService.GenerateToken(user)
	require.NoError(t, err)

	t.Run("valid token resolves the actor", func(t *testing.T) {
		rec := rig.request(t, "/probe", "Bearer "+token)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"actorId":1`)
	})

	t.Run("missing header", func(t *testing.T) {
		rec := rig.request(t, "/probe", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, dto.ErrorCodeUnauthorized, decodeErrorCode(t, rec))
	})

	t.Run("non-bearer scheme", func(t *testing.T) {
		rec := rig.request(t, "/probe", "Basic dXNlcjpwYXNz")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, dto.ErrorCodeUnauthorized, decodeErrorCode(t, rec))
	})

	t.Run("malformed token", func(t *testing.T) {
		rec := rig.request(t, "/probe", "Bearer not-a-token")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, dto.ErrorCodeInvalidToken, decodeErrorCode(t, rec))
	})

	t.Run("expired token", func(t *testing.T) {
		expired, _, err := testJWTService(-time.Minute).GenerateToken(user)
		require.NoError(t, err)
		rec := rig.request(t, "/probe", "Bearer "+expired)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, dto.ErrorCodeExpiredToken, decodeErrorCode(t, rec))
	})

	t.Run("token for a deleted user", func(t *testing.T) {
		ghost := rig.store.SeedUser(&models.User{
			Email: "ghost@example.com", FullName: "Ghost",
			Role: models.RoleStudent, IsActive: true,
		})
		ghostToken, _, err := rig.jwtService.GenerateToken(ghost)
		require.NoError(t, err)
		require.NoError(t, rig.store.Users().Delete(context.Background(), ghost.ID))

		rec := rig.request(t, "/probe", "Bearer "+ghostToken)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, dto.ErrorCodeInvalidToken, decodeErrorCode(t, rec))
	})

	t.Run("disabled account", func(t *testing.T) {
		disabled := rig.store.SeedUser(&models.User{
			Email: "off@example.com", FullName: "Disabled",
			Role: models.RoleStudent, IsActive: false,
		})
		disabledToken, _, err := rig.jwtService.GenerateToken(disabled)
		require.NoError(t, err)

		rec := rig.request(t, "/probe", "Bearer "+disabledToken)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, dto.ErrorCodeAccountDisabled, decodeErrorCode(t, rec))
	})
}

func TestRoleRequired(t *testing.T) {
	rig := newAuthTestRig(t)
	admin := rig.store.SeedUser(&models.User{
		Email: "a@example.com", FullName: "Admin",
		Role: models.RoleAdmin, IsActive: true,
	})
	student := rig.store.SeedUser(&models.User{
		Email: "s@example.com", FullName: "Student",
		Role: models.RoleStudent, IsActive: true,
	})

	adminToken, _, err := rig.jwtService.GenerateToken(admin)
	require.NoError(t, err)
	studentToken, _, err := rig.jwtService.GenerateToken(student)
	require.NoError(t, err)

	t.Run("allowed role passes", func(t *testing.T) {
		rec := rig.request(t, "/admin-only", "Bearer "+adminToken)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("other roles are forbidden", func(t *testing.T) {
		rec := rig.request(t, "/admin-only", "Bearer "+studentToken)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, dto.ErrorCodeForbidden, decodeErrorCode(t, rec))
	})
}
