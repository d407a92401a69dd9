package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories/repotest"
	"github.com/campushub/backend/internal/pkg/apperrors"
	pkgauth "github.com/campushub/backend/internal/pkg/auth"
)

func newTestAuthService(store *repotest.Store) *AuthService {
	jwtService := pkgauth.NewJWTService(pkgauth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "campushub.test",
	})
	return NewAuthService(store.Users(), jwtService, zerolog.Nop())
}

func TestRegisterAdmin_Bootstrap(t *testing.T) {
	store := repotest.NewStore()
	svc := newTestAuthService(store)
	ctx := context.Background()

	user, err := svc.RegisterAdmin(ctx, &dto.RegisterAdminRequest{
		FullName: "Root Admin",
		Email:    "root@example.com",
		Password: "super-secret",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "super-secret", user.PasswordHash)
}

func TestRegisterAdmin_ClosedOnceAdminExists(t *testing.T) {
	store := repotest.NewStore()
	seedAdmin(store)
	svc := newTestAuthService(store)

	_, err := svc.RegisterAdmin(context.Background(), &dto.RegisterAdminRequest{
		FullName: "Second Admin",
		Email:    "second@example.com",
		Password: "super-secret",
	})
	assert.ErrorIs(t, err, apperrors.ErrAdminAlreadyExists)
}

func TestLogin(t *testing.T) {
	store := repotest.NewStore()
	svc := newTestAuthService(store)
	ctx := context.Background()

	admin, err := svc.RegisterAdmin(ctx, &dto.RegisterAdminRequest{
		FullName: "Root Admin",
		Email:    "root@example.com",
		Password: "super-secret",
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "root@example.com", Password: "super-secret"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "bearer", resp.TokenType)
		assert.Equal(t, admin.ID, resp.User.ID)
		assert.Equal(t, "admin", resp.User.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "root@example.com", Password: "nope"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown email is indistinguishable from wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "super-secret"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestLogin_DisabledAccountStillAuthenticates(t *testing.T) {
	// Login ignores is_active; the disabled check happens on
	// authenticated requests.
	store := repotest.NewStore()
	hash, err := pkgauth.HashPassword("super-secret")
	require.NoError(t, err)
	store.SeedUser(&models.User{
		FullName:     "Disabled",
		Email:        "off@example.com",
		PasswordHash: hash,
		Role:         models.RoleStudent,
		IsActive:     false,
	})

	svc := newTestAuthService(store)
	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "off@example.com", Password: "super-secret"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}
