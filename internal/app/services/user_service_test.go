package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories/repotest"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

func TestCreateUser(t *testing.T) {
	store := repotest.NewStore()
	svc := NewUserService(store.Users())
	ctx := context.Background()

	t.Run("creates any valid role", func(t *testing.T) {
		user, err := svc.CreateUser(ctx, &dto.CreateUserRequest{
			FullName: "New Teacher",
			Email:    "teach@example.com",
			Password: "long-enough",
			Role:     "teacher",
		})
		require.NoError(t, err)
		assert.Equal(t, models.RoleTeacher, user.Role)
		assert.True(t, user.IsActive)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := svc.CreateUser(ctx, &dto.CreateUserRequest{
			FullName: "X",
			Email:    "x@example.com",
			Password: "long-enough",
			Role:     "janitor",
		})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		_, err := svc.CreateUser(ctx, &dto.CreateUserRequest{
			FullName: "Dup",
			Email:    "teach@example.com",
			Password: "long-enough",
			Role:     "student",
		})
		assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	})

	t.Run("does not validate department reference", func(t *testing.T) {
		deptID := int64(424242)
		user, err := svc.CreateUser(ctx, &dto.CreateUserRequest{
			FullName:     "Orphan",
			Email:        "orphan@example.com",
			Password:     "long-enough",
			Role:         "student",
			DepartmentID: &deptID,
		})
		require.NoError(t, err)
		assert.Equal(t, deptID, *user.DepartmentID)
	})
}

func TestUpdateUser(t *testing.T) {
	store := repotest.NewStore()
	first := seedStudent(store, "First", "first@example.com")
	seedStudent(store, "Second", "second@example.com")
	svc := NewUserService(store.Users())
	ctx := context.Background()

	t.Run("own email is not a conflict", func(t *testing.T) {
		email := "first@example.com"
		name := "Renamed"
		user, err := svc.UpdateUser(ctx, first.ID, &dto.UpdateUserRequest{Email: &email, FullName: &name})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", user.FullName)
	})

	t.Run("another user's email conflicts", func(t *testing.T) {
		email := "second@example.com"
		_, err := svc.UpdateUser(ctx, first.ID, &dto.UpdateUserRequest{Email: &email})
		assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	})

	t.Run("unknown user reports not found", func(t *testing.T) {
		name := "Nobody"
		_, err := svc.UpdateUser(ctx, 99999, &dto.UpdateUserRequest{FullName: &name})
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	t.Run("can deactivate", func(t *testing.T) {
		inactive := false
		user, err := svc.UpdateUser(ctx, first.ID, &dto.UpdateUserRequest{IsActive: &inactive})
		require.NoError(t, err)
		assert.False(t, user.IsActive)
	})
}

func TestListUsers_Filters(t *testing.T) {
	store := repotest.NewStore()
	seedAdmin(store)
	seedStudent(store, "S1", "s1@example.com")
	seedStudent(store, "S2", "s2@example.com")
	seedTeacher(store, "T1", "t1@example.com")
	svc := NewUserService(store.Users())

	role := models.RoleStudent
	students, err := svc.ListUsers(context.Background(), dto.UserFilter{Role: &role})
	require.NoError(t, err)
	assert.Len(t, students, 2)

	bad := models.RoleType("wizard")
	_, err = svc.ListUsers(context.Background(), dto.UserFilter{Role: &bad})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
