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

func TestCreateDepartment(t *testing.T) {
	store := repotest.NewStore()
	svc := NewDepartmentService(store.Departments())
	ctx := context.Background()

	dept, err := svc.CreateDepartment(ctx, &dto.CreateDepartmentRequest{Name: "Computer Science", Code: "CS"})
	require.NoError(t, err)
	assert.NotZero(t, dept.ID)

	t.Run("duplicate name conflicts", func(t *testing.T) {
		_, err := svc.CreateDepartment(ctx, &dto.CreateDepartmentRequest{Name: "Computer Science", Code: "CSE"})
		assert.ErrorIs(t, err, apperrors.ErrDepartmentAlreadyExists)
	})

	t.Run("duplicate code conflicts", func(t *testing.T) {
		_, err := svc.CreateDepartment(ctx, &dto.CreateDepartmentRequest{Name: "Cybersecurity", Code: "CS"})
		assert.ErrorIs(t, err, apperrors.ErrDepartmentAlreadyExists)
	})
}

func TestUpdateDepartment(t *testing.T) {
	store := repotest.NewStore()
	cs := store.SeedDepartment(&models.Department{Name: "Computer Science", Code: "CS"})
	store.SeedDepartment(&models.Department{Name: "Mathematics", Code: "MATH"})
	svc := NewDepartmentService(store.Departments())
	ctx := context.Background()

	t.Run("keeping own name and code is not a conflict", func(t *testing.T) {
		name := "Computer Science"
		dept, err := svc.UpdateDepartment(ctx, cs.ID, &dto.UpdateDepartmentRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Computer Science", dept.Name)
	})

	t.Run("taking another department's code conflicts", func(t *testing.T) {
		code := "MATH"
		_, err := svc.UpdateDepartment(ctx, cs.ID, &dto.UpdateDepartmentRequest{Code: &code})
		assert.ErrorIs(t, err, apperrors.ErrDepartmentAlreadyExists)
	})

	t.Run("hod reference is stored without validation", func(t *testing.T) {
		hodID := int64(98765)
		dept, err := svc.UpdateDepartment(ctx, cs.ID, &dto.UpdateDepartmentRequest{HodUserID: &hodID})
		require.NoError(t, err)
		assert.Equal(t, hodID, *dept.HodUserID)
	})

	t.Run("unknown department reports not found", func(t *testing.T) {
		name := "Ghost"
		_, err := svc.UpdateDepartment(ctx, 99999, &dto.UpdateDepartmentRequest{Name: &name})
		assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
	})
}
