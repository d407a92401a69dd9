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

func newTestResourceService(store *repotest.Store) *ResourceService {
	return NewResourceService(store.Resources(), newTestAuthz(store))
}

func TestCreateResource(t *testing.T) {
	store := repotest.NewStore()
	dept := store.SeedDepartment(&models.Department{Name: "Physics", Code: "PHY"})
	svc := newTestResourceService(store)
	ctx := context.Background()

	t.Run("created active with optional department", func(t *testing.T) {
		resource, err := svc.CreateResource(ctx, &dto.CreateResourceRequest{
			Name: "Optics Lab", Type: "lab", DepartmentID: &dept.ID,
		})
		require.NoError(t, err)
		assert.True(t, resource.IsActive)
	})

	t.Run("department reference must exist", func(t *testing.T) {
		missing := int64(999)
		_, err := svc.CreateResource(ctx, &dto.CreateResourceRequest{
			Name: "Ghost Lab", Type: "lab", DepartmentID: &missing,
		})
		assert.ErrorIs(t, err, apperrors.ErrBadDepartment)
	})
}

func TestListResources_InactiveHiddenFromNonAdmins(t *testing.T) {
	store := repotest.NewStore()
	admin := seedAdmin(store)
	teacher := seedTeacher(store, "Teacher", "t@example.com")
	store.SeedResource(&models.Resource{Name: "Hall", Type: "classroom", IsActive: true})
	store.SeedResource(&models.Resource{Name: "Old Lab", Type: "lab", IsActive: false})
	svc := newTestResourceService(store)
	ctx := context.Background()

	all, err := svc.ListResources(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	visible, err := svc.ListResources(ctx, teacher)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "Hall", visible[0].Name)
}

func TestUpdateResource(t *testing.T) {
	store := repotest.NewStore()
	resource := store.SeedResource(&models.Resource{Name: "Hall", Type: "classroom", IsActive: true})
	svc := newTestResourceService(store)
	ctx := context.Background()

	t.Run("deactivate", func(t *testing.T) {
		inactive := false
		updated, err := svc.UpdateResource(ctx, resource.ID, &dto.UpdateResourceRequest{IsActive: &inactive})
		require.NoError(t, err)
		assert.False(t, updated.IsActive)
	})

	t.Run("unknown resource", func(t *testing.T) {
		_, err := svc.UpdateResource(ctx, 999, &dto.UpdateResourceRequest{})
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	})
}

func TestDeleteResource_CascadesBookings(t *testing.T) {
	store := repotest.NewStore()
	teacher := seedTeacher(store, "Teacher", "t@example.com")
	resource := store.SeedResource(&models.Resource{Name: "Hall", Type: "classroom", IsActive: true})
	booking := store.SeedBooking(&models.Booking{ResourceID: resource.ID, BookedByID: teacher.ID, Status: models.BookingPending})
	svc := newTestResourceService(store)
	ctx := context.Background()

	require.NoError(t, svc.DeleteResource(ctx, resource.ID))

	_, err := store.Bookings().GetByID(ctx, booking.ID)
	assert.ErrorIs(t, err, apperrors.ErrBookingNotFound)

	assert.ErrorIs(t, svc.DeleteResource(ctx, resource.ID), apperrors.ErrResourceNotFound)
}
