package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/repositories/repotest"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

func newTestAuthz(store *repotest.Store) *AuthorizationService {
	return NewAuthorizationService(
		store.Users(),
		store.Departments(),
		store.Courses(),
		store.Enrollments(),
	)
}

func TestRequireRole(t *testing.T) {
	authz := newTestAuthz(repotest.NewStore())

	admin := &models.User{Role: models.RoleAdmin}
	student := &models.User{Role: models.RoleStudent}

	assert.NoError(t, authz.RequireRole(admin, models.RoleAdmin))
	assert.NoError(t, authz.RequireRole(student, models.RoleStudent, models.RoleTA))
	assert.ErrorIs(t, authz.RequireRole(student, models.RoleAdmin), apperrors.ErrPermissionDenied)
}

func TestRequireCourseOwnership(t *testing.T) {
	store := repotest.NewStore()
	owner := store.SeedUser(&models.User{FullName: "Owner", Role: models.RoleTeacher, IsActive: true})
	other := store.SeedUser(&models.User{FullName: "Other", Role: models.RoleTeacher, IsActive: true})
	admin := store.SeedUser(&models.User{FullName: "Admin", Role: models.RoleAdmin, IsActive: true})
	student := store.SeedUser(&models.User{FullName: "Student", Role: models.RoleStudent, IsActive: true})
	course := store.SeedCourse(&models.Course{Code: "CS101", Name: "Intro", TeacherID: owner.ID})

	ctx := context.Background()
	authz := newTestAuthz(store)

	t.Run("owner passes", func(t *testing.T) {
		got, err := authz.RequireCourseOwnership(ctx, owner, course.ID)
		require.NoError(t, err)
		assert.Equal(t, course.ID, got.ID)
	})

	t.Run("admin passes on any course", func(t *testing.T) {
		got, err := authz.RequireCourseOwnership(ctx, admin, course.ID)
		require.NoError(t, err)
		assert.Equal(t, course.ID, got.ID)
	})

	t.Run("existing but unowned course is forbidden, not hidden", func(t *testing.T) {
		_, err := authz.RequireCourseOwnership(ctx, other, course.ID)
		assert.ErrorIs(t, err, apperrors.ErrNotCourseOwner)
	})

	t.Run("absent course is not found for a qualified role", func(t *testing.T) {
		_, err := authz.RequireCourseOwnership(ctx, owner, 99999)
		assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	})

	t.Run("role gate precedes the lookup", func(t *testing.T) {
		// A student probing an absent course still gets 403, never 404.
		_, err := authz.RequireCourseOwnership(ctx, student, 99999)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

		_, err = authz.RequireCourseOwnership(ctx, student, course.ID)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})
}

func TestValidateReferences(t *testing.T) {
	store := repotest.NewStore()
	department := store.SeedDepartment(&models.Department{Name: "Computer Science", Code: "CS"})
	teacher := store.SeedUser(&models.User{FullName: "Teacher", Role: models.RoleTeacher, IsActive: true})
	hod := store.SeedUser(&models.User{FullName: "Head", Role: models.RoleHOD, IsActive: true})
	ta := store.SeedUser(&models.User{FullName: "TA", Role: models.RoleTA, IsActive: true})
	student := store.SeedUser(&models.User{FullName: "Student", Role: models.RoleStudent, IsActive: true})
	course := store.SeedCourse(&models.Course{Code: "CS101", Name: "Intro", TeacherID: teacher.ID})

	ctx := context.Background()
	authz := newTestAuthz(store)

	t.Run("department ref", func(t *testing.T) {
		assert.NoError(t, authz.ValidateDepartmentRef(ctx, department.ID))
		assert.ErrorIs(t, authz.ValidateDepartmentRef(ctx, 99999), apperrors.ErrBadDepartment)
	})

	t.Run("teacher ref accepts teaching roles only", func(t *testing.T) {
		assert.NoError(t, authz.ValidateTeacherRef(ctx, teacher.ID))
		assert.NoError(t, authz.ValidateTeacherRef(ctx, hod.ID))
		assert.ErrorIs(t, authz.ValidateTeacherRef(ctx, ta.ID), apperrors.ErrBadTeacher)
		assert.ErrorIs(t, authz.ValidateTeacherRef(ctx, student.ID), apperrors.ErrBadTeacher)
		assert.ErrorIs(t, authz.ValidateTeacherRef(ctx, 99999), apperrors.ErrBadTeacher)
	})

	t.Run("student ref accepts students only", func(t *testing.T) {
		got, err := authz.ValidateStudentRef(ctx, student.ID)
		require.NoError(t, err)
		assert.Equal(t, student.ID, got.ID)

		_, err = authz.ValidateStudentRef(ctx, teacher.ID)
		assert.ErrorIs(t, err, apperrors.ErrBadStudent)
		_, err = authz.ValidateStudentRef(ctx, 99999)
		assert.ErrorIs(t, err, apperrors.ErrBadStudent)
	})

	t.Run("course ref", func(t *testing.T) {
		got, err := authz.ValidateCourseRef(ctx, course.ID)
		require.NoError(t, err)
		assert.Equal(t, course.ID, got.ID)

		_, err = authz.ValidateCourseRef(ctx, 99999)
		assert.ErrorIs(t, err, apperrors.ErrBadCourse)
	})
}

func TestRequireEnrollment(t *testing.T) {
	store := repotest.NewStore()
	teacher := store.SeedUser(&models.User{FullName: "Teacher", Role: models.RoleTeacher, IsActive: true})
	student := store.SeedUser(&models.User{FullName: "Student", Role: models.RoleStudent, IsActive: true})
	course := store.SeedCourse(&models.Course{Code: "CS101", Name: "Intro", TeacherID: teacher.ID})

	ctx := context.Background()
	authz := newTestAuthz(store)

	assert.ErrorIs(t, authz.RequireEnrollment(ctx, student.ID, course.ID), apperrors.ErrNotEnrolled)

	store.SeedEnrollment(&models.Enrollment{StudentID: student.ID, CourseID: course.ID})
	assert.NoError(t, authz.RequireEnrollment(ctx, student.ID, course.ID))
}
