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

func newTestCourseService(store *repotest.Store) *CourseService {
	return NewCourseService(store.Courses(), store.Users(), newTestAuthz(store))
}

func TestCreateCourse(t *testing.T) {
	store := repotest.NewStore()
	dept := store.SeedDepartment(&models.Department{Name: "Computer Science", Code: "CS"})
	teacher := seedTeacher(store, "Teacher", "t@example.com")
	student := seedStudent(store, "Student", "s@example.com")
	svc := newTestCourseService(store)
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		course, err := svc.CreateCourse(ctx, &dto.CreateCourseRequest{
			Code: "CS101", Name: "Intro", DepartmentID: dept.ID, TeacherID: teacher.ID,
		})
		require.NoError(t, err)
		assert.NotZero(t, course.ID)
	})

	t.Run("missing department is invalid before uniqueness", func(t *testing.T) {
		// CS101 already exists; the bad reference must win.
		_, err := svc.CreateCourse(ctx, &dto.CreateCourseRequest{
			Code: "CS101", Name: "Intro", DepartmentID: 99999, TeacherID: teacher.ID,
		})
		assert.ErrorIs(t, err, apperrors.ErrBadDepartment)
	})

	t.Run("non-teaching role is an invalid teacher ref", func(t *testing.T) {
		_, err := svc.CreateCourse(ctx, &dto.CreateCourseRequest{
			Code: "CS102", Name: "Data Structures", DepartmentID: dept.ID, TeacherID: student.ID,
		})
		assert.ErrorIs(t, err, apperrors.ErrBadTeacher)
	})

	t.Run("duplicate code conflicts", func(t *testing.T) {
		_, err := svc.CreateCourse(ctx, &dto.CreateCourseRequest{
			Code: "CS101", Name: "Intro Again", DepartmentID: dept.ID, TeacherID: teacher.ID,
		})
		assert.ErrorIs(t, err, apperrors.ErrCourseCodeExists)
	})
}

func TestUpdateCourse(t *testing.T) {
	store := repotest.NewStore()
	dept := store.SeedDepartment(&models.Department{Name: "Computer Science", Code: "CS"})
	owner := seedTeacher(store, "Owner", "owner@example.com")
	other := seedTeacher(store, "Other", "other@example.com")
	admin := seedAdmin(store)
	course := store.SeedCourse(&models.Course{Code: "CS101", Name: "Intro", DepartmentID: dept.ID, TeacherID: owner.ID})
	store.SeedCourse(&models.Course{Code: "CS200", Name: "Algorithms", DepartmentID: dept.ID, TeacherID: other.ID})
	svc := newTestCourseService(store)
	ctx := context.Background()

	t.Run("owner may rename", func(t *testing.T) {
		name := "Introduction to Programming"
		updated, err := svc.UpdateCourse(ctx, owner, course.ID, &dto.UpdateCourseRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, name, updated.Name)
	})

	t.Run("non-owner teacher is forbidden", func(t *testing.T) {
		name := "Hijacked"
		_, err := svc.UpdateCourse(ctx, other, course.ID, &dto.UpdateCourseRequest{Name: &name})
		assert.ErrorIs(t, err, apperrors.ErrNotCourseOwner)
	})

	t.Run("admin may update any course", func(t *testing.T) {
		credits := 4
		updated, err := svc.UpdateCourse(ctx, admin, course.ID, &dto.UpdateCourseRequest{Credits: &credits})
		require.NoError(t, err)
		assert.Equal(t, 4, *updated.Credits)
	})

	t.Run("keeping own code is not a conflict", func(t *testing.T) {
		code := "CS101"
		_, err := svc.UpdateCourse(ctx, owner, course.ID, &dto.UpdateCourseRequest{Code: &code})
		assert.NoError(t, err)
	})

	t.Run("taking another course's code conflicts", func(t *testing.T) {
		code := "CS200"
		_, err := svc.UpdateCourse(ctx, owner, course.ID, &dto.UpdateCourseRequest{Code: &code})
		assert.ErrorIs(t, err, apperrors.ErrCourseCodeExists)
	})

	t.Run("changed department must exist", func(t *testing.T) {
		deptID := int64(99999)
		_, err := svc.UpdateCourse(ctx, owner, course.ID, &dto.UpdateCourseRequest{DepartmentID: &deptID})
		assert.ErrorIs(t, err, apperrors.ErrBadDepartment)
	})
}

func TestDeleteCourse(t *testing.T) {
	store := repotest.NewStore()
	dept := store.SeedDepartment(&models.Department{Name: "Computer Science", Code: "CS"})
	owner := seedTeacher(store, "Owner", "owner@example.com")
	student := seedStudent(store, "Student", "s@example.com")
	course := store.SeedCourse(&models.Course{Code: "CS101", Name: "Intro", DepartmentID: dept.ID, TeacherID: owner.ID})
	store.SeedEnrollment(&models.Enrollment{StudentID: student.ID, CourseID: course.ID})
	svc := newTestCourseService(store)
	ctx := context.Background()

	require.NoError(t, svc.DeleteCourse(ctx, course.ID))

	// Enrollments cascade with the course.
	enrollments, err := store.Enrollments().List(ctx, dto.EnrollmentFilter{CourseID: &course.ID})
	require.NoError(t, err)
	assert.Empty(t, enrollments)

	assert.ErrorIs(t, svc.DeleteCourse(ctx, course.ID), apperrors.ErrCourseNotFound)
}

func TestTeacherCourseViews(t *testing.T) {
	store := repotest.NewStore()
	dept := store.SeedDepartment(&models.Department{Name: "Computer Science", Code: "CS"})
	owner := seedTeacher(store, "Owner", "owner@example.com")
	other := seedTeacher(store, "Other", "other@example.com")
	student := seedStudent(store, "Student", "s@example.com")
	mine := store.SeedCourse(&models.Course{Code: "CS101", Name: "Intro", DepartmentID: dept.ID, TeacherID: owner.ID})
	theirs := store.SeedCourse(&models.Course{Code: "CS200", Name: "Algorithms", DepartmentID: dept.ID, TeacherID: other.ID})
	store.SeedEnrollment(&models.Enrollment{StudentID: student.ID, CourseID: mine.ID})
	svc := newTestCourseService(store)
	ctx := context.Background()

	t.Run("own courses only", func(t *testing.T) {
		courses, err := svc.ListOwnCourses(ctx, owner)
		require.NoError(t, err)
		require.Len(t, courses, 1)
		assert.Equal(t, mine.ID, courses[0].ID)
	})

	t.Run("students are not teachers", func(t *testing.T) {
		_, err := svc.ListOwnCourses(ctx, student)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("roster of an owned course", func(t *testing.T) {
		students, err := svc.ListEnrolledStudents(ctx, owner, mine.ID)
		require.NoError(t, err)
		require.Len(t, students, 1)
		assert.Equal(t, student.ID, students[0].ID)
	})

	t.Run("existing unowned course is forbidden", func(t *testing.T) {
		_, err := svc.ListEnrolledStudents(ctx, owner, theirs.ID)
		assert.ErrorIs(t, err, apperrors.ErrNotCourseOwner)
	})

	t.Run("absent course is not found", func(t *testing.T) {
		_, err := svc.ListEnrolledStudents(ctx, owner, 99999)
		assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	})
}
