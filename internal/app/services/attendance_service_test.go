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

func TestMarkAttendance(t *testing.T) {
	store := repotest.NewStore()
	owner := seedTeacher(store, "Owner", "owner@example.com")
	other := seedTeacher(store, "Other", "other@example.com")
	student := seedStudent(store, "Student", "s@example.com")
	outsider := seedStudent(store, "Outsider", "o@example.com")
	course := store.SeedCourse(&models.Course{Code: "CS101", Name: "Intro", TeacherID: owner.ID})
	store.SeedEnrollment(&models.Enrollment{StudentID: student.ID, CourseID: course.ID})
	svc := NewAttendanceService(store.Attendance(), newTestAuthz(store))
	ctx := context.Background()

	t.Run("owner marks an enrolled student", func(t *testing.T) {
		record, err := svc.MarkAttendance(ctx, owner, course.ID, &dto.MarkAttendanceRequest{
			StudentID: student.ID, Date: "2026-03-02", Status: "present",
		})
		require.NoError(t, err)
		assert.Equal(t, owner.ID, record.MarkedByID)
		assert.Equal(t, "2026-03-02", record.Date.Format("2006-01-02"))
	})

	t.Run("same day without period conflicts", func(t *testing.T) {
		_, err := svc.MarkAttendance(ctx, owner, course.ID, &dto.MarkAttendanceRequest{
			StudentID: student.ID, Date: "2026-03-02", Status: "absent",
		})
		assert.ErrorIs(t, err, apperrors.ErrAttendanceAlreadyMarked)
	})

	t.Run("distinct period on the same day is allowed", func(t *testing.T) {
		period := "afternoon"
		_, err := svc.MarkAttendance(ctx, owner, course.ID, &dto.MarkAttendanceRequest{
			StudentID: student.ID, Date: "2026-03-02", Status: "present", Period: &period,
		})
		require.NoError(t, err)

		_, err = svc.MarkAttendance(ctx, owner, course.ID, &dto.MarkAttendanceRequest{
			StudentID: student.ID, Date: "2026-03-02", Status: "late", Period: &period,
		})
		assert.ErrorIs(t, err, apperrors.ErrAttendanceAlreadyMarked)
	})

	t.Run("non-owner teacher is forbidden", func(t *testing.T) {
		_, err := svc.MarkAttendance(ctx, other, course.ID, &dto.MarkAttendanceRequest{
			StudentID: student.ID, Date: "2026-03-03", Status: "present",
		})
		assert.ErrorIs(t, err, apperrors.ErrNotCourseOwner)
	})

	t.Run("unenrolled student is invalid", func(t *testing.T) {
		_, err := svc.MarkAttendance(ctx, owner, course.ID, &dto.MarkAttendanceRequest{
			StudentID: outsider.ID, Date: "2026-03-03", Status: "present",
		})
		assert.ErrorIs(t, err, apperrors.ErrNotEnrolled)
	})
}

func TestListAttendance(t *testing.T) {
	store := repotest.NewStore()
	owner := seedTeacher(store, "Owner", "owner@example.com")
	student := seedStudent(store, "Student", "s@example.com")
	course := store.SeedCourse(&models.Course{Code: "CS101", Name: "Intro", TeacherID: owner.ID})
	store.SeedEnrollment(&models.Enrollment{StudentID: student.ID, CourseID: course.ID})
	svc := NewAttendanceService(store.Attendance(), newTestAuthz(store))
	ctx := context.Background()

	for _, date := range []string{"2026-03-02", "2026-03-03"} {
		_, err := svc.MarkAttendance(ctx, owner, course.ID, &dto.MarkAttendanceRequest{
			StudentID: student.ID, Date: date, Status: "present",
		})
		require.NoError(t, err)
	}

	all, err := svc.ListAttendance(ctx, owner, course.ID, dto.AttendanceFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	date := "2026-03-03"
	filtered, err := svc.ListAttendance(ctx, owner, course.ID, dto.AttendanceFilter{Date: &date})
	require.NoError(t, err)
	assert.Len(t, filtered, 1)

	_, err = svc.ListAttendance(ctx, student, course.ID, dto.AttendanceFilter{})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}
