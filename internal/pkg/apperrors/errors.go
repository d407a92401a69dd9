package apperrors

import "errors"

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenMissing       = errors.New("token not found")
	ErrAccountDisabled    = errors.New("account is disabled")
)

// Authorization errors
var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotCourseOwner   = errors.New("you can only act on courses you teach")
)

// Validation errors
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrBadDepartment    = errors.New("department_id must refer to an existing department")
	ErrBadTeacher       = errors.New("teacher_id must refer to a user with role 'teacher' or 'hod'")
	ErrBadStudent       = errors.New("student_id must refer to a user with role 'student'")
	ErrBadCourse        = errors.New("course_id must refer to an existing course")
	ErrBadResource      = errors.New("resource_id must refer to an existing active resource")
	ErrBadTimeRange     = errors.New("end_time must be after start_time")
	ErrNotEnrolled      = errors.New("student is not enrolled in this course")
)

// Not-found errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrGradeNotFound      = errors.New("grade not found")
	ErrResourceNotFound   = errors.New("resource not found")
	ErrBookingNotFound    = errors.New("booking not found")
)

// Conflict errors. The same sentinels cover both the preemptive existence
// checks and storage-level unique violations caught on insert.
var (
	ErrAdminAlreadyExists      = errors.New("an admin user already exists, admin registration is disabled")
	ErrEmailAlreadyExists      = errors.New("a user with this email already exists")
	ErrDepartmentAlreadyExists = errors.New("a department with this name or code already exists")
	ErrCourseCodeExists        = errors.New("a course with this code already exists")
	ErrAlreadyEnrolled         = errors.New("student is already enrolled in this course")
	ErrGradeAlreadyExists      = errors.New("a grade for this assignment and student already exists")
	ErrGradeFinalized          = errors.New("grade has been finalized and can no longer be changed")
	ErrAttendanceAlreadyMarked = errors.New("attendance for this student, date and period is already marked")
	ErrBookingOverlap          = errors.New("resource already has an approved booking in this time range")
	ErrBookingNotPending       = errors.New("only pending bookings can be changed")
)

// Is reports whether err matches target or any of the extra sentinels.
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
