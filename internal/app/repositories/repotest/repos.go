package repotest

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

// UserRepo is the in-memory IUserRepository
type UserRepo struct {
	store *Store
}

// Create stores a user, enforcing email uniqueness
func (r *UserRepo) Create(_ context.Context, user *models.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.users {
		if existing.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	user.ID = r.store.id()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.store.users[user.ID] = user
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	user, ok := r.store.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, user := range r.store.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// List retrieves users matching the filter
func (r *UserRepo) List(_ context.Context, filter dto.UserFilter) ([]*models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*models.User
	for _, user := range r.store.users {
		if filter.Role != nil && user.Role != *filter.Role {
			continue
		}
		if filter.DepartmentID != nil && (user.DepartmentID == nil || *user.DepartmentID != *filter.DepartmentID) {
			continue
		}
		if filter.IsActive != nil && user.IsActive != *filter.IsActive {
			continue
		}
		copied := *user
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Update replaces a stored user
func (r *UserRepo) Update(_ context.Context, user *models.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.users[user.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	for _, existing := range r.store.users {
		if existing.ID != user.ID && existing.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	user.UpdatedAt = time.Now()
	copied := *user
	r.store.users[user.ID] = &copied
	return nil
}

// Delete removes a user and cascades enrollments
func (r *UserRepo) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(r.store.users, id)
	for eid, e := range r.store.enrollments {
		if e.StudentID == id {
			delete(r.store.enrollments, eid)
		}
	}
	return nil
}

// EmailTaken reports whether another user holds the email
func (r *UserRepo) EmailTaken(_ context.Context, email string, excludeID int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, user := range r.store.users {
		if user.ID != excludeID && strings.EqualFold(user.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

// AdminExists reports whether any admin account exists
func (r *UserRepo) AdminExists(_ context.Context) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, user := range r.store.users {
		if user.Role == models.RoleAdmin {
			return true, nil
		}
	}
	return false, nil
}

// GetStudentsByCourse retrieves students enrolled in a course, ordered
// by name
func (r *UserRepo) GetStudentsByCourse(_ context.Context, courseID int64) ([]*models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*models.User
	for _, e := range r.store.enrollments {
		if e.CourseID != courseID {
			continue
		}
		if user, ok := r.store.users[e.StudentID]; ok {
			copied := *user
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FullName < out[j].FullName })
	return out, nil
}

// DepartmentRepo is the in-memory IDepartmentRepository
type DepartmentRepo struct {
	store *Store
}

// Create stores a department, enforcing name and code uniqueness
func (r *DepartmentRepo) Create(_ context.Context, department *models.Department) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.departments {
		if existing.Name == department.Name || existing.Code == department.Code {
			return apperrors.ErrDepartmentAlreadyExists
		}
	}
	department.ID = r.store.id()
	department.CreatedAt = time.Now()
	r.store.departments[department.ID] = department
	return nil
}

// GetByID retrieves a department by ID
func (r *DepartmentRepo) GetByID(_ context.Context, id int64) (*models.Department, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	department, ok := r.store.departments[id]
	if !ok {
		return nil, apperrors.ErrDepartmentNotFound
	}
	copied := *department
	return &copied, nil
}

// GetAll retrieves all departments
func (r *DepartmentRepo) GetAll(_ context.Context) ([]*models.Department, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*models.Department
	for _, department := range r.store.departments {
		copied := *department
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Update replaces a stored department
func (r *DepartmentRepo) Update(_ context.Context, department *models.Department) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.departments[department.ID]; !ok {
		return apperrors.ErrDepartmentNotFound
	}
	copied := *department
	r.store.departments[department.ID] = &copied
	return nil
}

// Delete removes a department
func (r *DepartmentRepo) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.departments[id]; !ok {
		return apperrors.ErrDepartmentNotFound
	}
	delete(r.store.departments, id)
	return nil
}

// NameOrCodeTaken reports whether another department holds the name or
// code
func (r *DepartmentRepo) NameOrCodeTaken(_ context.Context, name, code string, excludeID int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, department := range r.store.departments {
		if department.ID == excludeID {
			continue
		}
		if department.Name == name || department.Code == code {
			return true, nil
		}
	}
	return false, nil
}

// CourseRepo is the in-memory ICourseRepository
type CourseRepo struct {
	store *Store
}

// Create stores a course, enforcing code uniqueness
func (r *CourseRepo) Create(_ context.Context, course *models.Course) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.courses {
		if existing.Code == course.Code {
			return apperrors.ErrCourseCodeExists
		}
	}
	course.ID = r.store.id()
	r.store.courses[course.ID] = course
	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepo) GetByID(_ context.Context, id int64) (*models.Course, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	course, ok := r.store.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	copied := *course
	return &copied, nil
}

// List retrieves courses matching the filter
func (r *CourseRepo) List(_ context.Context, filter dto.CourseFilter) ([]*models.Course, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*models.Course
	for _, course := range r.store.courses {
		if filter.DepartmentID != nil && course.DepartmentID != *filter.DepartmentID {
			continue
		}
		if filter.TeacherID != nil && course.TeacherID != *filter.TeacherID {
			continue
		}
		if filter.Semester != nil && (course.Semester == nil || *course.Semester != *filter.Semester) {
			continue
		}
		copied := *course
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ListByTeacher retrieves courses taught by a teacher
func (r *CourseRepo) ListByTeacher(ctx context.Context, teacherID int64) ([]*models.Course, error) {
	return r.List(ctx, dto.CourseFilter{TeacherID: &teacherID})
}

// Update replaces a stored course
func (r *CourseRepo) Update(_ context.Context, course *models.Course) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	for _, existing := range r.store.courses {
		if existing.ID != course.ID && existing.Code == course.Code {
			return apperrors.ErrCourseCodeExists
		}
	}
	copied := *course
	r.store.courses[course.ID] = &copied
	return nil
}

// Delete removes a course and cascades enrollments, assignments,
// grades and attendance
func (r *CourseRepo) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(r.store.courses, id)
	for eid, e := range r.store.enrollments {
		if e.CourseID == id {
			delete(r.store.enrollments, eid)
		}
	}
	for aid, a := range r.store.assignments {
		if a.CourseID == id {
			for gid, g := range r.store.grades {
				if g.AssignmentID == aid {
					delete(r.store.grades, gid)
				}
			}
			delete(r.store.assignments, aid)
		}
	}
	for tid, t := range r.store.attendance {
		if t.CourseID == id {
			delete(r.store.attendance, tid)
		}
	}
	return nil
}

// CodeTaken reports whether another course holds the code
func (r *CourseRepo) CodeTaken(_ context.Context, code string, excludeID int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, course := range r.store.courses {
		if course.ID != excludeID && course.Code == code {
			return true, nil
		}
	}
	return false, nil
}

// EnrollmentRepo is the in-memory IEnrollmentRepository
type EnrollmentRepo struct {
	store *Store
}

// Create stores an enrollment, enforcing pair uniqueness
func (r *EnrollmentRepo) Create(_ context.Context, enrollment *models.Enrollment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.enrollments {
		if existing.StudentID == enrollment.StudentID && existing.CourseID == enrollment.CourseID {
			return apperrors.ErrAlreadyEnrolled
		}
	}
	enrollment.ID = r.store.id()
	enrollment.CreatedAt = time.Now()
	r.store.enrollments[enrollment.ID] = enrollment
	return nil
}

// List retrieves enrollments matching the filter
func (r *EnrollmentRepo) List(_ context.Context, filter dto.EnrollmentFilter) ([]*models.Enrollment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*models.Enrollment
	for _, enrollment := range r.store.enrollments {
		if filter.StudentID != nil && enrollment.StudentID != *filter.StudentID {
			continue
		}
		if filter.CourseID != nil && enrollment.CourseID != *filter.CourseID {
			continue
		}
		copied := *enrollment
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Exists reports whether the student is enrolled in the course
func (r *EnrollmentRepo) Exists(_ context.Context, studentID, courseID int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, enrollment := range r.store.enrollments {
		if enrollment.StudentID == studentID && enrollment.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

// AssignmentRepo is the in-memory IAssignmentRepository
type AssignmentRepo struct {
	store *Store
}

// Create stores an assignment
func (r *AssignmentRepo) Create(_ context.Context, assignment *models.Assignment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	assignment.ID = r.store.id()
	r.store.assignments[assignment.ID] = assignment
	return nil
}

// GetByID retrieves an assignment by ID
func (r *AssignmentRepo) GetByID(_ context.Context, id int64) (*models.Assignment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	assignment, ok := r.store.assignments[id]
	if !ok {
		return nil, apperrors.ErrAssignmentNotFound
	}
	copied := *assignment
	return &copied, nil
}

// ListByCourse retrieves the assignments of a course
func (r *AssignmentRepo) ListByCourse(_ context.Context, courseID int64) ([]*models.Assignment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*models.Assignment
	for _, assignment := range r.store.assignments {
		if assignment.CourseID == courseID {
			copied := *assignment
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Update replaces a stored assignment
func (r *AssignmentRepo) Update(_ context.Context, assignment *models.Assignment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.assignments[assignment.ID]; !ok {
		return apperrors.ErrAssignmentNotFound
	}
	copied := *assignment
	r.store.assignments[assignment.ID] = &copied
	return nil
}

// Delete removes an assignment and cascades grades
func (r *AssignmentRepo) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.assignments[id]; !ok {
		return apperrors.ErrAssignmentNotFound
	}
	delete(r.store.assignments, id)
	for gid, g := range r.store.grades {
		if g.AssignmentID == id {
			delete(r.store.grades, gid)
		}
	}
	return nil
}

// GradeRepo is the in-memory IGradeRepository
type GradeRepo struct {
	store *Store
}

// Create stores a grade, enforcing (assignment, student) uniqueness
func (r *GradeRepo) Create(_ context.Context, grade *models.Grade) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.grades {
		if existing.AssignmentID == grade.AssignmentID && existing.StudentID == grade.StudentID {
			return apperrors.ErrGradeAlreadyExists
		}
	}
	grade.ID = r.store.id()
	grade.GradedAt = time.Now()
	r.store.grades[grade.ID] = grade
	return nil
}

// GetByID retrieves a grade by ID
func (r *GradeRepo) GetByID(_ context.Context, id int64) (*models.Grade, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	grade, ok := r.store.grades[id]
	if !ok {
		return nil, apperrors.ErrGradeNotFound
	}
	copied := *grade
	return &copied, nil
}

// ListByAssignment retrieves the grades of an assignment
func (r *GradeRepo) ListByAssignment(_ context.Context, assignmentID int64) ([]*models.Grade, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*models.Grade
	for _, grade := range r.store.grades {
		if grade.AssignmentID == assignmentID {
			copied := *grade
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Update replaces a stored grade
func (r *GradeRepo) Update(_ context.Context, grade *models.Grade) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.grades[grade.ID]; !ok {
		return apperrors.ErrGradeNotFound
	}
	copied := *grade
	r.store.grades[grade.ID] = &copied
	return nil
}

// Exists reports whether a grade exists for the pair
func (r *GradeRepo) Exists(_ context.Context, assignmentID, studentID int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, grade := range r.store.grades {
		if grade.AssignmentID == assignmentID && grade.StudentID == studentID {
			return true, nil
		}
	}
	return false, nil
}

// AttendanceRepo is the in-memory IAttendanceRepository
type AttendanceRepo struct {
	store *Store
}

const dateLayout = "2006-01-02"

func samePeriod(a, b *string) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}

// Create stores an attendance record, enforcing tuple uniqueness
func (r *AttendanceRepo) Create(_ context.Context, attendance *models.Attendance) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.attendance {
		if existing.CourseID == attendance.CourseID &&
			existing.StudentID == attendance.StudentID &&
			existing.Date.Equal(attendance.Date) &&
			samePeriod(existing.Period, attendance.Period) {
			return apperrors.ErrAttendanceAlreadyMarked
		}
	}
	attendance.ID = r.store.id()
	r.store.attendance[attendance.ID] = attendance
	return nil
}

// ListByCourse retrieves attendance records matching the filter
func (r *AttendanceRepo) ListByCourse(_ context.Context, courseID int64, filter dto.AttendanceFilter) ([]*models.Attendance, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*models.Attendance
	for _, attendance := range r.store.attendance {
		if attendance.CourseID != courseID {
			continue
		}
		if filter.StudentID != nil && attendance.StudentID != *filter.StudentID {
			continue
		}
		if filter.Date != nil && attendance.Date.Format(dateLayout) != *filter.Date {
			continue
		}
		copied := *attendance
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Exists reports whether the tuple is already marked
func (r *AttendanceRepo) Exists(_ context.Context, courseID, studentID int64, date string, period *string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, attendance := range r.store.attendance {
		if attendance.CourseID == courseID &&
			attendance.StudentID == studentID &&
			attendance.Date.Format(dateLayout) == date &&
			samePeriod(attendance.Period, period) {
			return true, nil
		}
	}
	return false, nil
}

// ResourceRepo is the in-memory IResourceRepository
type ResourceRepo struct {
	store *Store
}

// Create stores a resource
func (r *ResourceRepo) Create(_ context.Context, resource *models.Resource) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	resource.ID = r.store.id()
	r.store.resources[resource.ID] = resource
	return nil
}

// GetByID retrieves a resource by ID
func (r *ResourceRepo) GetByID(_ context.Context, id int64) (*models.Resource, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	resource, ok := r.store.resources[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	copied := *resource
	return &copied, nil
}

// List retrieves resources, optionally only active ones
func (r *ResourceRepo) List(_ context.Context, onlyActive bool) ([]*models.Resource, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*models.Resource
	for _, resource := range r.store.resources {
		if onlyActive && !resource.IsActive {
			continue
		}
		copied := *resource
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Update replaces a stored resource
func (r *ResourceRepo) Update(_ context.Context, resource *models.Resource) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.resources[resource.ID]; !ok {
		return apperrors.ErrResourceNotFound
	}
	copied := *resource
	r.store.resources[resource.ID] = &copied
	return nil
}

// Delete removes a resource and cascades bookings
func (r *ResourceRepo) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.resources[id]; !ok {
		return apperrors.ErrResourceNotFound
	}
	delete(r.store.resources, id)
	for bid, b := range r.store.bookings {
		if b.ResourceID == id {
			delete(r.store.bookings, bid)
		}
	}
	return nil
}

// BookingRepo is the in-memory IBookingRepository
type BookingRepo struct {
	store *Store
}

// Create stores a booking
func (r *BookingRepo) Create(_ context.Context, booking *models.Booking) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	booking.ID = r.store.id()
	r.store.bookings[booking.ID] = booking
	return nil
}

// GetByID retrieves a booking by ID
func (r *BookingRepo) GetByID(_ context.Context, id int64) (*models.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	booking, ok := r.store.bookings[id]
	if !ok {
		return nil, apperrors.ErrBookingNotFound
	}
	copied := *booking
	return &copied, nil
}

// List retrieves bookings matching the filter
func (r *BookingRepo) List(_ context.Context, filter dto.BookingFilter) ([]*models.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*models.Booking
	for _, booking := range r.store.bookings {
		if filter.ResourceID != nil && booking.ResourceID != *filter.ResourceID {
			continue
		}
		if filter.Status != nil && string(booking.Status) != *filter.Status {
			continue
		}
		if filter.BookedByID != nil && booking.BookedByID != *filter.BookedByID {
			continue
		}
		copied := *booking
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// UpdateStatus resolves a booking
func (r *BookingRepo) UpdateStatus(_ context.Context, id int64, status models.BookingStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	booking, ok := r.store.bookings[id]
	if !ok {
		return apperrors.ErrBookingNotFound
	}
	booking.Status = status
	return nil
}

// Delete removes a booking
func (r *BookingRepo) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.bookings[id]; !ok {
		return apperrors.ErrBookingNotFound
	}
	delete(r.store.bookings, id)
	return nil
}

// HasApprovedOverlap reports whether an approved booking of the
// resource overlaps the range
func (r *BookingRepo) HasApprovedOverlap(_ context.Context, resourceID int64, start, end time.Time, excludeID int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, booking := range r.store.bookings {
		if booking.ID == excludeID || booking.ResourceID != resourceID {
			continue
		}
		if booking.Status != models.BookingApproved {
			continue
		}
		if booking.StartTime.Before(end) && booking.EndTime.After(start) {
			return true, nil
		}
	}
	return false, nil
}
