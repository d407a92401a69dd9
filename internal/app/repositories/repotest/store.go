// Package repotest provides in-memory repository implementations used
// by service and authorization tests. The fakes mirror the uniqueness
// rules the SQL schema enforces so conflict paths behave the same way
// against both backends.
package repotest

import (
	"sync"
	"time"

	"github.com/campushub/backend/internal/app/models"
)

// Store holds all in-memory tables behind a single lock
type Store struct {
	mu     sync.Mutex
	nextID int64

	users       map[int64]*models.User
	departments map[int64]*models.Department
	courses     map[int64]*models.Course
	enrollments map[int64]*models.Enrollment
	assignments map[int64]*models.Assignment
	grades      map[int64]*models.Grade
	attendance  map[int64]*models.Attendance
	resources   map[int64]*models.Resource
	bookings    map[int64]*models.Booking
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		users:       make(map[int64]*models.User),
		departments: make(map[int64]*models.Department),
		courses:     make(map[int64]*models.Course),
		enrollments: make(map[int64]*models.Enrollment),
		assignments: make(map[int64]*models.Assignment),
		grades:      make(map[int64]*models.Grade),
		attendance:  make(map[int64]*models.Attendance),
		resources:   make(map[int64]*models.Resource),
		bookings:    make(map[int64]*models.Booking),
	}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// Users returns the user repository view
func (s *Store) Users() *UserRepo { return &UserRepo{store: s} }

// Departments returns the department repository view
func (s *Store) Departments() *DepartmentRepo { return &DepartmentRepo{store: s} }

// Courses returns the course repository view
func (s *Store) Courses() *CourseRepo { return &CourseRepo{store: s} }

// Enrollments returns the enrollment repository view
func (s *Store) Enrollments() *EnrollmentRepo { return &EnrollmentRepo{store: s} }

// Assignments returns the assignment repository view
func (s *Store) Assignments() *AssignmentRepo { return &AssignmentRepo{store: s} }

// Grades returns the grade repository view
func (s *Store) Grades() *GradeRepo { return &GradeRepo{store: s} }

// Attendance returns the attendance repository view
func (s *Store) Attendance() *AttendanceRepo { return &AttendanceRepo{store: s} }

// Resources returns the resource repository view
func (s *Store) Resources() *ResourceRepo { return &ResourceRepo{store: s} }

// Bookings returns the booking repository view
func (s *Store) Bookings() *BookingRepo { return &BookingRepo{store: s} }

// SeedUser inserts a user directly, bypassing uniqueness checks
func (s *Store) SeedUser(u *models.User) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == 0 {
		u.ID = s.id()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	s.users[u.ID] = u
	return u
}

// SeedDepartment inserts a department directly
func (s *Store) SeedDepartment(d *models.Department) *models.Department {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d.ID == 0 {
		d.ID = s.id()
	}
	s.departments[d.ID] = d
	return d
}

// SeedCourse inserts a course directly
func (s *Store) SeedCourse(c *models.Course) *models.Course {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == 0 {
		c.ID = s.id()
	}
	s.courses[c.ID] = c
	return c
}

// SeedEnrollment inserts an enrollment directly
func (s *Store) SeedEnrollment(e *models.Enrollment) *models.Enrollment {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.ID == 0 {
		e.ID = s.id()
	}
	s.enrollments[e.ID] = e
	return e
}

// SeedAssignment inserts an assignment directly
func (s *Store) SeedAssignment(a *models.Assignment) *models.Assignment {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.ID == 0 {
		a.ID = s.id()
	}
	s.assignments[a.ID] = a
	return a
}

// SeedResource inserts a resource directly
func (s *Store) SeedResource(r *models.Resource) *models.Resource {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == 0 {
		r.ID = s.id()
	}
	s.resources[r.ID] = r
	return r
}

// SeedBooking inserts a booking directly
func (s *Store) SeedBooking(b *models.Booking) *models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.ID == 0 {
		b.ID = s.id()
	}
	s.bookings[b.ID] = b
	return b
}
