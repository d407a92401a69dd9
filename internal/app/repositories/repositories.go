package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles all repository implementations
type Repositories struct {
	UserRepository       IUserRepository
	DepartmentRepository IDepartmentRepository
	CourseRepository     ICourseRepository
	EnrollmentRepository IEnrollmentRepository
	AssignmentRepository IAssignmentRepository
	GradeRepository      IGradeRepository
	AttendanceRepository IAttendanceRepository
	ResourceRepository   IResourceRepository
	BookingRepository    IBookingRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		DepartmentRepository: NewDepartmentRepository(db),
		CourseRepository:     NewCourseRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
		AssignmentRepository: NewAssignmentRepository(db),
		GradeRepository:      NewGradeRepository(db),
		AttendanceRepository: NewAttendanceRepository(db),
		ResourceRepository:   NewResourceRepository(db),
		BookingRepository:    NewBookingRepository(db),
	}
}
