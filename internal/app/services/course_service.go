package services

import (
	"context"
	"fmt"

	"github.com/campushub/backend/internal/app/auth"
	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

// CourseService handles course management and the teacher-facing course
// views. Checks run in a fixed order: role gate, ownership, referential
// existence, then uniqueness.
type CourseService struct {
	courseRepo repositories.ICourseRepository
	userRepo   repositories.IUserRepository
	authz      *auth.AuthorizationService
}

// NewCourseService creates a new course service
func NewCourseService(
	courseRepo repositories.ICourseRepository,
	userRepo repositories.IUserRepository,
	authz *auth.AuthorizationService,
) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		userRepo:   userRepo,
		authz:      authz,
	}
}

// CreateCourse creates a course. The department must exist and the
// teacher must hold a teaching role before the code uniqueness check
// runs.
func (s *CourseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	if err := s.authz.ValidateDepartmentRef(ctx, req.DepartmentID); err != nil {
		return nil, err
	}
	if err := s.authz.ValidateTeacherRef(ctx, req.TeacherID); err != nil {
		return nil, err
	}

	taken, err := s.courseRepo.CodeTaken(ctx, req.Code, 0)
	if err != nil {
		return nil, fmt.Errorf("error checking course code: %w", err)
	}
	if taken {
		return nil, apperrors.ErrCourseCodeExists
	}

	course := &models.Course{
		Code:         req.Code,
		Name:         req.Name,
		Description:  req.Description,
		DepartmentID: req.DepartmentID,
		TeacherID:    req.TeacherID,
		Semester:     req.Semester,
		Credits:      req.Credits,
	}
	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// GetCourse retrieves a course by ID
func (s *CourseService) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// ListCourses retrieves courses matching the optional filters
func (s *CourseService) ListCourses(ctx context.Context, filter dto.CourseFilter) ([]*models.Course, error) {
	return s.courseRepo.List(ctx, filter)
}

// UpdateCourse applies the provided fields. Admins may update any
// course; teachers and HODs only those they own. Referential checks
// only run for fields actually changing.
func (s *CourseService) UpdateCourse(ctx context.Context, actor *models.User, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.authz.RequireCourseOwnership(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if req.DepartmentID != nil && *req.DepartmentID != course.DepartmentID {
		if err := s.authz.ValidateDepartmentRef(ctx, *req.DepartmentID); err != nil {
			return nil, err
		}
		course.DepartmentID = *req.DepartmentID
	}
	if req.TeacherID != nil && *req.TeacherID != course.TeacherID {
		if err := s.authz.ValidateTeacherRef(ctx, *req.TeacherID); err != nil {
			return nil, err
		}
		course.TeacherID = *req.TeacherID
	}
	if req.Code != nil && *req.Code != course.Code {
		taken, err := s.courseRepo.CodeTaken(ctx, *req.Code, course.ID)
		if err != nil {
			return nil, fmt.Errorf("error checking course code: %w", err)
		}
		if taken {
			return nil, apperrors.ErrCourseCodeExists
		}
		course.Code = *req.Code
	}
	if req.Name != nil {
		course.Name = *req.Name
	}
	if req.Description != nil {
		course.Description = req.Description
	}
	if req.Semester != nil {
		course.Semester = req.Semester
	}
	if req.Credits != nil {
		course.Credits = req.Credits
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// DeleteCourse removes a course. Enrollments, assignments and
// attendance cascade at the storage layer.
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	if _, err := s.courseRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.courseRepo.Delete(ctx, id)
}

// ListOwnCourses retrieves the courses the actor teaches
func (s *CourseService) ListOwnCourses(ctx context.Context, actor *models.User) ([]*models.Course, error) {
	if err := s.authz.RequireRole(actor, models.RoleTeacher, models.RoleHOD); err != nil {
		return nil, err
	}
	return s.courseRepo.ListByTeacher(ctx, actor.ID)
}

// ListEnrolledStudents retrieves the roster of a course the actor
// teaches. An existing course taught by someone else is forbidden, an
// absent one not found.
func (s *CourseService) ListEnrolledStudents(ctx context.Context, actor *models.User, courseID int64) ([]*models.User, error) {
	if err := s.authz.RequireRole(actor, models.RoleTeacher, models.RoleHOD); err != nil {
		return nil, err
	}
	if _, err := s.authz.RequireCourseOwnership(ctx, actor, courseID); err != nil {
		return nil, err
	}
	return s.userRepo.GetStudentsByCourse(ctx, courseID)
}
