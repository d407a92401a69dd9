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

// GradeService handles grading of assignments. All operations resolve
// the parent assignment first and narrow access to admins and the
// owner of its course.
type GradeService struct {
	gradeRepo      repositories.IGradeRepository
	assignmentRepo repositories.IAssignmentRepository
	authz          *auth.AuthorizationService
}

// NewGradeService creates a new grade service
func NewGradeService(
	gradeRepo repositories.IGradeRepository,
	assignmentRepo repositories.IAssignmentRepository,
	authz *auth.AuthorizationService,
) *GradeService {
	return &GradeService{
		gradeRepo:      gradeRepo,
		assignmentRepo: assignmentRepo,
		authz:          authz,
	}
}

// CreateGrade records a grade for a student on an assignment. The
// student must hold role student and be enrolled in the assignment's
// course, and may only be graded once per assignment. The grading
// identity is the actor.
func (s *GradeService) CreateGrade(ctx context.Context, actor *models.User, assignmentID int64, req *dto.CreateGradeRequest) (*models.Grade, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authz.RequireCourseOwnership(ctx, actor, assignment.CourseID); err != nil {
		return nil, err
	}
	if _, err := s.authz.ValidateStudentRef(ctx, req.StudentID); err != nil {
		return nil, err
	}
	if err := s.authz.RequireEnrollment(ctx, req.StudentID, assignment.CourseID); err != nil {
		return nil, err
	}

	exists, err := s.gradeRepo.Exists(ctx, assignmentID, req.StudentID)
	if err != nil {
		return nil, fmt.Errorf("error checking existing grade: %w", err)
	}
	if exists {
		return nil, apperrors.ErrGradeAlreadyExists
	}

	grade := &models.Grade{
		AssignmentID: assignmentID,
		StudentID:    req.StudentID,
		GradedByID:   actor.ID,
		GradeValue:   req.GradeValue,
		Feedback:     req.Feedback,
	}
	if err := s.gradeRepo.Create(ctx, grade); err != nil {
		return nil, err
	}

	return grade, nil
}

// ListGrades retrieves the grades of an assignment, narrowed to admins
// and the owner of its course
func (s *GradeService) ListGrades(ctx context.Context, actor *models.User, assignmentID int64) ([]*models.Grade, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authz.RequireCourseOwnership(ctx, actor, assignment.CourseID); err != nil {
		return nil, err
	}
	return s.gradeRepo.ListByAssignment(ctx, assignmentID)
}

// UpdateGrade applies the provided fields to a grade. A finalized grade
// can no longer be changed.
func (s *GradeService) UpdateGrade(ctx context.Context, actor *models.User, id int64, req *dto.UpdateGradeRequest) (*models.Grade, error) {
	grade, err := s.gradeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	assignment, err := s.assignmentRepo.GetByID(ctx, grade.AssignmentID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authz.RequireCourseOwnership(ctx, actor, assignment.CourseID); err != nil {
		return nil, err
	}
	if grade.IsFinalized {
		return nil, apperrors.ErrGradeFinalized
	}

	if req.GradeValue != nil {
		grade.GradeValue = *req.GradeValue
	}
	if req.Feedback != nil {
		grade.Feedback = req.Feedback
	}
	if req.Finalize != nil && *req.Finalize {
		grade.IsFinalized = true
	}

	if err := s.gradeRepo.Update(ctx, grade); err != nil {
		return nil, err
	}

	return grade, nil
}
