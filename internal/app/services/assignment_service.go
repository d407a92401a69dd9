package services

import (
	"context"

	"github.com/campushub/backend/internal/app/auth"
	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
)

// AssignmentService handles coursework issued under a course. Writes
// are narrowed to admins and the owning teacher; reads are open to any
// active identity.
type AssignmentService struct {
	assignmentRepo repositories.IAssignmentRepository
	courseRepo     repositories.ICourseRepository
	authz          *auth.AuthorizationService
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(
	assignmentRepo repositories.IAssignmentRepository,
	courseRepo repositories.ICourseRepository,
	authz *auth.AuthorizationService,
) *AssignmentService {
	return &AssignmentService{
		assignmentRepo: assignmentRepo,
		courseRepo:     courseRepo,
		authz:          authz,
	}
}

// CreateAssignment creates an assignment under a course the actor owns
func (s *AssignmentService) CreateAssignment(ctx context.Context, actor *models.User, courseID int64, req *dto.CreateAssignmentRequest) (*models.Assignment, error) {
	if _, err := s.authz.RequireCourseOwnership(ctx, actor, courseID); err != nil {
		return nil, err
	}

	assignment := &models.Assignment{
		CourseID:    courseID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	}
	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, err
	}

	return assignment, nil
}

// GetAssignment retrieves an assignment by ID
func (s *AssignmentService) GetAssignment(ctx context.Context, id int64) (*models.Assignment, error) {
	return s.assignmentRepo.GetByID(ctx, id)
}

// ListAssignments retrieves the assignments of a course. The course
// must exist even when it has none.
func (s *AssignmentService) ListAssignments(ctx context.Context, courseID int64) ([]*models.Assignment, error) {
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, err
	}
	return s.assignmentRepo.ListByCourse(ctx, courseID)
}

// UpdateAssignment applies the provided fields to an assignment on a
// course the actor owns
func (s *AssignmentService) UpdateAssignment(ctx context.Context, actor *models.User, id int64, req *dto.UpdateAssignmentRequest) (*models.Assignment, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.authz.RequireCourseOwnership(ctx, actor, assignment.CourseID); err != nil {
		return nil, err
	}

	if req.Title != nil {
		assignment.Title = *req.Title
	}
	if req.Description != nil {
		assignment.Description = req.Description
	}
	if req.DueDate != nil {
		assignment.DueDate = req.DueDate
	}

	if err := s.assignmentRepo.Update(ctx, assignment); err != nil {
		return nil, err
	}

	return assignment, nil
}

// DeleteAssignment removes an assignment from a course the actor owns.
// Grades cascade at the storage layer.
func (s *AssignmentService) DeleteAssignment(ctx context.Context, actor *models.User, id int64) error {
	assignment, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.authz.RequireCourseOwnership(ctx, actor, assignment.CourseID); err != nil {
		return err
	}
	return s.assignmentRepo.Delete(ctx, id)
}
