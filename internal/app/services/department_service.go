package services

import (
	"context"
	"fmt"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

// DepartmentService handles department management operations
type DepartmentService struct {
	departmentRepo repositories.IDepartmentRepository
}

// NewDepartmentService creates a new department service
func NewDepartmentService(departmentRepo repositories.IDepartmentRepository) *DepartmentService {
	return &DepartmentService{departmentRepo: departmentRepo}
}

// CreateDepartment creates a department. Both name and code must be
// unused.
func (s *DepartmentService) CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error) {
	taken, err := s.departmentRepo.NameOrCodeTaken(ctx, req.Name, req.Code, 0)
	if err != nil {
		return nil, fmt.Errorf("error checking department uniqueness: %w", err)
	}
	if taken {
		return nil, apperrors.ErrDepartmentAlreadyExists
	}

	department := &models.Department{
		Name: req.Name,
		Code: req.Code,
	}
	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return nil, err
	}

	return department, nil
}

// GetDepartment retrieves a department by ID
func (s *DepartmentService) GetDepartment(ctx context.Context, id int64) (*models.Department, error) {
	return s.departmentRepo.GetByID(ctx, id)
}

// GetAllDepartments retrieves all departments
func (s *DepartmentService) GetAllDepartments(ctx context.Context) ([]*models.Department, error) {
	return s.departmentRepo.GetAll(ctx)
}

// UpdateDepartment applies the provided fields. Keeping the current
// name or code is not a conflict. HodUserID is stored as given and not
// cross-checked against the users table.
func (s *DepartmentService) UpdateDepartment(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*models.Department, error) {
	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := department.Name
	if req.Name != nil {
		name = *req.Name
	}
	code := department.Code
	if req.Code != nil {
		code = *req.Code
	}
	if name != department.Name || code != department.Code {
		taken, err := s.departmentRepo.NameOrCodeTaken(ctx, name, code, department.ID)
		if err != nil {
			return nil, fmt.Errorf("error checking department uniqueness: %w", err)
		}
		if taken {
			return nil, apperrors.ErrDepartmentAlreadyExists
		}
	}

	department.Name = name
	department.Code = code
	if req.HodUserID != nil {
		department.HodUserID = req.HodUserID
	}

	if err := s.departmentRepo.Update(ctx, department); err != nil {
		return nil, err
	}

	return department, nil
}

// DeleteDepartment removes a department
func (s *DepartmentService) DeleteDepartment(ctx context.Context, id int64) error {
	return s.departmentRepo.Delete(ctx, id)
}
