package services

import (
	"context"
	"fmt"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
	pkgauth "github.com/campushub/backend/internal/pkg/auth"
)

// UserService handles user management operations. Role gating for the
// admin-only surface happens in the route layer; this service enforces
// the integrity rules.
type UserService struct {
	userRepo repositories.IUserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.IUserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUser creates a user with an arbitrary role. Uniqueness of the
// email is checked up front and backstopped by the storage constraint.
func (s *UserService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	role := models.RoleType(req.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidationFailed, req.Role)
	}

	emailTaken, err := s.userRepo.EmailTaken(ctx, req.Email, 0)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if emailTaken {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := pkgauth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		DepartmentID: req.DepartmentID,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// ListUsers retrieves users matching the optional filters
func (s *UserService) ListUsers(ctx context.Context, filter dto.UserFilter) ([]*models.User, error) {
	if filter.Role != nil && !filter.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidationFailed, *filter.Role)
	}
	return s.userRepo.List(ctx, filter)
}

// UpdateUser applies the provided fields to an existing user. A
// self-update to the same email is not a conflict.
func (s *UserService) UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Role != nil {
		role := models.RoleType(*req.Role)
		if !role.Valid() {
			return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidationFailed, *req.Role)
		}
		user.Role = role
	}

	if req.Email != nil && *req.Email != user.Email {
		emailTaken, err := s.userRepo.EmailTaken(ctx, *req.Email, user.ID)
		if err != nil {
			return nil, fmt.Errorf("error checking email: %w", err)
		}
		if emailTaken {
			return nil, apperrors.ErrEmailAlreadyExists
		}
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.DepartmentID != nil {
		user.DepartmentID = req.DepartmentID
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser removes a user. Enrollments cascade at the storage layer.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	return s.userRepo.Delete(ctx, id)
}
