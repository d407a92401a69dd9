package dto

import (
	"time"

	"github.com/campushub/backend/internal/app/models"
)

// UserResponse is the external user representation. It never carries
// the password hash.
type UserResponse struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"isActive"`
	DepartmentID *int64    `json:"departmentId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewUserResponse maps a stored user to its external representation
func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		FullName:     u.FullName,
		Email:        u.Email,
		Role:         string(u.Role),
		IsActive:     u.IsActive,
		DepartmentID: u.DepartmentID,
		CreatedAt:    u.CreatedAt,
	}
}

// NewUserResponses maps a list of stored users
func NewUserResponses(users []*models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

// CreateUserRequest represents admin user creation data
type CreateUserRequest struct {
	FullName     string `json:"fullName" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	Role         string `json:"role" binding:"required"`
	DepartmentID *int64 `json:"departmentId"`
}

// UpdateUserRequest represents admin user update data; only provided
// fields are applied.
type UpdateUserRequest struct {
	FullName     *string `json:"fullName"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Role         *string `json:"role"`
	DepartmentID *int64  `json:"departmentId"`
	IsActive     *bool   `json:"isActive"`
}

// UserFilter holds optional list filters
type UserFilter struct {
	Role         *models.RoleType
	DepartmentID *int64
	IsActive     *bool
}
