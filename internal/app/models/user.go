package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID           int64     `json:"id" db:"id"`
	FullName     string    `json:"fullName" db:"full_name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // excluded from JSON
	Role         RoleType  `json:"role" db:"role"`
	IsActive     bool      `json:"isActive" db:"is_active"`
	DepartmentID *int64    `json:"departmentId,omitempty" db:"department_id"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}
