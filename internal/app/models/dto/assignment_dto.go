package dto

import "time"

// CreateAssignmentRequest represents assignment creation data
type CreateAssignmentRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
}

// UpdateAssignmentRequest represents assignment update data; only
// provided fields are applied.
type UpdateAssignmentRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
}
