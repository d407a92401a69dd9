package models

import "time"

// Assignment represents coursework issued for a course
type Assignment struct {
	ID          int64      `json:"id" db:"id"`
	CourseID    int64      `json:"courseId" db:"course_id"`
	Title       string     `json:"title" db:"title"`
	Description *string    `json:"description,omitempty" db:"description"`
	DueDate     *time.Time `json:"dueDate,omitempty" db:"due_date"`
}
