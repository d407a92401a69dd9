package models

import "time"

// Grade records the result a student received for an assignment
type Grade struct {
	ID           int64     `json:"id" db:"id"`
	AssignmentID int64     `json:"assignmentId" db:"assignment_id"`
	StudentID    int64     `json:"studentId" db:"student_id"`
	GradedByID   int64     `json:"gradedById" db:"graded_by_id"`
	GradeValue   string    `json:"gradeValue" db:"grade_value"` // e.g. "A", "B+", "85"
	Feedback     *string   `json:"feedback,omitempty" db:"feedback"`
	IsFinalized  bool      `json:"isFinalized" db:"is_finalized"`
	GradedAt     time.Time `json:"gradedAt" db:"graded_at"`
}
