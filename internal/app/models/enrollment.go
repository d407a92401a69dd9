package models

import "time"

// Enrollment links a student to a course. The (student_id, course_id)
// pair is unique at the storage layer.
type Enrollment struct {
	ID        int64     `json:"id" db:"id"`
	StudentID int64     `json:"studentId" db:"student_id"`
	CourseID  int64     `json:"courseId" db:"course_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
