package models

import "time"

// Attendance records presence of a student in a course on a given day.
// Date carries only the calendar day, Period an optional slot within it.
type Attendance struct {
	ID         int64     `json:"id" db:"id"`
	CourseID   int64     `json:"courseId" db:"course_id"`
	StudentID  int64     `json:"studentId" db:"student_id"`
	Date       time.Time `json:"date" db:"date"`
	Status     string    `json:"status" db:"status"` // "present", "absent", ...
	MarkedByID int64     `json:"markedById" db:"marked_by_id"`
	Period     *string   `json:"period,omitempty" db:"period"`
}
