package models

// Course represents a course taught by a teacher within a department
type Course struct {
	ID           int64   `json:"id" db:"id"`
	Code         string  `json:"code" db:"code"`
	Name         string  `json:"name" db:"name"`
	Description  *string `json:"description,omitempty" db:"description"`
	DepartmentID int64   `json:"departmentId" db:"department_id"`
	TeacherID    int64   `json:"teacherId" db:"teacher_id"`
	Semester     *string `json:"semester,omitempty" db:"semester"`
	Credits      *int    `json:"credits,omitempty" db:"credits"`
}
