package dto

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Code         string  `json:"code" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Description  *string `json:"description"`
	Semester     *string `json:"semester"`
	Credits      *int    `json:"credits"`
	DepartmentID int64   `json:"departmentId" binding:"required,gt=0"`
	TeacherID    int64   `json:"teacherId" binding:"required,gt=0"`
}

// UpdateCourseRequest represents course update data; only provided
// fields are applied.
type UpdateCourseRequest struct {
	Code         *string `json:"code"`
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Semester     *string `json:"semester"`
	Credits      *int    `json:"credits"`
	DepartmentID *int64  `json:"departmentId"`
	TeacherID    *int64  `json:"teacherId"`
}

// CourseFilter holds optional list filters
type CourseFilter struct {
	DepartmentID *int64
	TeacherID    *int64
	Semester     *string
}
