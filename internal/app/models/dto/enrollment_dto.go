package dto

// CreateEnrollmentRequest represents enrollment creation data
type CreateEnrollmentRequest struct {
	StudentID int64 `json:"studentId" binding:"required,gt=0"`
	CourseID  int64 `json:"courseId" binding:"required,gt=0"`
}

// EnrollmentFilter holds optional list filters
type EnrollmentFilter struct {
	StudentID *int64
	CourseID  *int64
}
