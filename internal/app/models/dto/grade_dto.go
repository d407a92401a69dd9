package dto

// CreateGradeRequest represents grade creation data. The grading
// identity is taken from the authenticated actor, not the payload.
type CreateGradeRequest struct {
	StudentID  int64   `json:"studentId" binding:"required,gt=0"`
	GradeValue string  `json:"gradeValue" binding:"required"`
	Feedback   *string `json:"feedback"`
}

// UpdateGradeRequest represents grade update data; only provided
// fields are applied.
type UpdateGradeRequest struct {
	GradeValue *string `json:"gradeValue"`
	Feedback   *string `json:"feedback"`
	Finalize   *bool   `json:"finalize"`
}
