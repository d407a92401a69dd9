package dto

// CreateDepartmentRequest represents department creation data
type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required"`
	Code string `json:"code" binding:"required"`
}

// UpdateDepartmentRequest represents department update data; only
// provided fields are applied.
type UpdateDepartmentRequest struct {
	Name      *string `json:"name"`
	Code      *string `json:"code"`
	HodUserID *int64  `json:"hodUserId"`
}
