package dto

import "time"

// CreateResourceRequest represents resource creation data
type CreateResourceRequest struct {
	Name         string  `json:"name" binding:"required"`
	Type         string  `json:"type" binding:"required"`
	Location     *string `json:"location"`
	Capacity     *int    `json:"capacity" binding:"omitempty,gt=0"`
	DepartmentID *int64  `json:"departmentId"`
}

// UpdateResourceRequest represents resource update data; only provided
// fields are applied.
type UpdateResourceRequest struct {
	Name         *string `json:"name"`
	Type         *string `json:"type"`
	Location     *string `json:"location"`
	Capacity     *int    `json:"capacity" binding:"omitempty,gt=0"`
	DepartmentID *int64  `json:"departmentId"`
	IsActive     *bool   `json:"isActive"`
}

// CreateBookingRequest represents booking creation data. The booking
// identity is taken from the authenticated actor.
type CreateBookingRequest struct {
	ResourceID int64     `json:"resourceId" binding:"required,gt=0"`
	StartTime  time.Time `json:"startTime" binding:"required"`
	EndTime    time.Time `json:"endTime" binding:"required"`
	Purpose    *string   `json:"purpose"`
}

// UpdateBookingStatusRequest resolves a pending booking
type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

// BookingFilter holds optional list filters
type BookingFilter struct {
	ResourceID *int64
	Status     *string
	BookedByID *int64
}
