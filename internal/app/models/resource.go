package models

import "time"

// Resource represents a bookable facility such as a lab or classroom
type Resource struct {
	ID           int64   `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	Type         string  `json:"type" db:"type"` // e.g. "lab", "classroom"
	Location     *string `json:"location,omitempty" db:"location"`
	Capacity     *int    `json:"capacity,omitempty" db:"capacity"`
	DepartmentID *int64  `json:"departmentId,omitempty" db:"department_id"`
	IsActive     bool    `json:"isActive" db:"is_active"`
}

// Booking reserves a resource for a time range. Status starts as pending
// and is resolved to approved or rejected by an admin.
type Booking struct {
	ID         int64         `json:"id" db:"id"`
	ResourceID int64         `json:"resourceId" db:"resource_id"`
	BookedByID int64         `json:"bookedById" db:"booked_by_id"`
	StartTime  time.Time     `json:"startTime" db:"start_time"`
	EndTime    time.Time     `json:"endTime" db:"end_time"`
	Purpose    *string       `json:"purpose,omitempty" db:"purpose"`
	Status     BookingStatus `json:"status" db:"status"`
}
