package dto

// MarkAttendanceRequest represents attendance marking data. The marking
// identity is taken from the authenticated actor, not the payload.
// Date uses a plain calendar date, e.g. "2026-03-15".
type MarkAttendanceRequest struct {
	StudentID int64   `json:"studentId" binding:"required,gt=0"`
	Date      string  `json:"date" binding:"required,datetime=2006-01-02"`
	Status    string  `json:"status" binding:"required,oneof=present absent late excused"`
	Period    *string `json:"period"`
}

// AttendanceFilter holds optional list filters
type AttendanceFilter struct {
	StudentID *int64
	Date      *string
}
