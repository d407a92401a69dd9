package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "student"
	RoleTA      RoleType = "ta"
	RoleTeacher RoleType = "teacher"
	RoleHOD     RoleType = "hod"
	RoleAdmin   RoleType = "admin"
)

// Valid reports whether the role is one of the known role values.
func (r RoleType) Valid() bool {
	switch r {
	case RoleStudent, RoleTA, RoleTeacher, RoleHOD, RoleAdmin:
		return true
	}
	return false
}

// CanTeach reports whether the role may be assigned as a course teacher.
func (r RoleType) CanTeach() bool {
	return r == RoleTeacher || r == RoleHOD
}

// BookingStatus defines the lifecycle state of a resource booking
type BookingStatus string

const (
	BookingPending  BookingStatus = "pending"
	BookingApproved BookingStatus = "approved"
	BookingRejected BookingStatus = "rejected"
)

// Valid reports whether the status is one of the known booking states.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingApproved, BookingRejected:
		return true
	}
	return false
}
