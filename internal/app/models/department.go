package models

import "time"

// Department represents an academic department
type Department struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Code      string    `json:"code" db:"code"`
	HodUserID *int64    `json:"hodUserId,omitempty" db:"hod_user_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
