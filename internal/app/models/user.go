package models

import (
	"time"
)

// User defines an admin account of the placement office
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Username  string    `json:"username" db:"username" example:"tpo_admin"`
	Password  string    `json:"-" db:"password"` // bcrypt hash, never serialized
	Role      RoleType  `json:"role" db:"role" example:"tpo"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
}
