package model

import "time"

// User roles. Anything outside this set collapses to RoleUser on signup.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents a registered account in the system.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         string    `json:"role" gorm:"size:50;default:'user'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidRole reports whether role is one of the allowed values.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}
