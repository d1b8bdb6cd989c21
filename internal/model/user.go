package model

import "time"

// Roles assignable to a user account.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User represents a learner or administrator account.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         string    `json:"role" gorm:"size:50;default:'USER'"`
	UserScore    int       `json:"user_score" gorm:"default:0"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
