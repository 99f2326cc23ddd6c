package models

import "time"

type User struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Mobile          string     `json:"mobile"`
	PasswordHash    string     `json:"-"`
	Role            string     `json:"role"`
	SignupMethod    string     `json:"signupMethod"`
	LastLoginAt     *time.Time `json:"lastLoginAt,omitempty"`
	LastLoginDevice string     `json:"lastLoginDevice,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
