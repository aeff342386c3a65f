package model

import "time"

// User roles. Only teachers may upload documents.
const (
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// User represents an account that can authenticate against the API.
// PasswordHash is never serialized.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// IsValidRole reports whether role is one of the known account roles.
func IsValidRole(role string) bool {
	return role == RoleTeacher || role == RoleStudent
}
