package models

import "time"

// DateLayout is the wire and storage format for dates of birth.
const DateLayout = "2006-01-02"

// User represents a registered account. The password is stored only as a
// bcrypt hash; email uniqueness is case-insensitive and enforced by the
// storage layer.
type User struct {
	ID           string    `json:"id"`           // UUID
	Email        string    `json:"email"`        // unique, case-insensitive
	PasswordHash string    `json:"-"`            // bcrypt hash, never serialized
	FullName     string    `json:"full_name"`    //
	DateOfBirth  time.Time `json:"date_of_birth"`
	CreatedAt    time.Time `json:"created_at"`
}

// Role names seeded at startup. "User" is assigned to every new account.
const (
	RoleAdmin  = "Admin"
	RoleUser   = "User"
	RoleDriver = "Driver"
)
