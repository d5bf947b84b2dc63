package domain

import "time"

// Role enumerates the two kinds of portal accounts.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Valid reports whether the role is a known value.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleAdmin
}

// Account is the domain model for portal members.
type Account struct {
	ID           string
	Name         string
	Email        string
	CampusID     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the account may manage complaints.
func (a *Account) IsAdmin() bool {
	return a != nil && a.Role == RoleAdmin
}
