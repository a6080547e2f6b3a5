package domain

import "time"

// Role is the coarse authorization tier for an account.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether the role is a known tier.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is the domain model for registered accounts. Records are
// immutable after registration; there are no update or delete flows.
type User struct {
	ID           string
	Name         string
	Surname      string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
