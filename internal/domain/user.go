package domain

import "time"

// Role gates access to municipal endpoints.
type Role string

const (
	RolePublic    Role = "public"
	RoleMunicipal Role = "municipal"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RolePublic || r == RoleMunicipal
}

// User is the domain model for registered citizens and municipal staff.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
