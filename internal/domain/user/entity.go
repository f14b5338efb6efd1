package user

import "time"

// User is an account that can sign in to the admin dashboard.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	DisplayName  string
	Role         Role
	Department   *string
	ProfilePhoto *string
	GoogleID     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleHR         Role = "hr"
	RoleSupervisor Role = "supervisor"
)
