package user

import "time"

type Role string

const (
	RoleAdmin      Role = "admin"      // Full access, including deletes
	RoleSupervisor Role = "supervisor" // Field supervisor, manages day to day records
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleSupervisor
}

type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user has full access
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
