package domain

import "time"

type UserRole string

const (
	UserRoleMember UserRole = "member"
	UserRoleAdmin  UserRole = "admin"
)

func (r UserRole) Valid() bool {
	return r == UserRoleMember || r == UserRoleAdmin
}

type User struct {
	ID        int64
	Name      string
	Role      UserRole
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
