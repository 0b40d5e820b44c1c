package domain

import "time"

type Team struct {
	ID        int64
	Name      string
	Members   []Membership
	CreatedAt time.Time
	UpdatedAt *time.Time
}

type MembershipRole string

const (
	MembershipRoleOwner  MembershipRole = "OWNER"
	MembershipRoleMember MembershipRole = "MEMBER"
)

// Membership связывает пользователя с командой и несет его роль
type Membership struct {
	ID        int64
	TeamID    int64
	UserID    int64
	Role      MembershipRole
	CreatedAt time.Time
}

func (m *Membership) IsOwner() bool {
	return m != nil && m.Role == MembershipRoleOwner
}
