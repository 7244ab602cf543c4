package models

import (
	"time"
)

// Role is the set of roles a member can hold within an organization
type Role string

const (
	RoleOwner     Role = "OWNER"
	RoleModerator Role = "MODERATOR"
	RoleMember    Role = "MEMBER"
)

// ParseRole maps a raw string onto the closed role set
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleOwner, RoleModerator, RoleMember:
		return Role(s), true
	}
	return "", false
}

// Member joins a user to an organization with a role. The composite unique
// index guarantees at most one membership per (user, organization) pair.
type Member struct {
	ID             uint64 `gorm:"primaryKey"`
	UserID         uint64 `gorm:"uniqueIndex:idx_member_user_org"`
	User           *User
	OrganizationID uint64 `gorm:"uniqueIndex:idx_member_user_org"`
	Organization   *Organization
	Role           Role `gorm:"size:16"`
	CreatedDate    time.Time
}
