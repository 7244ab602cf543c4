package models

import (
	"time"
)

// Organization is a company or team profile. It is owned by a single user
// and can contain multiple members and chat rooms.
type Organization struct {
	ID          uint64 `gorm:"primaryKey"`
	Name        string
	OwnerID     uint64
	Owner       *User
	Members     []*Member   `gorm:"foreignKey:OrganizationID"`
	ChatRooms   []*ChatRoom `gorm:"foreignKey:OrganizationID"`
	CreatedDate time.Time
}
