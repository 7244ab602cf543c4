package models

import (
	"time"
)

// ChatRoom represents a single chat room within an organization, with its
// own access list and message history
type ChatRoom struct {
	ID             uint64 `gorm:"primaryKey"`
	OrganizationID uint64
	Organization   *Organization
	Name           string
	Access         []*ChatAccess `gorm:"foreignKey:ChatRoomID"`
	Messages       []*Message    `gorm:"foreignKey:ChatRoomID"`
	CreatedDate    time.Time
}
