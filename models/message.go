package models

import (
	"time"
)

// Message is a single chat message. The sender is the member record of the
// author within the owning organization, never a bare user id.
type Message struct {
	ID          uint64 `gorm:"primaryKey"`
	ChatRoomID  uint64 `gorm:"index"`
	ChatRoom    *ChatRoom
	SenderID    uint64
	Sender      *Member
	Content     string `gorm:"type:text"`
	CreatedDate time.Time
}
