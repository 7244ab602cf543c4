package models

import (
	"time"
)

// ChatAccess grants a member visibility into a chat room. Members without an
// access row cannot see the room, even when they belong to the organization
// that owns it.
type ChatAccess struct {
	ID          uint64 `gorm:"primaryKey"`
	ChatRoomID  uint64 `gorm:"uniqueIndex:idx_access_room_member"`
	ChatRoom    *ChatRoom
	MemberID    uint64 `gorm:"uniqueIndex:idx_access_room_member"`
	Member      *Member
	CreatedDate time.Time
}
