package services

import "sync"

// ChatMsg is the fan-out payload for a single chat message
type ChatMsg struct {
	ID          uint64 `json:"id"`
	ChatRoomID  uint64 `json:"chat_room_id"`
	Content     string `json:"content"`
	CreatedDate string `json:"created_at"`
	SenderID    uint64 `json:"sender_id"`
	SenderEmail string `json:"sender_email"`
	SenderName  string `json:"sender_name"`
}

// ChatMessageBuffer holds the most recent messages of a single room, so new
// subscribers don't join a completely empty screen
type ChatMessageBuffer struct {
	MaxLength int
	items     []*ChatMsg
}

func (buf *ChatMessageBuffer) Push(msg *ChatMsg) {

	// If there is still room under the max, add it
	if len(buf.items) < buf.MaxLength {
		buf.items = append(buf.items, msg)
		return
	}

	// Move everything over one space and insert at the end
	for i := 1; i < len(buf.items); i++ {
		buf.items[i-1] = buf.items[i]
	}
	buf.items[len(buf.items)-1] = msg

}

func (buf *ChatMessageBuffer) GetCopy() []*ChatMsg {
	items := make([]*ChatMsg, len(buf.items))
	copy(items, buf.items)
	return items
}

// ChatBufferGroup keeps one bounded buffer per chat room
type ChatBufferGroup struct {
	roomBuffers    map[uint64]*ChatMessageBuffer
	roomBuffersMut sync.RWMutex
}

func NewChatBufferGroup() *ChatBufferGroup {
	return &ChatBufferGroup{
		roomBuffers: map[uint64]*ChatMessageBuffer{},
	}
}

func (g *ChatBufferGroup) PushMessage(roomID uint64, msg *ChatMsg) {

	// Lock on the buffers
	g.roomBuffersMut.Lock()
	defer g.roomBuffersMut.Unlock()

	// Get the buffer for this room, creating it on first use
	buf, ok := g.roomBuffers[roomID]
	if !ok {
		buf = &ChatMessageBuffer{
			MaxLength: 25,
		}
		g.roomBuffers[roomID] = buf
	}

	// Push the message
	buf.Push(msg)

}

func (g *ChatBufferGroup) CopyMessages(roomID uint64) []*ChatMsg {

	// Lock on the buffers with readonly access
	g.roomBuffersMut.RLock()
	defer g.roomBuffersMut.RUnlock()

	// Get the buffer for this room
	buf, ok := g.roomBuffers[roomID]
	if !ok {
		return nil
	}

	// Copy the values from the buffer
	return buf.GetCopy()

}
