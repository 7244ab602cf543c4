package services

import (
	"errors"
	"fmt"
	"time"

	socketio "github.com/googollee/go-socket.io"
	"github.com/orgchathq/orgchat-api/metrics"
	"github.com/orgchathq/orgchat-api/models"
	"github.com/orgchathq/orgchat-api/utils"
	"github.com/rs/zerolog/log"
)

// SocketContext is the per-connection state kept on each socket
type SocketContext struct {
	UserID uint64
}

// SocketsService is the real-time fan-out for chat rooms. Clients join a
// room over socket.io and receive every message persisted through the REST
// API. Delivery is best effort; the database rows are the source of truth.
type SocketsService struct {
	Server            *socketio.Server
	AuthTokensService *AuthTokensService
	AccountsService   *AccountsService
	ChatRoomsService  *ChatRoomsService
	MembersService    *MembersService
	roomMsgBuffers    *ChatBufferGroup
}

func (s *SocketsService) Setup() {

	// Create the recent-message buffers
	s.roomMsgBuffers = NewChatBufferGroup()

	// When a socket connects
	s.Server.OnConnect("/", func(conn socketio.Conn) error {
		log.Debug().
			Str("ip", utils.GetIpAddress(conn.RemoteHeader(), conn.RemoteAddr())).
			Msg("socket connected")
		metrics.SocketConnections.Inc()
		conn.SetContext(SocketContext{})
		return nil
	})

	// When a socket disconnects
	s.Server.OnDisconnect("/", func(conn socketio.Conn, reason string) {
		log.Debug().Str("reason", reason).Msg("socket disconnected")
		metrics.SocketConnections.Dec()
		conn.LeaveAll()
	})

	// Register all of the event handlers
	s.Server.OnEvent("/", "chatroom.join", s.OnChatRoomJoin)
	s.Server.OnEvent("/", "chatroom.leave", s.OnChatRoomLeave)

}

// roomName is the socket.io room identifier for a chat room
func roomName(roomID uint64) string {
	return fmt.Sprintf("chatroom_%d", roomID)
}

//====================================================================================================
// chatroom.join event handler
// Called when a client wants to subscribe to a chat room's messages
//====================================================================================================

type ChatRoomJoinMsg struct {
	Token      string `json:"token"`
	ChatRoomID uint64 `json:"chat_room_id"`
}

func (s *SocketsService) OnChatRoomJoin(conn socketio.Conn, data ChatRoomJoinMsg) error {

	// Resolve the session token to a member of the room's organization. The
	// socket carries no cookie, so the token rides on the join message.
	room, member, err := s.resolveRoomMember(data.Token, data.ChatRoomID)
	if err != nil {
		return err
	}

	// The access list gates the subscription, same as the REST reads
	if !HasChatAccess(room.Access, member.ID) {
		return errors.New("no access to this chat room")
	}

	// Remember the user on the connection and join the room
	conn.SetContext(SocketContext{UserID: member.UserID})
	conn.Join(roomName(room.ID))

	// Emit the buffered recent messages to the new subscriber
	for _, msg := range s.roomMsgBuffers.CopyMessages(room.ID) {
		conn.Emit("chat.message", msg)
	}

	return nil

}

//====================================================================================================
// chatroom.leave event handler
//====================================================================================================

type ChatRoomLeaveMsg struct {
	ChatRoomID uint64 `json:"chat_room_id"`
}

func (s *SocketsService) OnChatRoomLeave(conn socketio.Conn, data ChatRoomLeaveMsg) error {
	conn.Leave(roomName(data.ChatRoomID))
	return nil
}

// BroadcastMessage fans a freshly persisted message out to every subscriber
// of its room and records it in the replay buffer
func (s *SocketsService) BroadcastMessage(message *models.Message) {
	msg := &ChatMsg{
		ID:          message.ID,
		ChatRoomID:  message.ChatRoomID,
		Content:     message.Content,
		CreatedDate: message.CreatedDate.UTC().Format(time.RFC3339),
		SenderID:    message.SenderID,
	}
	if message.Sender != nil && message.Sender.User != nil {
		msg.SenderEmail = message.Sender.User.Email
		msg.SenderName = message.Sender.User.Name.String
	}
	s.roomMsgBuffers.PushMessage(message.ChatRoomID, msg)
	s.Server.BroadcastToRoom("/", roomName(message.ChatRoomID), "chat.message", msg)
	metrics.ChatMessagesTotal.Inc()
}

// resolveRoomMember verifies the session token and returns the chat room
// along with the caller's membership in the owning organization
func (s *SocketsService) resolveRoomMember(token string, roomID uint64) (*models.ChatRoom, *models.Member, error) {

	// Verify the session token
	userID, err := s.AuthTokensService.VerifyToken(token)
	if err != nil {
		return nil, nil, errors.New("invalid session")
	}

	// The token must still map to a live user
	user, err := s.AccountsService.GetUserByID(userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, errors.New("user not found")
	}

	// Get the chat room
	room, err := s.ChatRoomsService.GetByID(roomID)
	if err != nil {
		return nil, nil, err
	}
	if room == nil {
		return nil, nil, errors.New("chat room not found")
	}

	// The caller must be a member of the owning organization
	member, err := s.MembersService.GetByUserAndOrg(userID, room.OrganizationID)
	if err != nil {
		return nil, nil, err
	}
	if member == nil {
		return nil, nil, errors.New("not a member of this organization")
	}

	return room, member, nil

}
