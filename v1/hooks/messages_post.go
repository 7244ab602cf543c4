package hooks

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orgchathq/orgchat-api/services"
	"github.com/orgchathq/orgchat-api/v1/utils"
)

type MessagesPostReq struct {
	Content string `json:"content"`
}

func MessagesPost(
	chatRoomsService *services.ChatRoomsService,
	membersService *services.MembersService,
	messagesService *services.MessagesService,
	socketsService *services.SocketsService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the user from the request. The sender is always the session
		// user's own membership, never a client-supplied id.
		user := utils.CtxGetUser(c)

		// Get the request body
		var req MessagesPostReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		// Posting requires a seat on the room's access list
		room, member := fetchRoomForAccess(c, chatRoomsService, membersService, user.ID, "messages_post")
		if room == nil {
			return
		}

		// Insert the message with a server-assigned timestamp
		message, err := messagesService.Post(room.ID, member.ID, req.Content)
		if err != nil {
			if errors.Is(err, services.ErrContentRequired) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Message content is required"})
				return
			}
			internalError(c, err, "messages_post")
			return
		}

		// Fan the message out to live subscribers, best effort
		if socketsService != nil {
			socketsService.BroadcastMessage(message)
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": serializeMessage(message),
		})

	}
}
