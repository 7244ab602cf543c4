package hooks

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orgchathq/orgchat-api/models"
	"github.com/orgchathq/orgchat-api/services"
	"github.com/orgchathq/orgchat-api/v1/utils"
)

type MessagesUpdateReq struct {
	Content string `json:"content"`
}

func MessagesUpdate(
	chatRoomsService *services.ChatRoomsService,
	membersService *services.MembersService,
	messagesService *services.MessagesService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the user from the request
		user := utils.CtxGetUser(c)

		// Get the request body
		var req MessagesUpdateReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		// Only the author may edit their message
		message := fetchOwnMessage(c, chatRoomsService, membersService, messagesService, user.ID, "messages_update")
		if message == nil {
			return
		}

		// Edit the content; sender and room are immutable
		if err := messagesService.UpdateContent(message, req.Content); err != nil {
			if errors.Is(err, services.ErrContentRequired) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Message content is required"})
				return
			}
			internalError(c, err, "messages_update")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": serializeMessage(message),
		})

	}
}

func MessagesDelete(
	chatRoomsService *services.ChatRoomsService,
	membersService *services.MembersService,
	messagesService *services.MessagesService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the user from the request
		user := utils.CtxGetUser(c)

		// Only the author may delete their message
		message := fetchOwnMessage(c, chatRoomsService, membersService, messagesService, user.ID, "messages_delete")
		if message == nil {
			return
		}

		if err := messagesService.Delete(message); err != nil {
			internalError(c, err, "messages_delete")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Message deleted successfully",
		})

	}
}

// fetchOwnMessage resolves the message from the path and verifies the caller
// authored it, on top of the room access checks
func fetchOwnMessage(
	c *gin.Context,
	chatRoomsService *services.ChatRoomsService,
	membersService *services.MembersService,
	messagesService *services.MessagesService,
	userID uint64,
	hook string,
) *models.Message {

	room, member := fetchRoomForAccess(c, chatRoomsService, membersService, userID, hook)
	if room == nil {
		return nil
	}

	messageID, ok := paramID(c, "messageId")
	if !ok {
		return nil
	}
	message, err := messagesService.GetByID(messageID)
	if err != nil {
		internalError(c, err, hook)
		return nil
	}
	if message == nil || message.ChatRoomID != room.ID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return nil
	}
	if message.SenderID != member.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not the sender of this message"})
		return nil
	}
	return message

}
