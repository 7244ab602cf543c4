package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orgchathq/orgchat-api/models"
	"github.com/orgchathq/orgchat-api/services"
	"github.com/orgchathq/orgchat-api/v1/utils"
)

func MessagesList(
	chatRoomsService *services.ChatRoomsService,
	membersService *services.MembersService,
	messagesService *services.MessagesService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the user from the request
		user := utils.CtxGetUser(c)

		// Reading messages requires a seat on the room's access list
		room, _ := fetchRoomForAccess(c, chatRoomsService, membersService, user.ID, "messages_list")
		if room == nil {
			return
		}

		// Messages in ascending creation order, senders resolved
		messages, err := messagesService.List(room.ID)
		if err != nil {
			internalError(c, err, "messages_list")
			return
		}

		out := make([]gin.H, 0, len(messages))
		for _, message := range messages {
			out = append(out, serializeMessage(message))
		}

		c.JSON(http.StatusOK, gin.H{
			"messages": out,
		})

	}
}

// fetchRoomForAccess loads the room from the path, resolves the caller's
// membership in the owning organization, and enforces the room's access
// list. Existence failures answer 404 before any 403.
func fetchRoomForAccess(
	c *gin.Context,
	chatRoomsService *services.ChatRoomsService,
	membersService *services.MembersService,
	userID uint64,
	hook string,
) (*models.ChatRoom, *models.Member) {

	orgID, ok := paramID(c, "orgId")
	if !ok {
		return nil, nil
	}
	room := fetchRoomInOrg(c, chatRoomsService, orgID, hook)
	if room == nil {
		return nil, nil
	}

	// The caller must be a member of the owning organization
	member, err := membersService.GetByUserAndOrg(userID, orgID)
	if err != nil {
		internalError(c, err, hook)
		return nil, nil
	}
	if member == nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not a member of this organization"})
		return nil, nil
	}

	// Organization membership is not enough: the access list decides
	if !services.HasChatAccess(room.Access, member.ID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have access to this chat room"})
		return nil, nil
	}

	return room, member

}
