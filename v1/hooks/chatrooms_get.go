package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orgchathq/orgchat-api/services"
	"github.com/orgchathq/orgchat-api/v1/utils"
)

func ChatRoomsGet(
	organizationsService *services.OrganizationsService,
	chatRoomsService *services.ChatRoomsService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the user from the request
		user := utils.CtxGetUser(c)

		// Any organization member may inspect a room's settings
		org := fetchOrgForMember(c, organizationsService, user.ID, "chatrooms_get")
		if org == nil {
			return
		}

		// The room must exist within this organization
		room := fetchRoomInOrg(c, chatRoomsService, org.ID, "chatrooms_get")
		if room == nil {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"chatRoom": serializeChatRoom(room, false),
		})

	}
}
