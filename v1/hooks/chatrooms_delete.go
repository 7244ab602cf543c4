package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orgchathq/orgchat-api/services"
	"github.com/orgchathq/orgchat-api/v1/utils"
)

func ChatRoomsDelete(
	organizationsService *services.OrganizationsService,
	chatRoomsService *services.ChatRoomsService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the user from the request
		user := utils.CtxGetUser(c)

		// Management rights are organization-wide, not access-list scoped
		org := fetchOrgForMember(c, organizationsService, user.ID, "chatrooms_delete")
		if org == nil {
			return
		}

		// The room must exist within this organization
		room := fetchRoomInOrg(c, chatRoomsService, org.ID, "chatrooms_delete")
		if room == nil {
			return
		}

		// Cascade through access rows and messages
		if err := chatRoomsService.Delete(room); err != nil {
			internalError(c, err, "chatrooms_delete")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Chat room deleted successfully",
		})

	}
}
