package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orgchathq/orgchat-api/services"
	"github.com/orgchathq/orgchat-api/v1/utils"
)

func ChatRoomsList(
	organizationsService *services.OrganizationsService,
	chatRoomsService *services.ChatRoomsService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the user from the request
		user := utils.CtxGetUser(c)

		// Any organization member may see the room list
		org := fetchOrgForMember(c, organizationsService, user.ID, "chatrooms_list")
		if org == nil {
			return
		}

		// Rooms with access lists and messages eagerly loaded
		rooms, err := chatRoomsService.ListForOrg(org.ID)
		if err != nil {
			internalError(c, err, "chatrooms_list")
			return
		}

		out := make([]gin.H, 0, len(rooms))
		for _, room := range rooms {
			out = append(out, serializeChatRoom(room, true))
		}

		c.JSON(http.StatusOK, gin.H{
			"chatRooms": out,
		})

	}
}
