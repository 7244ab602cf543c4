package hooks

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orgchathq/orgchat-api/services"
	"github.com/orgchathq/orgchat-api/v1/utils"
)

type ChatRoomsUpdateReq struct {
	Name      string    `json:"name"`
	MemberIDs *[]uint64 `json:"memberIds"`
}

func ChatRoomsUpdate(
	organizationsService *services.OrganizationsService,
	chatRoomsService *services.ChatRoomsService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the user from the request
		user := utils.CtxGetUser(c)

		// Get the request body. The member list may be empty but must be
		// present: the update replaces the whole access list.
		var req ChatRoomsUpdateReq
		if err := c.ShouldBindJSON(&req); err != nil || req.MemberIDs == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: 'name' and 'memberIds' are required"})
			return
		}

		// Management rights are organization-wide, not access-list scoped
		org := fetchOrgForMember(c, organizationsService, user.ID, "chatrooms_update")
		if org == nil {
			return
		}

		// The room must exist within this organization
		room := fetchRoomInOrg(c, chatRoomsService, org.ID, "chatrooms_update")
		if room == nil {
			return
		}

		// Rename and replace the access list in one transaction
		updated, err := chatRoomsService.Update(room, req.Name, *req.MemberIDs)
		if err != nil {
			var invalidIDs *services.InvalidMemberIDsError
			switch {
			case errors.Is(err, services.ErrNameRequired):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: 'name' and 'memberIds' are required"})
			case errors.As(err, &invalidIDs):
				c.JSON(http.StatusBadRequest, gin.H{"error": "One or more member IDs are invalid: " + joinIDs(invalidIDs.IDs)})
			default:
				internalError(c, err, "chatrooms_update")
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"chatRoom": serializeChatRoom(updated, false),
		})

	}
}
