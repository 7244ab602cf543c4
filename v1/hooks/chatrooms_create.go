package hooks

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orgchathq/orgchat-api/services"
	"github.com/orgchathq/orgchat-api/v1/utils"
)

type ChatRoomsCreateReq struct {
	Name      string   `json:"name"`
	MemberIDs []uint64 `json:"memberIds"`
}

func ChatRoomsCreate(
	organizationsService *services.OrganizationsService,
	chatRoomsService *services.ChatRoomsService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the user from the request
		user := utils.CtxGetUser(c)

		// Get the request body
		var req ChatRoomsCreateReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		// Any organization member may create rooms
		org := fetchOrgForMember(c, organizationsService, user.ID, "chatrooms_create")
		if org == nil {
			return
		}

		// Create the room and its access list atomically
		room, err := chatRoomsService.Create(org.ID, req.Name, req.MemberIDs)
		if err != nil {
			var invalidIDs *services.InvalidMemberIDsError
			switch {
			case errors.Is(err, services.ErrNameRequired):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: 'name' must be a non-empty string"})
			case errors.Is(err, services.ErrMembersRequired):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: 'memberIds' must be a non-empty array"})
			case errors.As(err, &invalidIDs):
				c.JSON(http.StatusBadRequest, gin.H{"error": "One or more member IDs are invalid: " + joinIDs(invalidIDs.IDs)})
			default:
				internalError(c, err, "chatrooms_create")
			}
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"chatRoom": serializeChatRoom(room, false),
		})

	}
}
