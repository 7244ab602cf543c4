package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orgchathq/orgchat-api/services"
	"github.com/orgchathq/orgchat-api/v1/utils"
)

func MembersRemove(
	organizationsService *services.OrganizationsService,
	membersService *services.MembersService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the user from the request
		user := utils.CtxGetUser(c)

		// Only the owner may manage membership
		org := fetchOrgForOwner(c, organizationsService, user.ID, "members_remove")
		if org == nil {
			return
		}

		// The member must exist within this organization
		memberID, ok := paramID(c, "memberId")
		if !ok {
			return
		}
		member, err := membersService.GetByID(memberID)
		if err != nil {
			internalError(c, err, "members_remove")
			return
		}
		if member == nil || member.OrganizationID != org.ID {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
			return
		}

		// Remove the member and every chat access row it holds
		if err := membersService.Remove(member); err != nil {
			internalError(c, err, "members_remove")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Member deleted successfully",
		})

	}
}
