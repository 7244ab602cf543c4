package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orgchathq/orgchat-api/models"
	"github.com/orgchathq/orgchat-api/services"
	"github.com/orgchathq/orgchat-api/v1/utils"
)

type MembersUpdateRoleReq struct {
	Role string `json:"role"`
}

func MembersUpdateRole(
	organizationsService *services.OrganizationsService,
	membersService *services.MembersService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the user from the request
		user := utils.CtxGetUser(c)

		// Get the request body
		var req MembersUpdateRoleReq
		if err := c.ShouldBindJSON(&req); err != nil || req.Role == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Role is required"})
			return
		}
		role, ok := models.ParseRole(req.Role)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
			return
		}

		// Only the owner may manage membership
		org := fetchOrgForOwner(c, organizationsService, user.ID, "members_update_role")
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
			internalError(c, err, "members_update_role")
			return
		}
		if member == nil || member.OrganizationID != org.ID {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
			return
		}

		// Update the role
		if err := membersService.UpdateRole(member, role); err != nil {
			internalError(c, err, "members_update_role")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"member": serializeMember(member),
		})

	}
}
