package hooks

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/orgchathq/orgchat-api/models"
	"github.com/orgchathq/orgchat-api/services"
	"github.com/orgchathq/orgchat-api/v1/utils"
)

type MembersAddReq struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

func MembersAdd(
	organizationsService *services.OrganizationsService,
	accountsService *services.AccountsService,
	membersService *services.MembersService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the user from the request
		user := utils.CtxGetUser(c)

		// Get the request body
		var req MembersAddReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		if strings.TrimSpace(req.Email) == "" || req.Role == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and role are required"})
			return
		}
		role, ok := models.ParseRole(req.Role)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
			return
		}

		// Only the owner may manage membership
		org := fetchOrgForOwner(c, organizationsService, user.ID, "members_add")
		if org == nil {
			return
		}

		// The email must resolve to an existing user
		userToAdd, err := accountsService.GetUserByEmail(strings.TrimSpace(strings.ToLower(req.Email)))
		if err != nil {
			internalError(c, err, "members_add")
			return
		}
		if userToAdd == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		// Add the member. Duplicates, including the concurrent kind resolved
		// by the unique index, come back as ErrDuplicateMember.
		member, err := membersService.Add(org.ID, userToAdd.ID, role)
		if err != nil {
			if errors.Is(err, services.ErrDuplicateMember) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "User is already a member of this organization"})
				return
			}
			internalError(c, err, "members_add")
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"member": serializeMember(member),
		})

	}
}
