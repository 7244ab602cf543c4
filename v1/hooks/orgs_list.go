package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orgchathq/orgchat-api/services"
	"github.com/orgchathq/orgchat-api/v1/utils"
)

func OrgsList(organizationsService *services.OrganizationsService) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the user from the request
		user := utils.CtxGetUser(c)

		// Every membership of the caller, joined to its organization
		memberships, err := organizationsService.ListForUser(user.ID)
		if err != nil {
			internalError(c, err, "orgs_list")
			return
		}

		// Flatten to the organization annotated with the caller's role
		organizations := make([]gin.H, 0, len(memberships))
		for _, membership := range memberships {
			if membership.Organization == nil {
				continue
			}
			organizations = append(organizations, gin.H{
				"id":   membership.Organization.ID,
				"name": membership.Organization.Name,
				"role": membership.Role,
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"organizations": organizations,
		})

	}
}
