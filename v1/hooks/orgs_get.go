package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orgchathq/orgchat-api/services"
	"github.com/orgchathq/orgchat-api/v1/utils"
)

func OrgsGet(organizationsService *services.OrganizationsService) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the user from the request
		user := utils.CtxGetUser(c)

		// Load the organization and gate on membership
		org := fetchOrgForMember(c, organizationsService, user.ID, "orgs_get")
		if org == nil {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"organization": serializeOrganization(org),
		})

	}
}
