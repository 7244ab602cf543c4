package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orgchathq/orgchat-api/services"
	"github.com/orgchathq/orgchat-api/v1/utils"
)

func OrgsDelete(organizationsService *services.OrganizationsService) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the user from the request
		user := utils.CtxGetUser(c)

		// Only the owner may delete the organization
		org := fetchOrgForOwner(c, organizationsService, user.ID, "orgs_delete")
		if org == nil {
			return
		}

		// Cascade through rooms, access rows, messages, and members
		if err := organizationsService.Delete(org.ID); err != nil {
			internalError(c, err, "orgs_delete")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Organization deleted successfully",
		})

	}
}
