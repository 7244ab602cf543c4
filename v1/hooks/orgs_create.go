package hooks

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orgchathq/orgchat-api/services"
	"github.com/orgchathq/orgchat-api/v1/utils"
)

type OrgsCreateReq struct {
	Name string `json:"name"`
}

func OrgsCreate(organizationsService *services.OrganizationsService) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the user from the request
		user := utils.CtxGetUser(c)

		// Get the request body
		var req OrgsCreateReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		// Create the organization along with its owner membership
		org, err := organizationsService.Create(user.ID, req.Name)
		if err != nil {
			if errors.Is(err, services.ErrNameRequired) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Organization name is required"})
				return
			}
			internalError(c, err, "orgs_create")
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"organization": serializeOrganization(org),
		})

	}
}
