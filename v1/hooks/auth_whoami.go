package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orgchathq/orgchat-api/v1/utils"
)

func AuthWhoAmI() gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the user from the request
		user := utils.CtxGetUser(c)

		// Return the current session's user
		c.JSON(http.StatusOK, gin.H{
			"user": serializeUser(user),
		})

	}
}
