package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orgchathq/orgchat-api/v1/middleware"
)

func AuthLogout() gin.HandlerFunc {
	return func(c *gin.Context) {

		// Clear the session cookie unconditionally
		c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", true, true)

		c.JSON(http.StatusOK, gin.H{
			"message": "Logout successful",
		})

	}
}
