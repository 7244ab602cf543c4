package hooks

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/orgchathq/orgchat-api/services"
)

type AuthLoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func AuthLogin(
	accountsService *services.AccountsService,
	authTokensService *services.AuthTokensService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the request body
		var req AuthLoginReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		// Find the user with the provided email and password. The same error
		// answers both an unknown email and a wrong password.
		user, err := accountsService.FindByLogin(req.Email, req.Password)
		if err != nil {
			internalError(c, err, "auth_login")
			return
		}
		if user == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
			return
		}

		// Issue the session token and set it as a cookie
		token, err := authTokensService.CreateToken(user.ID, time.Now())
		if err != nil {
			internalError(c, err, "auth_login")
			return
		}
		setSessionCookie(c, token)

		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"user":    serializeUser(user),
		})

	}
}
