package hooks

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/orgchathq/orgchat-api/services"
	"github.com/orgchathq/orgchat-api/v1/middleware"
)

type AuthRegisterReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func AuthRegister(
	accountsService *services.AccountsService,
	authTokensService *services.AuthTokensService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the request body
		var req AuthRegisterReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		if strings.TrimSpace(req.Email) == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
			return
		}

		// Create the user
		user, err := accountsService.Register(req.Email, req.Password, req.Name)
		if err != nil {
			if errors.Is(err, services.ErrEmailTaken) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
				return
			}
			internalError(c, err, "auth_register")
			return
		}

		// Log the new user straight in
		token, err := authTokensService.CreateToken(user.ID, time.Now())
		if err != nil {
			internalError(c, err, "auth_register")
			return
		}
		setSessionCookie(c, token)

		c.JSON(http.StatusCreated, gin.H{
			"message": "User registered successfully",
			"user":    serializeUser(user),
		})

	}
}

// setSessionCookie writes the http-only, secure session cookie
func setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(
		middleware.SessionCookieName,
		token,
		int(services.SessionTokenTTL.Seconds()),
		"/",
		"",
		true,
		true,
	)
}
