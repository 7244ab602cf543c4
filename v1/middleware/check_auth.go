package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orgchathq/orgchat-api/services"
	"github.com/orgchathq/orgchat-api/v1/utils"
	"github.com/rs/zerolog/log"
)

// SessionCookieName is the cookie carrying the signed session token
const SessionCookieName = "token"

// CheckAuth resolves the session cookie to a user record and stores it on
// the request context. It never aborts: public routes run behind it too, and
// RequireLogin enforces the result where a session is mandatory.
//
// The resolution ladder: missing cookie is 400, a bad or expired token is
// 401, and a token whose user no longer exists is 404.
func CheckAuth(
	authTokensService *services.AuthTokensService,
	accountsService *services.AccountsService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Read the session cookie
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			utils.CtxSetAuthError(c, http.StatusBadRequest, "Token cookie is missing")
			c.Next()
			return
		}

		// Verify the token signature and expiry
		userID, err := authTokensService.VerifyToken(token)
		if err != nil {
			utils.CtxSetAuthError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Next()
			return
		}

		// The embedded id must still map to a user (handles deleted accounts)
		user, err := accountsService.GetUserByID(userID)
		if err != nil {
			log.Error().Err(err).Uint64("user_id", userID).Msg("check auth: load user")
			utils.CtxSetAuthError(c, http.StatusInternalServerError, "Something went wrong")
			c.Next()
			return
		}
		if user == nil {
			utils.CtxSetAuthError(c, http.StatusNotFound, "User not found")
			c.Next()
			return
		}

		// Store the user on the request
		utils.CtxSetUser(c, user)
		c.Next()

	}
}

// RequireLogin aborts any request that did not resolve to a user, using the
// status and message recorded by CheckAuth
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if utils.CtxGetUser(c) == nil {
			status, message := utils.CtxGetAuthError(c)
			c.AbortWithStatusJSON(status, gin.H{"error": message})
			return
		}
		c.Next()
	}
}
