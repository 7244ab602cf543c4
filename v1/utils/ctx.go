package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orgchathq/orgchat-api/models"
)

const (
	ctxKeyUser       = "auth_user"
	ctxKeyAuthStatus = "auth_error_status"
	ctxKeyAuthError  = "auth_error_message"
)

// CtxSetUser stores the resolved session user on the request context
func CtxSetUser(c *gin.Context, user *models.User) {
	c.Set(ctxKeyUser, user)
}

// CtxGetUser gets the resolved session user, or nil when the request carries
// no valid session
func CtxGetUser(c *gin.Context) *models.User {
	v, ok := c.Get(ctxKeyUser)
	if !ok {
		return nil
	}
	user, ok := v.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// CtxSetAuthError records why identity resolution failed, so RequireLogin
// can answer with the precise status later
func CtxSetAuthError(c *gin.Context, status int, message string) {
	c.Set(ctxKeyAuthStatus, status)
	c.Set(ctxKeyAuthError, message)
}

// CtxGetAuthError returns the recorded identity resolution failure
func CtxGetAuthError(c *gin.Context) (int, string) {
	status := http.StatusBadRequest
	message := "Token cookie is missing"
	if v, ok := c.Get(ctxKeyAuthStatus); ok {
		if s, ok := v.(int); ok {
			status = s
		}
	}
	if v, ok := c.Get(ctxKeyAuthError); ok {
		if m, ok := v.(string); ok {
			message = m
		}
	}
	return status, message
}
