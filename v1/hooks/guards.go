package hooks

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/orgchathq/orgchat-api/models"
	"github.com/orgchathq/orgchat-api/services"
	"github.com/rs/zerolog/log"
)

// paramID parses a numeric path parameter, answering 400 on garbage
func paramID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " parameter"})
		return 0, false
	}
	return id, true
}

// internalError logs the failure server-side and answers with a generic 500.
// Details never reach the client.
func internalError(c *gin.Context, err error, hook string) {
	log.Error().
		Err(err).
		Str("hook", hook).
		Str("path", c.Request.URL.Path).
		Msg("internal error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
}

// fetchOrgForMember loads the organization from the :orgId parameter and
// verifies the caller belongs to it. Existence is checked before
// authorization, so a missing organization is 404 and an outsider gets 403.
// On failure the response has been written and nil is returned.
func fetchOrgForMember(
	c *gin.Context,
	organizationsService *services.OrganizationsService,
	userID uint64,
	hook string,
) *models.Organization {
	orgID, ok := paramID(c, "orgId")
	if !ok {
		return nil
	}
	org, err := organizationsService.GetWithMembers(orgID)
	if err != nil {
		internalError(c, err, hook)
		return nil
	}
	if org == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Organization not found"})
		return nil
	}
	if !services.IsOrgMember(org.Members, userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not a member of this organization"})
		return nil
	}
	return org
}

// fetchRoomInOrg loads the chat room from the :chatroomId parameter and
// checks it belongs to the given organization, answering 404 otherwise
func fetchRoomInOrg(
	c *gin.Context,
	chatRoomsService *services.ChatRoomsService,
	orgID uint64,
	hook string,
) *models.ChatRoom {
	roomID, ok := paramID(c, "chatroomId")
	if !ok {
		return nil
	}
	room, err := chatRoomsService.GetByID(roomID)
	if err != nil {
		internalError(c, err, hook)
		return nil
	}
	if room == nil || room.OrganizationID != orgID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chat room not found"})
		return nil
	}
	return room
}

// joinIDs renders ids as a comma-separated list for error messages
func joinIDs(ids []uint64) string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = strconv.FormatUint(id, 10)
	}
	return strings.Join(out, ", ")
}

// fetchOrgForOwner is fetchOrgForMember with the bar raised to ownership
func fetchOrgForOwner(
	c *gin.Context,
	organizationsService *services.OrganizationsService,
	userID uint64,
	hook string,
) *models.Organization {
	orgID, ok := paramID(c, "orgId")
	if !ok {
		return nil
	}
	org, err := organizationsService.GetWithMembers(orgID)
	if err != nil {
		internalError(c, err, hook)
		return nil
	}
	if org == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Organization not found"})
		return nil
	}
	if !services.IsOrgOwner(org, userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not the owner of this organization"})
		return nil
	}
	return org
}
