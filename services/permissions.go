package services

import (
	"github.com/orgchathq/orgchat-api/models"
)

// Pure access-control decisions over already-fetched rows. Hooks load the
// rows, check existence first (404 wins over 403), then consult these.

// IsOrgMember reports whether the user holds a membership in the given
// member set
func IsOrgMember(members []*models.Member, userID uint64) bool {
	for _, member := range members {
		if member.UserID == userID {
			return true
		}
	}
	return false
}

// IsOrgOwner reports whether the user is the owner of the organization
func IsOrgOwner(org *models.Organization, userID uint64) bool {
	return org.OwnerID == userID
}

// HasChatAccess reports whether the member appears in the chat room's access
// list. Organization membership alone never grants chat access.
func HasChatAccess(accessList []*models.ChatAccess, memberID uint64) bool {
	for _, access := range accessList {
		if access.MemberID == memberID {
			return true
		}
	}
	return false
}
