package hooks

import (
	"github.com/gin-gonic/gin"
	"github.com/orgchathq/orgchat-api/models"
)

func serializeUser(user *models.User) gin.H {
	if user == nil {
		return nil
	}
	var name interface{}
	if user.Name.Valid {
		name = user.Name.String
	}
	return gin.H{
		"id":        user.ID,
		"email":     user.Email,
		"name":      name,
		"createdAt": user.CreatedDate,
	}
}

func serializeMember(member *models.Member) gin.H {
	if member == nil {
		return nil
	}
	out := gin.H{
		"id":             member.ID,
		"userId":         member.UserID,
		"organizationId": member.OrganizationID,
		"role":           member.Role,
	}
	if member.User != nil {
		out["user"] = serializeUser(member.User)
	}
	return out
}

func serializeOrganization(org *models.Organization) gin.H {
	if org == nil {
		return nil
	}
	out := gin.H{
		"id":      org.ID,
		"name":    org.Name,
		"ownerId": org.OwnerID,
	}
	if org.Owner != nil {
		out["owner"] = serializeUser(org.Owner)
	}
	if org.Members != nil {
		members := make([]gin.H, 0, len(org.Members))
		for _, member := range org.Members {
			members = append(members, serializeMember(member))
		}
		out["members"] = members
	}
	return out
}

func serializeAccess(access *models.ChatAccess) gin.H {
	if access == nil {
		return nil
	}
	out := gin.H{
		"id":         access.ID,
		"chatRoomId": access.ChatRoomID,
		"memberId":   access.MemberID,
	}
	if access.Member != nil {
		out["member"] = serializeMember(access.Member)
	}
	return out
}

func serializeChatRoom(room *models.ChatRoom, withMessages bool) gin.H {
	if room == nil {
		return nil
	}
	accessList := make([]gin.H, 0, len(room.Access))
	for _, access := range room.Access {
		accessList = append(accessList, serializeAccess(access))
	}
	out := gin.H{
		"id":             room.ID,
		"organizationId": room.OrganizationID,
		"name":           room.Name,
		"access":         accessList,
	}
	if withMessages {
		messages := make([]gin.H, 0, len(room.Messages))
		for _, message := range room.Messages {
			messages = append(messages, serializeMessage(message))
		}
		out["messages"] = messages
	}
	return out
}

func serializeMessage(message *models.Message) gin.H {
	if message == nil {
		return nil
	}
	out := gin.H{
		"id":         message.ID,
		"chatRoomId": message.ChatRoomID,
		"content":    message.Content,
		"createdAt":  message.CreatedDate,
	}
	if message.Sender != nil {
		sender := gin.H{"id": message.Sender.ID}
		if message.Sender.User != nil {
			sender["user"] = serializeUser(message.Sender.User)
		}
		out["sender"] = sender
	}
	return out
}
