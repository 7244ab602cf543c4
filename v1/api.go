package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/orgchathq/orgchat-api/services"
	"github.com/orgchathq/orgchat-api/v1/hooks"
	"github.com/orgchathq/orgchat-api/v1/middleware"
)

// Server is the API server instance
type Server struct {
	AccountsService      *services.AccountsService
	AuthTokensService    *services.AuthTokensService
	OrganizationsService *services.OrganizationsService
	MembersService       *services.MembersService
	ChatRoomsService     *services.ChatRoomsService
	MessagesService      *services.MessagesService
	SocketsService       *services.SocketsService
}

// Setup mounts the API server to the given group
func (s *Server) Setup(g *gin.RouterGroup) {

	// Resolve the session cookie for all routes
	g.Use(middleware.CheckAuth(s.AuthTokensService, s.AccountsService))

	// Register all of the public hooks that require no session
	s.setupPublicHooks(g)

	// Register session-protected hooks
	s.setupAuthenticatedHooks(g)

}

// setupPublicHooks mounts API hooks that are publicly accessible
func (s *Server) setupPublicHooks(g *gin.RouterGroup) {

	g.GET("/app/state", hooks.AppState())
	g.POST("/auth/register", hooks.AuthRegister(
		s.AccountsService,
		s.AuthTokensService,
	))
	g.POST("/auth/login", hooks.AuthLogin(
		s.AccountsService,
		s.AuthTokensService,
	))
	g.POST("/auth/logout", hooks.AuthLogout())

}

// setupAuthenticatedHooks mounts API hooks that require a valid session
func (s *Server) setupAuthenticatedHooks(g *gin.RouterGroup) {

	// Require a session for everything after this
	g.Use(middleware.RequireLogin())

	g.GET("/auth/whoami", hooks.AuthWhoAmI())

	// Organizations
	g.GET("/organizations", hooks.OrgsList(s.OrganizationsService))
	g.POST("/organizations", hooks.OrgsCreate(s.OrganizationsService))
	g.GET("/organizations/:orgId", hooks.OrgsGet(s.OrganizationsService))
	g.DELETE("/organizations/:orgId", hooks.OrgsDelete(s.OrganizationsService))

	// Members
	g.POST("/organizations/:orgId/members", hooks.MembersAdd(
		s.OrganizationsService,
		s.AccountsService,
		s.MembersService,
	))
	g.PATCH("/organizations/:orgId/members/:memberId", hooks.MembersUpdateRole(
		s.OrganizationsService,
		s.MembersService,
	))
	g.DELETE("/organizations/:orgId/members/:memberId", hooks.MembersRemove(
		s.OrganizationsService,
		s.MembersService,
	))

	// Chat rooms
	g.GET("/organizations/:orgId/chatrooms", hooks.ChatRoomsList(
		s.OrganizationsService,
		s.ChatRoomsService,
	))
	g.POST("/organizations/:orgId/chatrooms", hooks.ChatRoomsCreate(
		s.OrganizationsService,
		s.ChatRoomsService,
	))
	g.GET("/organizations/:orgId/chatrooms/:chatroomId", hooks.ChatRoomsGet(
		s.OrganizationsService,
		s.ChatRoomsService,
	))
	g.PUT("/organizations/:orgId/chatrooms/:chatroomId", hooks.ChatRoomsUpdate(
		s.OrganizationsService,
		s.ChatRoomsService,
	))
	g.DELETE("/organizations/:orgId/chatrooms/:chatroomId", hooks.ChatRoomsDelete(
		s.OrganizationsService,
		s.ChatRoomsService,
	))

	// Messages
	g.GET("/organizations/:orgId/chatrooms/:chatroomId/messages", hooks.MessagesList(
		s.ChatRoomsService,
		s.MembersService,
		s.MessagesService,
	))
	g.POST("/organizations/:orgId/chatrooms/:chatroomId/messages", hooks.MessagesPost(
		s.ChatRoomsService,
		s.MembersService,
		s.MessagesService,
		s.SocketsService,
	))
	g.PATCH("/organizations/:orgId/chatrooms/:chatroomId/messages/:messageId", hooks.MessagesUpdate(
		s.ChatRoomsService,
		s.MembersService,
		s.MessagesService,
	))
	g.DELETE("/organizations/:orgId/chatrooms/:chatroomId/messages/:messageId", hooks.MessagesDelete(
		s.ChatRoomsService,
		s.MembersService,
		s.MessagesService,
	))

}
