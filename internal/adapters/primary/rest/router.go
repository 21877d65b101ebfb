package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/clubhub/clubhub-api/internal/adapters/primary/rest/handlers/auth"
	"github.com/clubhub/clubhub-api/internal/adapters/primary/rest/handlers/club"
	"github.com/clubhub/clubhub-api/internal/adapters/primary/rest/handlers/event"
	"github.com/clubhub/clubhub-api/internal/adapters/primary/rest/middlewares"
)

// Setup wires every route onto the engine. Reads on clubs and events are
// public; everything mutating sits behind the auth middleware.
func Setup(
	engine *gin.Engine,
	authHandler *auth.Handler,
	clubHandler *club.Handler,
	eventHandler *event.Handler,
	secret string,
) {
	engine.POST("/auth/register", authHandler.Register)
	engine.POST("/auth/login", authHandler.Login)

	authorized := engine.Group("/", middlewares.Auth(secret))
	authorized.GET("/auth/me", authHandler.Me)

	engine.GET("/clubs", clubHandler.GetAll)
	engine.GET("/clubs/:id", clubHandler.Get)
	engine.GET("/clubs/:id/detail", clubHandler.GetDetail)
	authorized.POST("/clubs", clubHandler.Create)
	authorized.PATCH("/clubs/:id", clubHandler.Patch)
	authorized.PUT("/clubs/:id", clubHandler.Put)
	authorized.DELETE("/clubs/:id", clubHandler.Delete)
	authorized.POST("/clubs/:id/join", clubHandler.Join)
	authorized.POST("/clubs/:id/leave", clubHandler.Leave)
	authorized.POST("/clubs/:id/members/:userId/approve", clubHandler.ApproveMember)
	authorized.POST("/clubs/:id/members/:userId/reject", clubHandler.RejectMember)

	engine.GET("/events", eventHandler.GetAll)
	engine.GET("/events/:id", eventHandler.Get)
	engine.GET("/events/:id/ics", eventHandler.ExportICS)
	engine.GET("/events/:id/qr", eventHandler.InviteQR)
	authorized.POST("/events", eventHandler.Create)
	authorized.POST("/events/:id/join", eventHandler.Join)
	authorized.POST("/events/:id/leave", eventHandler.Leave)
	authorized.GET("/events/:id/participants/export", eventHandler.ExportParticipants)
}
