// Package rest is the JSON API served under /api/v1. Handlers run behind the
// net/http middleware chain, which has already resolved the bearer token
// into the request context.
package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/heartmarshall/agencydesk-backend/internal/transport/httperr"
)

// APIPrefix is the path prefix of every versioned endpoint.
const APIPrefix = "/api/v1"

// Handlers groups the handlers mounted by NewRouter.
type Handlers struct {
	Health   *HealthHandler
	Auth     *AuthHandler
	Clients  *ClientHandler
	Activity *ActivityHandler
}

// NewRouter builds the gin engine. Logging and panic recovery live in the
// outer middleware chain, so the engine is created bare.
func NewRouter(h Handlers) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, httperr.Body{Error: httperr.Detail{Code: httperr.CodeNotFound, Message: "no route for " + c.Request.Method + " " + c.Request.URL.Path}})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, httperr.Body{Error: httperr.Detail{Code: httperr.CodeValidation, Message: "method not allowed"}})
	})

	r.GET("/live", h.Health.Live)
	r.GET("/ready", h.Health.Ready)
	r.GET("/health", h.Health.Health)

	api := r.Group(APIPrefix)
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)

	authed := api.Group("", requireIdentity())
	authed.POST("/auth/logout", h.Auth.Logout)
	authed.GET("/me", h.Auth.Me)

	clients := authed.Group("/clients")
	clients.GET("", h.Clients.List)
	clients.POST("", h.Clients.Create)
	clients.GET("/status-summary", h.Clients.StatusSummary)
	clients.POST("/bulk-update", h.Clients.BulkUpdate)
	clients.POST("/bulk-delete", h.Clients.BulkDelete)
	clients.POST("/export", h.Clients.Export)
	clients.POST("/import", h.Clients.Import)
	clients.GET("/:id", h.Clients.Get)
	clients.PATCH("/:id", h.Clients.Update)
	clients.DELETE("/:id", h.Clients.Delete)
	clients.POST("/:id/notes", h.Clients.AddNote)

	authed.GET("/exports/*key", h.Clients.Download)
	authed.DELETE("/exports/*key", h.Clients.DeleteExport)
	authed.GET("/activity", h.Activity.Recent)

	return r
}
