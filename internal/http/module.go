// Package http provides HTTP server infrastructure including the Module interface
// that bounded contexts implement to mount their routes.
package http

import (
	"inquiry_portal_backend/platform/config"

	"github.com/gin-gonic/gin"
)

// Module is a bounded context with HTTP routes.
type Module interface {
	// Name identifies the module in logs.
	Name() string
	// RegisterRoutes mounts the module's routes using the shared groups in ctx.
	RegisterRoutes(ctx *RouterContext)
}

// RouterContext carries the groups and middleware modules mount onto.
type RouterContext struct {
	// Engine is the root engine.
	Engine *gin.Engine
	// V1 is /api/v1, rate limited but unauthenticated.
	V1 *gin.RouterGroup
	// Protected is V1 behind AuthMiddleware.
	Protected *gin.RouterGroup
	// Config lets modules build extra auth-scoped groups.
	Config config.JWTConfig
	// AuthMiddleware validates bearer access tokens.
	AuthMiddleware gin.HandlerFunc
}
