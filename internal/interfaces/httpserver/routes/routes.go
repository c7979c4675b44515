package routes

import (
	"github.com/gin-gonic/gin"

	"mamta-server/internal/interfaces/httpserver/handlers"
)

// Provider encapsulates route registration.
type Provider struct {
	handlers *handlers.Provider
}

// NewProvider builds the route registrar.
func NewProvider(handlerProvider *handlers.Provider) *Provider {
	return &Provider{
		handlers: handlerProvider,
	}
}

// Register attaches the API routes. The paths are the original front end
// contract and are kept at the root, unversioned.
func (r *Provider) Register(engine *gin.Engine) {
	engine.POST("/", r.handlers.Chat.Create)

	engine.POST("/upload-file", r.handlers.File.Upload)
	engine.GET("/list-files", r.handlers.File.List)

	engine.GET("/auth/google", r.handlers.Auth.Login)
	engine.GET("/auth/google/callback", r.handlers.Auth.Callback)
}
