package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/singhbetu188/medium-blog-api/internal/interface/http"
	"github.com/singhbetu188/medium-blog-api/internal/interface/middleware"
	"github.com/singhbetu188/medium-blog-api/pkg/helpers"
)

// PostModule wires post routes and the JWT gate.
// Public: GET /api/v1/posts, GET /api/v1/posts/:id
// Protected: POST /api/v1/posts, PUT /api/v1/posts
type PostModule struct {
	Handler *handlers.PostHandler
	JWT     *helpers.JWTManager
}

func NewPostModule(h *handlers.PostHandler, jwt *helpers.JWTManager) *PostModule {
	return &PostModule{Handler: h, JWT: jwt}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	rg.GET("/posts", m.Handler.List)
	rg.GET("/posts/:id", m.Handler.Get)

	// Mutations run behind the auth gate; the handler sees the acting user
	// id only through the context key the gate sets.
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.POST("/posts", m.Handler.Create)
		auth.PUT("/posts", m.Handler.Update)
	}
}
