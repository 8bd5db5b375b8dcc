package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/singhbetu188/medium-blog-api/internal/interface/http"
	"github.com/singhbetu188/medium-blog-api/internal/interface/middleware"
	"github.com/singhbetu188/medium-blog-api/pkg/helpers"
)

// UserModule wires the account routes.
// Public: POST /api/v1/signup, POST /api/v1/login
// Protected: GET /api/v1/profile
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.POST("/signup", m.Handler.Signup)
	rg.POST("/login", m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.GET("/profile", m.Handler.Profile)
	}
}
