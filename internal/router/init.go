package router

import (
	"github.com/singhbetu188/medium-blog-api/internal/application"
	"github.com/singhbetu188/medium-blog-api/internal/container"
	pginfra "github.com/singhbetu188/medium-blog-api/internal/infrastructure/postgres"
	handlers "github.com/singhbetu188/medium-blog-api/internal/interface/http"
	"github.com/singhbetu188/medium-blog-api/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the
// router registry. Called once during application startup.
func InitModules(r *Registry) {
	logger := container.GetLogger()
	cfg := container.GetConfig()

	userRepo := pginfra.NewUserRepository(container.GetPGPool())
	userSvc := application.NewUserService(userRepo, container.GetJWT(), logger)
	userHandler := handlers.NewUserHandler(userSvc, logger)

	postRepo := pginfra.NewPostRepository(container.GetPGPool())
	postSvc := application.NewPostService(postRepo, container.GetRedis(), logger, cfg.PostCacheTTL)
	postHandler := handlers.NewPostHandler(postSvc, logger)

	r.Add(modules.NewUserModule(userHandler, container.GetJWT()))
	r.Add(modules.NewPostModule(postHandler, container.GetJWT()))
}
