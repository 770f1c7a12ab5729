package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/riftcup/gateway/config"
	"github.com/riftcup/gateway/internal/backend"
	"github.com/riftcup/gateway/internal/roster"
	"github.com/riftcup/gateway/internal/schedule"
	"github.com/riftcup/gateway/internal/session"
	"github.com/riftcup/gateway/internal/settings"
	"github.com/riftcup/gateway/internal/superadmin"
)

func SetupRoutes(client *backend.Client, appConfig *config.Config) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if appConfig.App.FrontendURL != "" {
		corsConfig.AllowOrigins = []string{appConfig.App.FrontendURL}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")

	authGroup := api.Group("/auth")
	session.RegisterSessionRoutes(authGroup, client, appConfig)

	roster.RegisterRosterRoutes(api, client, appConfig)
	schedule.RegisterScheduleRoutes(api, client, appConfig)
	settings.RegisterSettingsRoutes(api, client, appConfig)
	superadmin.RegisterSuperAdminRoutes(api, client, appConfig)

	return r
}
