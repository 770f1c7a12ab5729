package settings

import (
	"github.com/riftcup/gateway/config"
	"github.com/riftcup/gateway/internal/backend"
	"github.com/riftcup/gateway/internal/middleware"
	"github.com/riftcup/gateway/pkg/rmiddleware"

	"github.com/gin-gonic/gin"
)

// RegisterSettingsRoutes mounts the public settings read and the admin
// settings editors.
func RegisterSettingsRoutes(router *gin.RouterGroup, client *backend.Client, appConfig *config.Config) {
	repo := NewSettingsRepository(client)
	controller := NewSettingsController(repo)

	router.GET("/settings", controller.GetSettings)

	admin := router.Group("/admin/settings")
	admin.Use(middleware.SessionMiddleware(appConfig.Session.Secret), rmiddleware.AdminMiddleware())
	{
		admin.PUT("/registration", controller.SetRegistration)
		admin.PUT("/bracket", controller.SetBracket)
		admin.PUT("/home", controller.UpdateHome)
		admin.PUT("/tournament-info", controller.UpdateTournamentInfo)
	}
}
