package roster

import (
	"github.com/riftcup/gateway/config"
	"github.com/riftcup/gateway/internal/backend"
	"github.com/riftcup/gateway/internal/middleware"
	"github.com/riftcup/gateway/pkg/rmiddleware"

	"github.com/gin-gonic/gin"
)

// RegisterRosterRoutes mounts the team, player and registration routes.
func RegisterRosterRoutes(router *gin.RouterGroup, client *backend.Client, appConfig *config.Config) {
	repo := NewRosterRepository(client)
	controller := NewRosterController(repo, appConfig)

	secret := appConfig.Session.Secret
	optional := middleware.OptionalSessionMiddleware(secret)
	admin := middleware.SessionMiddleware(secret)

	teams := router.Group("/teams")
	{
		teams.GET("", optional, controller.ListTeams)
		teams.GET("/:id", controller.GetTeam)
		teams.PUT("/:id", optional, controller.UpdateTeam)
		teams.DELETE("/:id", optional, controller.DeleteTeam)
		teams.PUT("/:id/status", admin, rmiddleware.AdminMiddleware(), controller.SetTeamStatus)
	}

	players := router.Group("/players")
	{
		players.GET("", optional, controller.ListPlayers)
		players.DELETE("/:id", optional, controller.DeletePlayer)
		players.PUT("/:id/status", admin, rmiddleware.AdminMiddleware(), controller.SetPlayerStatus)
	}

	register := router.Group("/register")
	{
		register.POST("/team", controller.RegisterTeam)
		register.POST("/player", controller.RegisterPlayer)
	}
}
