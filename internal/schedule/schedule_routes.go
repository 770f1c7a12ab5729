package schedule

import (
	"github.com/riftcup/gateway/config"
	"github.com/riftcup/gateway/internal/backend"
	"github.com/riftcup/gateway/internal/middleware"
	"github.com/riftcup/gateway/pkg/rmiddleware"

	"github.com/gin-gonic/gin"
)

// RegisterScheduleRoutes mounts the public schedule view and the admin match
// management routes.
func RegisterScheduleRoutes(router *gin.RouterGroup, client *backend.Client, appConfig *config.Config) {
	repo := NewScheduleRepository(client)
	controller := NewScheduleController(repo)

	secret := appConfig.Session.Secret

	public := router.Group("/schedule")
	{
		public.GET("", middleware.OptionalSessionMiddleware(secret), controller.GetSchedule)
		public.GET("/published", controller.GetPublished)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.SessionMiddleware(secret), rmiddleware.AdminMiddleware())
	{
		admin.POST("/matches", controller.CreateMatch)
		admin.PUT("/matches/:id", controller.UpdateMatch)
		admin.DELETE("/matches/:id", controller.DeleteMatch)
		admin.DELETE("/matches", controller.ClearSchedule)
		admin.PUT("/schedule/publish", controller.SetPublished)
	}
}
