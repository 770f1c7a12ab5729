package superadmin

import (
	"github.com/riftcup/gateway/config"
	"github.com/riftcup/gateway/internal/backend"
	"github.com/riftcup/gateway/internal/middleware"
	"github.com/riftcup/gateway/internal/roster"
	"github.com/riftcup/gateway/pkg/rmiddleware"

	"github.com/gin-gonic/gin"
)

// RegisterSuperAdminRoutes mounts the account management panel and the bulk
// application wipe. Everything here requires a super admin session.
func RegisterSuperAdminRoutes(router *gin.RouterGroup, client *backend.Client, appConfig *config.Config) {
	controller := NewSuperAdminController(
		NewAccountRepository(client),
		roster.NewRosterRepository(client),
		appConfig,
	)

	admin := router.Group("/admin")
	admin.Use(middleware.SessionMiddleware(appConfig.Session.Secret), rmiddleware.SuperAdminMiddleware())
	{
		admin.GET("/accounts", controller.ListAdmins)
		admin.POST("/accounts", controller.CreateAdmin)
		admin.DELETE("/accounts/:id", controller.DeleteAdmin)
		admin.DELETE("/applications", controller.ClearApplications)
	}
}
