package session

import (
	"github.com/riftcup/gateway/config"
	"github.com/riftcup/gateway/internal/backend"
	mw "github.com/riftcup/gateway/internal/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterSessionRoutes sets up login/logout/me under the given group.
func RegisterSessionRoutes(router *gin.RouterGroup, client *backend.Client, appConfig *config.Config) {
	repo := NewAuthRepository(client)
	controller := NewSessionController(repo, appConfig)

	router.POST("/login", controller.Login)
	router.POST("/logout", controller.Logout)
	router.GET("/me", mw.SessionMiddleware(appConfig.Session.Secret), controller.Me)
}
