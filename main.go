package main

import (
	"log"

	"github.com/riftcup/gateway/config"
	_ "github.com/riftcup/gateway/docs"
	"github.com/riftcup/gateway/internal/backend"
	"github.com/riftcup/gateway/routes"
)

// @title RiftCup Tournament Gateway
// @version 1.0
// @description Front-end gateway for the Wild Rift 5x5 tournament site.
// @host localhost:8088
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()
	client := backend.NewClient(cfg)

	r := routes.SetupRoutes(client, cfg)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
