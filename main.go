// file: main.go
package main

import (
	"log"

	"github.com/builders-garden/just-frame-it/config"
	"github.com/builders-garden/just-frame-it/database"
	"github.com/builders-garden/just-frame-it/routes"
	"github.com/builders-garden/just-frame-it/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	allowlist, err := config.LoadAllowlist(cfg.AllowlistPath)
	if err != nil {
		log.Fatalf("Failed to load allowlist: %v", err)
	}

	database.Connect(cfg.MySQLDSN)
	database.MigrateTables()
	database.InitRedis(cfg.RedisAddr, cfg.RedisPass)

	neynar := services.NewNeynarClient(cfg.NeynarAPIKey, cfg.NeynarBaseURL, database.RDB)

	r := routes.SetupRouter(cfg, allowlist, neynar)

	log.Println("Starting server on", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
