package main

import (
	"log"

	"plumbing_portal/internal/adapter/http/routes"
	"plumbing_portal/internal/config"
	"plumbing_portal/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Plumbing Service Portal API
// @version         1.0
// @description     Service request intake, price estimates and contact messages for a residential plumbing business.

// @contact.name   Office
// @contact.email  office@reliableplumbing.example

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	l, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = l.Sync() }()
	zap.ReplaceGlobals(l)

	if err := routes.Run(cfg, l); err != nil {
		l.Fatal("Failed to startup the application", zap.Error(err))
	}
}
