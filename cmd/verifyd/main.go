package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/ivanKorotkov735/cursor/internal/config"
	httpinfra "github.com/ivanKorotkov735/cursor/internal/infra/http"
	"github.com/ivanKorotkov735/cursor/internal/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	logging.Init(cfg.AppEnv, cfg.LogLevel)

	srv := httpinfra.NewServer(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
