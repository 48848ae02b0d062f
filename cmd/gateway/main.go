package main

import (
	"escoba/internal/auth"
	"escoba/internal/config"
	"escoba/internal/gateway"
	"escoba/internal/logger"
)

func main() {
	log := logger.New("gateway")
	cfg := config.FromEnv(":5000")

	tokens := auth.NewTokenService(cfg.JWTSecret)
	router := gateway.Router(cfg, tokens, log)

	log.Infow("gateway starting", "addr", cfg.HTTPAddr)
	if err := router.Run(cfg.HTTPAddr); err != nil {
		log.Fatalw("server exited", "error", err)
	}
}
