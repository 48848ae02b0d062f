package main

import (
	"escoba/internal/auth"
	"escoba/internal/config"
	"escoba/internal/logger"
)

func main() {
	log := logger.New("authd")
	cfg := config.FromEnv(":5001")

	users, err := auth.OpenUserStore(cfg.AuthDBPath)
	if err != nil {
		log.Fatalw("user store open failed", "path", cfg.AuthDBPath, "error", err)
	}
	defer users.Close()

	tokens := auth.NewTokenService(cfg.JWTSecret)
	router := auth.NewHandler(users, tokens, log).Router()

	log.Infow("auth service starting", "addr", cfg.HTTPAddr)
	if err := router.Run(cfg.HTTPAddr); err != nil {
		log.Fatalw("server exited", "error", err)
	}
}
