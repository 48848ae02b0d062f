package main

import (
	"context"

	"escoba/internal/config"
	"escoba/internal/database"
	"escoba/internal/logger"
	"escoba/internal/players"
	"escoba/internal/ports/natsio"
)

func main() {
	log := logger.New("playerd")
	cfg := config.FromEnv(":5004")
	ctx := context.Background()

	db, err := database.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalw("database open failed", "error", err)
	}
	defer db.Close()

	if err := players.CreateSchema(ctx, db); err != nil {
		log.Fatalw("schema setup failed", "error", err)
	}
	repo := players.NewRepository(db)

	nc, err := natsio.Connect(cfg.NATSURL, "escoba-playerd")
	if err != nil {
		log.Fatalw("NATS connect failed", "error", err)
	}
	if _, err := players.Subscribe(nc, repo, log); err != nil {
		log.Fatalw("subscribe failed", "error", err)
	}

	router := players.NewHandler(repo, log).Router()

	log.Infow("player service starting", "addr", cfg.HTTPAddr)
	if err := router.Run(cfg.HTTPAddr); err != nil {
		log.Fatalw("server exited", "error", err)
	}
}
