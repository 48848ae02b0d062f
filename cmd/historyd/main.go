package main

import (
	"context"

	"escoba/internal/config"
	"escoba/internal/database"
	"escoba/internal/history"
	"escoba/internal/logger"
	"escoba/internal/ports/natsio"
)

func main() {
	log := logger.New("historyd")
	cfg := config.FromEnv(":5005")
	ctx := context.Background()

	db, err := database.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalw("database open failed", "error", err)
	}
	defer db.Close()

	if err := history.CreateSchema(ctx, db); err != nil {
		log.Fatalw("schema setup failed", "error", err)
	}
	repo := history.NewRepository(db)

	nc, err := natsio.Connect(cfg.NATSURL, "escoba-historyd")
	if err != nil {
		log.Fatalw("NATS connect failed", "error", err)
	}
	if _, err := history.Subscribe(nc, repo, log); err != nil {
		log.Fatalw("subscribe failed", "error", err)
	}

	router := history.NewHandler(repo, log).Router()

	log.Infow("history service starting", "addr", cfg.HTTPAddr)
	if err := router.Run(cfg.HTTPAddr); err != nil {
		log.Fatalw("server exited", "error", err)
	}
}
