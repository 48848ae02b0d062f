package main

import (
	"escoba/internal/app"
	"escoba/internal/config"
	"escoba/internal/logger"
	"escoba/internal/ports"
	"escoba/internal/ports/httpapi"
	"escoba/internal/ports/natsio"
	"escoba/internal/store"
)

func main() {
	log := logger.New("matchd")
	cfg := config.FromEnv(":5003")

	if err := config.LoadGameConfig(config.GameConfigPath()); err != nil {
		log.Fatalw("game config load failed", "error", err)
	}

	matchStore := store.NewMemory(config.Retention())

	var history ports.HistoryRecorder
	var profiles ports.ProfileUpdater
	if nc, err := natsio.Connect(cfg.NATSURL, "escoba-matchd"); err != nil {
		// Settlement is best-effort: the engine runs without collaborators.
		log.Warnw("NATS unavailable, settlement notifications disabled", "error", err)
	} else {
		pub := natsio.NewPublisher(nc)
		history, profiles = pub, pub
	}

	svc := app.NewService(matchStore, history, profiles, log, nil)
	router := httpapi.NewMatchHandler(svc, log).Router()

	log.Infow("matches service starting", "addr", cfg.HTTPAddr)
	if err := router.Run(cfg.HTTPAddr); err != nil {
		log.Fatalw("server exited", "error", err)
	}
}
