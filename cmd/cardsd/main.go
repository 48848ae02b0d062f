package main

import (
	"escoba/internal/config"
	"escoba/internal/logger"
	"escoba/internal/ports/httpapi"
)

func main() {
	log := logger.New("cardsd")
	cfg := config.FromEnv(":5002")

	log.Infow("cards service starting", "addr", cfg.HTTPAddr)
	if err := httpapi.CardsRouter().Run(cfg.HTTPAddr); err != nil {
		log.Fatalw("server exited", "error", err)
	}
}
