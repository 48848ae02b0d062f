package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

// Service holds the environment-driven settings shared by the service
// binaries. Fields not used by a given binary are simply left at default.
type Service struct {
	HTTPAddr    string
	NATSURL     string
	DatabaseURL string
	JWTSecret   string
	AuthDBPath  string

	// Upstreams the gateway proxies to.
	AuthURL   string
	CardsURL  string
	MatchURL  string
}

// FromEnv loads .env when present and assembles the service config from the
// environment, falling back to development defaults.
func FromEnv(defaultAddr string) Service {
	_ = godotenv.Load()

	return Service{
		HTTPAddr:    getenv("HTTP_ADDR", defaultAddr),
		NATSURL:     getenv("NATS_URL", "nats://localhost:4222"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   getenv("JWT_SECRET_KEY", "fallback-secret-key"),
		AuthDBPath:  getenv("AUTH_DB_PATH", "auth.db"),
		AuthURL:     getenv("AUTH_SERVICE_URL", "http://localhost:5001"),
		CardsURL:    getenv("CARDS_SERVICE_URL", "http://localhost:5002"),
		MatchURL:    getenv("MATCHES_SERVICE_URL", "http://localhost:5003"),
	}
}

// GameConfigPath returns where the JSON game config lives.
func GameConfigPath() string {
	return getenv("GAME_CONFIG_PATH", "data/game_config.json")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GameConfig carries the match-engine tunables loaded from a JSON file.
type GameConfig struct {
	// RetentionHours is how long the store keeps a match after its last
	// save. Zero means the store default of 24 hours.
	RetentionHours int `json:"retention_hours"`
}

var (
	game     *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path. Missing
// files are not an error: defaults apply.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				game = &GameConfig{}
				return
			}
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		game = &c
	})
	return loadErr
}

// Retention returns the configured match retention window.
func Retention() time.Duration {
	if game == nil || game.RetentionHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(game.RetentionHours) * time.Hour
}
