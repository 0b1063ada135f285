package config

import (
	"fmt"
	"os"
	"strconv"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
)

// Config holds the dealer server settings, read from the environment (and .env).
type Config struct {
	Addr      string
	LogLevel  logrus.Level
	StaticDir string
	// Seed makes every deck's shuffle reproducible when set.
	Seed    uint64
	HasSeed bool
}

const (
	envAddr      = "DEALER_ADDR"
	envLogLevel  = "DEALER_LOG_LEVEL"
	envStaticDir = "DEALER_STATIC_DIR"
	envSeed      = "DEALER_SEED"
)

// Load reads the configuration, falling back to defaults for unset variables.
func Load() (Config, error) {
	cfg := Config{
		Addr:      getenv(envAddr, ":8080"),
		StaticDir: getenv(envStaticDir, "web/static"),
	}

	level, err := logrus.ParseLevel(getenv(envLogLevel, "info"))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", envLogLevel, err)
	}
	cfg.LogLevel = level

	if raw := os.Getenv(envSeed); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", envSeed, err)
		}
		cfg.Seed = seed
		cfg.HasSeed = true
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
