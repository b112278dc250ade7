package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

type Config struct {
	GamemasterPath string
	CPMPath        string
	SweepWorkers   int
	LogLevel       string
	// EnvFileLoaded is false when no .env file was found.
	EnvFileLoaded bool
}

func Load() (*Config, error) {
	loaded := godotenv.Load() == nil

	workers, err := getEnvInt("SWEEP_WORKERS", runtime.NumCPU())
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		return nil, fmt.Errorf("SWEEP_WORKERS must be positive, got %d", workers)
	}

	return &Config{
		GamemasterPath: getEnv("GAMEMASTER_PATH", "data/gamemaster.json"),
		CPMPath:        getEnv("CPM_PATH", ""),
		SweepWorkers:   workers,
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		EnvFileLoaded:  loaded,
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

var Module = fx.Provide(Load)
