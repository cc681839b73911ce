package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type Config struct {
	APIURL     string
	APITimeout time.Duration
	LogLevel   string

	StoreBackend string
	StateDir     string
	StateKey     string
	CartPersist  bool

	RedisAddr     string
	RedisPassword string
	DBConnStr     string
}

func LoadConfig() (*Config, error) {
	timeout, err := time.ParseDuration(getEnvOrDefault("API_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("API_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("API_TIMEOUT must be positive, got %s", timeout)
	}
	cartPersist, err := strconv.ParseBool(getEnvOrDefault("CART_PERSIST", "true"))
	if err != nil {
		return nil, fmt.Errorf("CART_PERSIST: %w", err)
	}

	cfg := &Config{
		APIURL:        getEnvOrDefault("API_URL", "http://localhost:8080/api"),
		APITimeout:    timeout,
		LogLevel:      getEnvOrDefault("LOG_LEVEL", "info"),
		StoreBackend:  getEnvOrDefault("STORE_BACKEND", BackendFile),
		StateDir:      getEnvOrDefault("STATE_DIR", defaultStateDir()),
		StateKey:      os.Getenv("STATE_KEY"),
		CartPersist:   cartPersist,
		RedisAddr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		DBConnStr:     getEnvOrDefault("DB_CONN", "host=localhost port=5432 user=postgres dbname=ynot sslmode=disable"),
	}

	switch cfg.StoreBackend {
	case BackendMemory, BackendFile, BackendRedis, BackendPostgres:
	default:
		return nil, fmt.Errorf("STORE_BACKEND: unknown backend %q", cfg.StoreBackend)
	}
	return cfg, nil
}

func getEnvOrDefault(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val
}

func defaultStateDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".ynot"
	}
	return filepath.Join(dir, "ynot")
}
