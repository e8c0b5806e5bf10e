package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    string
	SessionSecret string

	EnableAuth      bool
	EnableOwnership bool
	HashPasswords   bool

	SeedFile           string
	RateLimitPerMinute int
	GinMode            string
}

// Load reads .env (if present) and the environment; any error is fatal.
func Load() *Config {
	_ = godotenv.Load()

	cfg, err := FromEnv()
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

// FromEnv builds the config from the current environment.
func FromEnv() (*Config, error) {
	cfg := &Config{
		ServerPort:    os.Getenv("SERVER_PORT"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		SeedFile:      strings.TrimSpace(os.Getenv("SEED_FILE")),
		GinMode:       strings.TrimSpace(os.Getenv("GIN_MODE")),
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is not set")
	}
	switch cfg.GinMode {
	case "", gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return nil, fmt.Errorf("invalid GIN_MODE %q: want %s, %s or %s",
			cfg.GinMode, gin.DebugMode, gin.ReleaseMode, gin.TestMode)
	}

	var err error
	if cfg.EnableAuth, err = envBool("ENABLE_AUTH", true); err != nil {
		return nil, err
	}
	if cfg.EnableOwnership, err = envBool("ENABLE_OWNERSHIP", true); err != nil {
		return nil, err
	}
	if cfg.HashPasswords, err = envBool("HASH_PASSWORDS", false); err != nil {
		return nil, err
	}
	if cfg.RateLimitPerMinute, err = envInt("RATE_LIMIT_PER_MINUTE", 120); err != nil {
		return nil, err
	}
	if cfg.RateLimitPerMinute < 0 {
		return nil, fmt.Errorf("RATE_LIMIT_PER_MINUTE must not be negative")
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func envBool(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid boolean for %s: %w", key, err)
	}
	return b, nil
}

func envInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid integer for %s: %w", key, err)
	}
	return n, nil
}
