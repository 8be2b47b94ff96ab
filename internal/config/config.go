package config

import (
	"os"
	"strings"
)

// Config holds all runtime settings, sourced from environment variables.
type Config struct {
	Port           string
	Env            string
	UseMemoryStore bool
	DatabaseURL    string
	JWTSecret      []byte
	AssistantURL   string
	AllowedOrigins []string
}

// Load reads configuration from the environment. Defaults keep local
// development working without any setup.
func Load() *Config {
	cfg := &Config{
		Port:         getEnv("PORT", "8111"),
		Env:          getEnv("ENV", "local"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		JWTSecret:    []byte(getEnv("JWT_SECRET", "rupeemate-dev-secret")),
		AssistantURL: getEnv("ASSISTANT_URL", "http://127.0.0.1:8000"),
	}

	cfg.UseMemoryStore = os.Getenv("USE_MEMORY_STORE") == "true" || cfg.Env == "local"
	if cfg.DatabaseURL != "" && os.Getenv("USE_MEMORY_STORE") == "" {
		cfg.UseMemoryStore = false
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	} else {
		cfg.AllowedOrigins = []string{
			"http://localhost:1234",
			"http://127.0.0.1:1234",
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
