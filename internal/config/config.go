package config

import (
	"os"
	"strconv"
)

type Config struct {
	AppEnv   string
	HTTPAddr string

	BackendURL        string
	BackendTimeoutSec int

	SessionSecret   string
	SessionTTLHours int
}

func Load() Config {
	return Config{
		AppEnv:   get("APP_ENV", "dev"),
		HTTPAddr: get("HTTP_ADDR", ":3000"),

		BackendURL:        get("BACKEND_URL", "http://localhost:8000"),
		BackendTimeoutSec: getInt("BACKEND_TIMEOUT_SEC", 10),

		SessionSecret:   get("SESSION_SECRET", "dev-only-secret"),
		SessionTTLHours: getInt("SESSION_TTL_HOURS", 12),
	}
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
