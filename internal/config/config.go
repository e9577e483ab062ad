// Package config loads application configuration from environment
// variables.  Every value has a development-friendly default so the
// console starts with nothing but a Redis server nearby; production
// deployments override via the environment or a .env file loaded in
// main.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration values.  Each field
// corresponds to one or more environment variables.
type Config struct {
	Env            string // application environment ("dev", "prod")
	Port           string // HTTP port to listen on
	StoreKeyPrefix string // prefix for collection storage keys, e.g. "sm_" -> "sm_coaches"
	RabbitURL      string // broker URL for change events; empty disables them
	MediaMaxBytes  int64  // upload size limit for inline media encoding
}

// Load reads the configuration from the environment.
func Load() Config {
	return Config{
		Env:            envStr("APP_ENV", "dev"),
		Port:           envStr("APP_PORT", "8080"),
		StoreKeyPrefix: envStr("STORE_KEY_PREFIX", "sm_"),
		RabbitURL:      rabbitURL(),
		MediaMaxBytes:  int64(envInt("MEDIA_MAX_BYTES", 10<<20)),
	}
}

// rabbitURL honors both names the broker URL has gone by.  Unlike the
// other settings it has no default: change events are opt-in.
func rabbitURL() string {
	if v := os.Getenv("RABBITMQ_URL"); v != "" {
		return v
	}
	return os.Getenv("AMQP_URL")
}

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}
