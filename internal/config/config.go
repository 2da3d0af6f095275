// Package config resolves CLI defaults from the environment, after loading
// an optional .env file.
package config

import (
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/alexiusacademia/gorcx/internal/material"
)

// Config holds the resolved defaults.
type Config struct {
	Units     material.Units
	Bands     int
	Workers   int
	LogLevel  string
	LogFormat string
}

// Load reads .env from the working directory when present and resolves
// GORCX_UNITS, GORCX_BANDS, GORCX_WORKERS, LOG_LEVEL and LOG_FORMAT.
func Load() (Config, error) {
	_ = godotenv.Load(".env")
	return FromEnv()
}

// FromEnv resolves the configuration from the current environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		Units:     material.Imperial,
		Bands:     24,
		Workers:   runtime.GOMAXPROCS(0),
		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFormat: getenv("LOG_FORMAT", "text"),
	}
	if v := os.Getenv("GORCX_UNITS"); v != "" {
		u, err := material.ParseUnits(v)
		if err != nil {
			return cfg, err
		}
		cfg.Units = u
	}
	if n, ok := atoi("GORCX_BANDS"); ok {
		cfg.Bands = n
	}
	if n, ok := atoi("GORCX_WORKERS"); ok {
		cfg.Workers = n
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(key string) (int, bool) {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
