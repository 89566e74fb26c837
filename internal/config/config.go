// Package config loads application-level settings from the environment.
package config

import (
	"log"
	"os"
	"strconv"
)

// defaultMinAge is the minimum user age applied when USER_MIN_AGE is unset.
const defaultMinAge = 18

// Config holds the application configuration. Database settings live in
// the platform/db package; everything here is fixed after startup.
type Config struct {
	Port    string
	GinMode string

	// UserMinAge is the minimum allowable age in whole years, enforced
	// on user creation and full update.
	UserMinAge int
}

// Load reads the configuration from environment variables, providing
// sane defaults for local development.
func Load() *Config {
	return &Config{
		Port:       getenv("PORT", "8080"),
		GinMode:    getenv("GIN_MODE", ""),
		UserMinAge: getenvInt("USER_MIN_AGE", defaultMinAge),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[WARN] invalid %s=%q, using default %d", key, v, def)
		return def
	}
	return n
}
