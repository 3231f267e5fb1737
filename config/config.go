// Package config provides a minimal config loader for the greeter service.
package config

import (
	"os"
	"strconv"
)

// Config holds service configuration, resolved once at startup.
type Config struct {
	Port int
	Name string
}

// Load reads config from environment variables with sensible defaults.
// PORT (Cloud Run standard) must be a valid TCP port number; absent,
// non-numeric, or out-of-range values fall back to 8080. NAME is the
// greeting subject and falls back to "World".
func Load() *Config {
	port := 8080
	if v := os.Getenv("PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= 65535 {
			port = n
		}
	}

	name := os.Getenv("NAME")
	if name == "" {
		name = "World"
	}

	return &Config{Port: port, Name: name}
}
