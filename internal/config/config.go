package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// Server
	Port    int
	DataDir string

	// Access gate
	AuthKey         string
	AllowedFrontend string

	// CORS
	CORSOrigins []string

	// Logging
	LogLevel string
}

// defaultCORSOrigins mirrors the hosts the dashboard is served from.
// This list is independent of AllowedFrontend, which only feeds the
// header gate; the two are configured separately on purpose.
var defaultCORSOrigins = []string{
	"http://93.127.142.20:3000",
	"http://93.127.142.20:3001",
}

func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		Port:            8001,
		DataDir:         "./data",
		AuthKey:         "dev-secret-key",
		AllowedFrontend: "http://93.127.142.20:3001/schedules/Ammar",
		CORSOrigins:     defaultCORSOrigins,
		LogLevel:        "info",
	}

	if key := os.Getenv("AUTH_KEY"); key != "" {
		cfg.AuthKey = key
	}

	if frontend := os.Getenv("ALLOWED_FRONTEND_URL"); frontend != "" {
		cfg.AllowedFrontend = frontend
	}
	cfg.AllowedFrontend = strings.TrimRight(cfg.AllowedFrontend, "/")

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %w", err)
		}
		cfg.Port = p
	}

	if dir := os.Getenv("DATA_DIR"); dir != "" {
		cfg.DataDir = dir
	}

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = nil
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		cfg.LogLevel = logLevel
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.AuthKey == "" {
		return fmt.Errorf("auth key is empty")
	}

	if c.DataDir == "" {
		return fmt.Errorf("data dir is empty")
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}
