// Package config provides configuration loading and validation for the
// resume cards service.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Service holds the runtime configuration for the HTTP server and CLI.
// Values come from environment variables; a .env file is loaded by main
// before this is read.
type Service struct {
	Port        int    // HTTP listen port
	DatabaseURL string // PostgreSQL connection URL
	APIKey      string // Gemini API key for extraction
}

// LoadService reads service configuration from the environment.
// DATABASE_URL is required; GEMINI_API_KEY is optional and only needed
// for the extraction endpoints.
func LoadService() (*Service, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	port := 8080
	if portStr := os.Getenv("PORT"); portStr != "" {
		parsed, err := strconv.Atoi(portStr)
		if err != nil || parsed < 1 || parsed > 65535 {
			return nil, fmt.Errorf("invalid PORT: %s", portStr)
		}
		port = parsed
	}

	return &Service{
		Port:        port,
		DatabaseURL: databaseURL,
		APIKey:      os.Getenv("GEMINI_API_KEY"),
	}, nil
}
