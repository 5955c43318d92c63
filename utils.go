package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// newID generates an id for a freshly created record.
func newID() string {
	return uuid.NewString()
}

// parseISODate validates a YYYY-MM-DD calendar date.
func parseISODate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// validateName validates that a name is not empty or just whitespace
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	return nil
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
