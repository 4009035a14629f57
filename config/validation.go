package config

import (
	"fmt"
	"strconv"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the loaded configuration is usable. Production
// additionally refuses to run on the development JWT secret.
func ValidateConfig(cfg *Config) error {
	if cfg.ServerPort == "" {
		return ValidationError{Field: "SERVER_PORT", Message: "must not be empty"}
	}
	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		return ValidationError{Field: "SERVER_PORT", Message: "must be a number"}
	}
	if cfg.DBHost == "" {
		return ValidationError{Field: "DB_HOST", Message: "must not be empty"}
	}
	if cfg.DBName == "" {
		return ValidationError{Field: "DB_NAME", Message: "must not be empty"}
	}
	if cfg.JWTSecret == "" {
		return ValidationError{Field: "JWT_SECRET", Message: "must not be empty"}
	}
	if IsProduction() && cfg.JWTSecret == "dev-secret-key" {
		return ValidationError{Field: "JWT_SECRET", Message: "default secret is not allowed in production"}
	}
	return nil
}
