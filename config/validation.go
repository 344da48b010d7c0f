package config

import (
	"fmt"
	"slices"
)

var logLevels = []string{"trace", "debug", "info", "warn", "error", "fatal", "disabled"}

// Validate checks the loaded configuration for internally consistent values
func Validate(cfg *Config) error {
	if err := validateLog(&cfg.Log); err != nil {
		return fmt.Errorf("log config: %w", err)
	}

	if err := validateClient(&cfg.Client); err != nil {
		return fmt.Errorf("client config: %w", err)
	}

	if err := validateAuth(&cfg.Auth); err != nil {
		return fmt.Errorf("auth config: %w", err)
	}

	return nil
}

func validateLog(cfg *LogConfig) error {
	if !slices.Contains(logLevels, cfg.Level) {
		return fmt.Errorf("unknown log level %q", cfg.Level)
	}
	return nil
}

func validateClient(cfg *ClientConfig) error {
	if cfg.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", cfg.Timeout)
	}

	if cfg.Bearer.Scheme == "" {
		return fmt.Errorf("bearer scheme is required")
	}

	if cfg.Payload.MaxBytes < 0 {
		return fmt.Errorf("payload log cap must not be negative, got %d", cfg.Payload.MaxBytes)
	}

	return nil
}

func validateAuth(cfg *AuthConfig) error {
	for _, status := range cfg.Refresh.Statuses {
		if status < 100 || status > 599 {
			return fmt.Errorf("refresh status %d is not a valid HTTP status code", status)
		}
	}
	return nil
}
