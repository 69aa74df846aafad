package config

import (
	"fmt"
	"strings"
	"time"

	"quizbank/internal/batch"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a normalized config for correctness.
func Validate(cfg *Config) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if cfg.Version == 0 {
		add("version", "is required")
	} else if cfg.Version != 1 {
		add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}
	if cfg.Catalog == "" {
		add("catalog", "is required")
	}
	if cfg.Batch != "" && !batch.Exists(cfg.Batch) {
		add("batch", fmt.Sprintf("unknown batch %q (available: %s)", cfg.Batch, strings.Join(batch.Names(), ", ")))
	}
	if cfg.LockTimeout != "" {
		if _, err := parseTimeout(cfg.LockTimeout); err != nil {
			add("lock_timeout", err.Error())
		}
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

func parseTimeout(value string) (time.Duration, error) {
	timeout, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", value)
	}
	if timeout <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", value)
	}
	return timeout, nil
}
