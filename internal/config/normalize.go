package config

import (
	"strings"

	"quizbank/internal/batch"
)

// DefaultLockTimeout is used when lock_timeout is unset.
const DefaultLockTimeout = "5s"

// Normalize trims every field and fills catalog, batch and lock_timeout with
// their defaults when they are empty.
func Normalize(cfg *Config) {
	cfg.Catalog = strings.TrimSpace(cfg.Catalog)
	if cfg.Catalog == "" {
		cfg.Catalog = DefaultCatalogFile
	}
	cfg.Batch = strings.TrimSpace(cfg.Batch)
	if cfg.Batch == "" {
		cfg.Batch = batch.Default
	}
	cfg.LockTimeout = strings.TrimSpace(cfg.LockTimeout)
	if cfg.LockTimeout == "" {
		cfg.LockTimeout = DefaultLockTimeout
	}
}
