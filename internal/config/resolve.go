package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Overrides carries command-line values that take precedence over the file.
type Overrides struct {
	ConfigPath string
	Catalog    string
	Batch      string
}

// Settings is the fully resolved configuration for one command.
type Settings struct {
	// ConfigPath is empty when no config file was found.
	ConfigPath  string
	Root        string
	CatalogPath string
	Batch       string
	LockTimeout time.Duration
}

// Resolve combines the config file (explicit or discovered from workDir) with
// overrides. Relative override paths resolve against workDir; relative config
// paths resolve against the project root.
func Resolve(workDir string, overrides Overrides) (Settings, error) {
	workDir, err := filepath.Abs(workDir)
	if err != nil {
		return Settings{}, fmt.Errorf("resolve working directory: %w", err)
	}

	settings := Settings{Root: workDir}
	cfg := Default()
	configPath := strings.TrimSpace(overrides.ConfigPath)
	if configPath == "" {
		found, err := FindConfigPath(workDir)
		switch {
		case err == nil:
			configPath = found
		case !errors.Is(err, ErrConfigNotFound):
			return Settings{}, err
		}
	} else if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(workDir, configPath)
	}
	if configPath != "" {
		cfg, err = Load(configPath)
		if err != nil {
			return Settings{}, err
		}
		settings.ConfigPath = configPath
		settings.Root = RootFromConfigPath(configPath)
	}

	if catalog := strings.TrimSpace(overrides.Catalog); catalog != "" {
		settings.CatalogPath = absUnder(workDir, catalog)
	} else {
		settings.CatalogPath = absUnder(settings.Root, cfg.Catalog)
	}
	settings.Batch = cfg.Batch
	if name := strings.TrimSpace(overrides.Batch); name != "" {
		settings.Batch = name
	}
	settings.LockTimeout, err = parseTimeout(cfg.LockTimeout)
	if err != nil {
		return Settings{}, fmt.Errorf("lock_timeout: %w", err)
	}
	return settings, nil
}

func absUnder(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}
