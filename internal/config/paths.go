package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Names of the project config file and the catalog used when the config
// does not name one.
const (
	ConfigDirName      = ".quizbank"
	ConfigFileName     = "config.yml"
	DefaultCatalogFile = "problems.yaml"
)

// ErrConfigNotFound means no .quizbank/config.yml exists between the start
// directory and the filesystem root. Resolve treats it as "use defaults".
var ErrConfigNotFound = errors.New("config not found")

// ConfigPath is where a project rooted at root keeps its quizbank config.
func ConfigPath(root string) string {
	return filepath.Join(root, ConfigDirName, ConfigFileName)
}

// RootFromConfigPath returns the project root that relative catalog paths in
// the config resolve against. A config outside .quizbank/ (given with
// --config) roots the project at its own directory.
func RootFromConfigPath(configPath string) string {
	dir := filepath.Dir(configPath)
	if filepath.Base(dir) != ConfigDirName {
		return dir
	}
	return filepath.Dir(dir)
}

// FindConfigPath returns the nearest .quizbank/config.yml at or above
// startDir, which defaults to the working directory.
func FindConfigPath(startDir string) (string, error) {
	start, err := absoluteStart(startDir)
	if err != nil {
		return "", err
	}
	for dir := start; ; {
		candidate := ConfigPath(dir)
		found, err := isConfigFile(candidate)
		if err != nil {
			return "", err
		}
		if found {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: no %s above %s", ErrConfigNotFound, filepath.Join(ConfigDirName, ConfigFileName), start)
		}
		dir = parent
	}
}

func absoluteStart(dir string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}
	return abs, nil
}

func isConfigFile(path string) (bool, error) {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("stat config %s: %w", path, err)
	case info.IsDir():
		return false, fmt.Errorf("config %s is a directory", path)
	default:
		return true, nil
	}
}
