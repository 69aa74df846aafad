package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `version: 1
# Catalog file, relative to the directory that holds .quizbank/.
catalog: "problems.yaml"
# Batch appended by "quizbank seed" when --batch is not given.
batch: "functional"
# How long seed waits for another writer to release the catalog.
lock_timeout: "5s"
`

// Scaffold writes a default config file, refusing to overwrite one.
func Scaffold(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("config already exists at %q", path)
		}
		return fmt.Errorf("create config: %w", err)
	}
	if _, err := file.WriteString(defaultConfig); err != nil {
		_ = file.Close()
		return fmt.Errorf("write config: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
